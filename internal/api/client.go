package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 10 << 20

	// RequestIDHeader carries a fresh uuid on every outbound request.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to a single MedIntel backend origin.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithBearerToken attaches "Authorization: Bearer <token>" when token
// returns a non-empty string.
func WithBearerToken(token func() string) Option {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend origin without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Diagnose posts a symptom selection and returns the predicted condition.
func (c *Client) Diagnose(ctx context.Context, req DiagnoseRequest) (DiagnosisResult, error) {
	var out DiagnosisResult
	if req.Symptoms == nil {
		req.Symptoms = map[string]bool{}
	}
	err := c.postJSON(ctx, "diagnose", "/diagnose", req, &out)
	return out, err
}

// CheckInteraction posts medication and allergy lists. An empty medication
// list is rejected without contacting the backend.
func (c *Client) CheckInteraction(ctx context.Context, req InteractionRequest) (InteractionResult, error) {
	var out InteractionResult
	if len(req.Medications) == 0 {
		return out, &ValidationError{Field: "medications", Reason: "at least one medication is required"}
	}
	if req.Allergies == nil {
		req.Allergies = []string{}
	}
	err := c.postJSON(ctx, "check interaction", "/check_interaction", req, &out)
	return out, err
}

// UploadPrescription sends the file at req.Path as multipart field "file"
// together with the patient and doctor identifiers.
func (c *Client) UploadPrescription(ctx context.Context, req UploadRequest) (PrescriptionResult, error) {
	const op = "upload prescription"
	var out PrescriptionResult
	if req.Path == "" {
		return out, &ValidationError{Field: "file", Reason: "no file selected"}
	}

	f, err := os.Open(req.Path)
	if err != nil {
		return out, &ValidationError{Field: "file", Reason: fmt.Sprintf("cannot open %s: %v", req.Path, err)}
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(req.Path))
	if err != nil {
		return out, fmt.Errorf("%s: creating form: %w", op, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return out, &ValidationError{Field: "file", Reason: fmt.Sprintf("reading %s: %v", req.Path, err)}
	}
	if err := mw.WriteField("patient_id", strconv.Itoa(req.PatientID)); err != nil {
		return out, fmt.Errorf("%s: writing form: %w", op, err)
	}
	if err := mw.WriteField("doctor_id", strconv.Itoa(req.DoctorID)); err != nil {
		return out, fmt.Errorf("%s: writing form: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return out, fmt.Errorf("%s: closing form: %w", op, err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/upload_prescription", &body)
	if err != nil {
		return out, fmt.Errorf("%s: creating request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	err = c.do(op, httpReq, &out)
	return out, err
}

// Health probes GET /test and returns the backend's message.
func (c *Client) Health(ctx context.Context) (string, error) {
	const op = "health"
	req, err := c.newRequest(ctx, http.MethodGet, "/test", nil)
	if err != nil {
		return "", fmt.Errorf("%s: creating request: %w", op, err)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(op, req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encoding request: %w", op, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func (c *Client) do(op string, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Op: op, Status: resp.StatusCode, Message: serverMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ServerError{Op: op, Status: resp.StatusCode, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

// serverMessage extracts {"error": "..."} from a failure body, falling back
// to the first 200 bytes of raw text.
func serverMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return eb.Error
	}
	return truncate(strings.TrimSpace(string(body)), 200)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
