// Package backendtest provides an in-process stand-in for the MedIntel
// backend. It serves canned responses on the real routes, records every
// request, and can be told to fail or stall a route.
package backendtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/justinpbarnett/medintel/internal/api"
)

const (
	PathDiagnose    = "/diagnose"
	PathInteraction = "/check_interaction"
	PathUpload      = "/upload_prescription"
	PathHealth      = "/test"
)

// Recorded is one request as seen by the stub.
type Recorded struct {
	Path          string
	RequestID     string
	Authorization string
	Body          []byte
	Form          map[string]string
	FileName      string
	File          []byte
}

type failure struct {
	status  int
	message string
}

type Server struct {
	*httptest.Server

	mu          sync.Mutex
	diagnosis   api.DiagnosisResult
	interaction api.InteractionResult
	extracted   string
	failures    map[string]failure
	holds       map[string]chan struct{}
	requests    []Recorded
}

// New starts a stub backend that is closed when tb finishes.
func New(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{
		diagnosis: api.DiagnosisResult{
			Disease:          "Common Cold",
			Confidence:       64.0,
			SymptomsDetected: []string{},
		},
		interaction: api.InteractionResult{
			MedicationsChecked: []string{},
			DrugInteractions:   []api.DrugInteraction{},
			AllergyWarnings:    []api.AllergyWarning{},
		},
		failures: make(map[string]failure),
		holds:    make(map[string]chan struct{}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(PathHealth, s.handleHealth)
	r.Post(PathDiagnose, s.handleDiagnose)
	r.Post(PathInteraction, s.handleInteraction)
	r.Post(PathUpload, s.handleUpload)

	s.Server = httptest.NewServer(r)
	tb.Cleanup(func() {
		s.releaseAll()
		s.Close()
	})
	return s
}

// SetDiagnosis sets the body returned by /diagnose.
func (s *Server) SetDiagnosis(res api.DiagnosisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnosis = res
}

// SetInteraction sets the body returned by /check_interaction.
func (s *Server) SetInteraction(res api.InteractionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interaction = res
}

// SetExtractedText sets the text returned by /upload_prescription.
func (s *Server) SetExtractedText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extracted = text
}

// Fail makes path answer with status and {"error": message}.
func (s *Server) Fail(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, message: message}
}

// Hold stalls every request to path until the returned release is called
// or the client goes away. Release is safe to call more than once.
func (s *Server) Hold(path string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	if prev, ok := s.holds[path]; ok {
		close(prev)
	}
	s.holds[path] = ch
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			owned := s.holds[path] == ch
			if owned {
				delete(s.holds, path)
			}
			s.mu.Unlock()
			if owned {
				close(ch)
			}
		})
	}
}

func (s *Server) releaseAll() {
	s.mu.Lock()
	holds := s.holds
	s.holds = make(map[string]chan struct{})
	s.mu.Unlock()
	for _, ch := range holds {
		close(ch)
	}
}

// Requests returns the recorded requests for path in arrival order.
func (s *Server) Requests(path string) []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Recorded
	for _, r := range s.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many requests reached path.
func (s *Server) Count(path string) int {
	return len(s.Requests(path))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.admit(w, r, nil) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Test route is working!"})
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	if !s.admit(w, r, func(rec *Recorded) { rec.Body = body }) {
		return
	}
	var req api.DiagnoseRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Symptoms == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No symptoms provided"})
		return
	}
	s.mu.Lock()
	res := s.diagnosis
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	if !s.admit(w, r, func(rec *Recorded) { rec.Body = body }) {
		return
	}
	var req api.InteractionRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Medications == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No medications provided"})
		return
	}
	s.mu.Lock()
	res := s.interaction
	s.mu.Unlock()
	if len(res.MedicationsChecked) == 0 {
		res.MedicationsChecked = req.Medications
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		if s.admit(w, r, nil) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		}
		return
	}
	rec := func(rec *Recorded) {
		rec.Form = map[string]string{
			"patient_id": r.FormValue("patient_id"),
			"doctor_id":  r.FormValue("doctor_id"),
		}
		if f, hdr, err := r.FormFile("file"); err == nil {
			rec.FileName = hdr.Filename
			rec.File, _ = io.ReadAll(f)
			f.Close()
		}
	}
	if !s.admit(w, r, rec) {
		return
	}
	if _, _, err := r.FormFile("file"); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	s.mu.Lock()
	text := s.extracted
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, api.PrescriptionResult{ExtractedText: text})
}

// admit records the request, waits out any hold, and writes a configured
// failure. It reports whether the handler should continue.
func (s *Server) admit(w http.ResponseWriter, r *http.Request, fill func(*Recorded)) bool {
	rec := Recorded{
		Path:          r.URL.Path,
		RequestID:     r.Header.Get(api.RequestIDHeader),
		Authorization: r.Header.Get("Authorization"),
	}
	if fill != nil {
		fill(&rec)
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	hold := s.holds[r.URL.Path]
	fail, failing := s.failures[r.URL.Path]
	s.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return false
		}
	}
	if failing {
		writeJSON(w, fail.status, map[string]string{"error": fail.message})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
