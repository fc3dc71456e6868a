package panels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justinpbarnett/medintel/internal/auth"
	"github.com/justinpbarnett/medintel/internal/backendtest"
	"github.com/justinpbarnett/medintel/internal/outcome"
)

func writeScan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, []byte("fake image"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrescriptionNoFileSelected(t *testing.T) {
	srv := backendtest.New(t)
	p := NewPrescriptionPanel(testDeps(srv))

	a := alertFrom(t, p.Submit())
	if !strings.Contains(a.Body, "no file selected") {
		t.Errorf("unexpected alert body %q", a.Body)
	}
	if p.Status() != outcome.Idle {
		t.Errorf("expected idle, got %s", p.Status())
	}
	if n := srv.Count(backendtest.PathUpload); n != 0 {
		t.Errorf("expected no upload, got %d", n)
	}
}

func TestPrescriptionUpload(t *testing.T) {
	srv := backendtest.New(t)
	srv.SetExtractedText("Amoxicillin 500mg\nTake twice daily")
	p := NewPrescriptionPanel(testDeps(srv))
	path := writeScan(t)

	p.SelectFile(path)
	deliver(t, p, p.Submit())

	if p.Status() != outcome.Succeeded {
		t.Fatalf("expected succeeded, got %s", p.Status())
	}
	if got := p.Outcome().Value.ExtractedText; got != "Amoxicillin 500mg\nTake twice daily" {
		t.Errorf("extracted text not stored verbatim: %q", got)
	}

	reqs := srv.Requests(backendtest.PathUpload)
	if len(reqs) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(reqs))
	}
	rec := reqs[0]
	if rec.FileName != "scan.png" || string(rec.File) != "fake image" {
		t.Errorf("unexpected file %q: %q", rec.FileName, rec.File)
	}
	if rec.Form["patient_id"] != "1" || rec.Form["doctor_id"] != "2" {
		t.Errorf("unexpected form %v", rec.Form)
	}

	view := p.View(80)
	if !strings.Contains(view, "Extracted Text:") || !strings.Contains(view, "Take twice daily") {
		t.Errorf("view missing extracted text:\n%s", view)
	}
}

func TestPrescriptionSelectFileReplaces(t *testing.T) {
	p := NewPrescriptionPanel(Deps{})
	p.SelectFile("/tmp/a.png")
	p.SelectFile("  /tmp/b.pdf ")
	if p.Selected() != "/tmp/b.pdf" {
		t.Errorf("expected latest selection, got %q", p.Selected())
	}
}

func TestPrescriptionRequiresIdentity(t *testing.T) {
	srv := backendtest.New(t)
	deps := testDeps(srv)
	deps.Identity = auth.NewStatic(3, 0)
	p := NewPrescriptionPanel(deps)
	p.SelectFile(writeScan(t))

	alertFrom(t, p.Submit())
	if n := srv.Count(backendtest.PathUpload); n != 0 {
		t.Errorf("expected no upload, got %d", n)
	}
}

func TestPrescriptionYank(t *testing.T) {
	srv := backendtest.New(t)
	srv.SetExtractedText("Metformin 850mg")
	var copied string
	deps := testDeps(srv)
	deps.Clipboard = func(s string) error { copied = s; return nil }
	p := NewPrescriptionPanel(deps)

	if cmd := p.Yank(); cmd != nil {
		t.Error("nothing to copy before a successful upload")
	}

	p.SelectFile(writeScan(t))
	deliver(t, p, p.Submit())

	_, cmd := p.Update(keyPress("y"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	flash, ok := cmd().(FlashMsg)
	if !ok || flash.Level != FlashSuccess {
		t.Fatalf("expected success flash, got %+v", flash)
	}
	if copied != "Metformin 850mg" {
		t.Errorf("clipboard got %q", copied)
	}
}

func TestPrescriptionYankError(t *testing.T) {
	srv := backendtest.New(t)
	srv.SetExtractedText("x")
	deps := testDeps(srv)
	deps.Clipboard = func(string) error { return errors.New("no display") }
	p := NewPrescriptionPanel(deps)
	p.SelectFile(writeScan(t))
	deliver(t, p, p.Submit())

	flash := p.Yank()().(FlashMsg)
	if flash.Level != FlashError || !strings.Contains(flash.Text, "no display") {
		t.Errorf("unexpected flash %+v", flash)
	}
}

func TestPrescriptionHoldsScrollLock(t *testing.T) {
	srv := backendtest.New(t)
	deps := testDeps(srv)
	p := NewPrescriptionPanel(deps)

	if deps.ScrollLock.Locked() {
		t.Fatal("lock should not be held before mount")
	}
	p.Mount()
	if !deps.ScrollLock.Locked() {
		t.Fatal("lock should be held while mounted")
	}
	p.Unmount()
	if deps.ScrollLock.Locked() {
		t.Fatal("lock should be released on unmount")
	}
	p.Unmount()
	if deps.ScrollLock.Locked() {
		t.Fatal("second unmount must be harmless")
	}
}

func TestPrescriptionChooseFileKeys(t *testing.T) {
	srv := backendtest.New(t)
	var p Panel = NewPrescriptionPanel(testDeps(srv))

	p, _ = p.Update(keyPress("o"))
	if !p.Capturing() {
		t.Fatal("expected capturing after o")
	}
	p = typeText(p, "/scans/rx1.jpg")
	p, _ = p.Update(keyPress("enter"))
	if p.Capturing() {
		t.Error("enter should leave the path field")
	}
	if got := p.(*PrescriptionPanel).Selected(); got != "/scans/rx1.jpg" {
		t.Errorf("selected %q", got)
	}

	p, _ = p.Update(keyPress("o"))
	p = typeText(p, "-draft")
	p, _ = p.Update(keyPress("esc"))
	if got := p.(*PrescriptionPanel).Selected(); got != "/scans/rx1.jpg" {
		t.Errorf("esc should keep the previous selection, got %q", got)
	}
}
