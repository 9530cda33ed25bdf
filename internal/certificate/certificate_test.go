package certificate

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
)

func TestRender(t *testing.T) {
	m, ok := catalog.Default().LearningModule("mod-1")
	if !ok {
		t.Fatal("mod-1 missing from seed")
	}

	var buf bytes.Buffer
	if err := Render(&buf, m, "Rajesh Kumar", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestRenderRequiresCompletion(t *testing.T) {
	m, _ := catalog.Default().LearningModule("mod-2")
	var buf bytes.Buffer
	if err := Render(&buf, m, "", time.Now()); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing should be written for an incomplete module")
	}
}

func TestRenderRejectsUnsupportedHolder(t *testing.T) {
	m, _ := catalog.Default().LearningModule("mod-1")

	var buf bytes.Buffer
	if err := Render(&buf, m, "राजेश कुमार", time.Now()); !errors.Is(err, ErrUnsupportedText) {
		t.Fatalf("expected ErrUnsupportedText, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing should be written for a rejected holder")
	}

	if err := Render(&buf, m, "José Müller", time.Now()); err != nil {
		t.Fatalf("latin-1 holder: %v", err)
	}
}
