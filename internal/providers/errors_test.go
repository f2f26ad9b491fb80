package providers

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestDocumentErrorString(t *testing.T) {
	err := &DocumentError{
		Provider: "opta",
		Document: "season",
		Path:     "sample.xml",
		Err:      fs.ErrNotExist,
	}
	if got := err.Error(); !strings.Contains(got, "season") || !strings.Contains(got, "sample.xml") {
		t.Fatalf("expected document and path in error string, got %q", got)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped error to unwrap")
	}

	wrapped := fmt.Errorf("fetch: %w", err)
	docErr, ok := AsDocumentError(wrapped)
	if !ok || docErr.Document != "season" {
		t.Fatalf("expected to unwrap document error, got %+v", docErr)
	}

	noPath := &DocumentError{Document: "squad"}
	if got := noPath.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
	if _, ok := AsDocumentError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
