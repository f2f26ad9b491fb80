package providers

import (
	"errors"
	"fmt"
)

// DocumentError captures a failure to load or decode a source document.
type DocumentError struct {
	Provider string
	Document string
	Path     string
	Err      error
}

func (e *DocumentError) Error() string {
	msg := "document unavailable"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("%s document %s: %s", e.Document, e.Path, msg)
	}
	return fmt.Sprintf("%s document: %s", e.Document, msg)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// AsDocumentError attempts to unwrap an error into a DocumentError.
func AsDocumentError(err error) (*DocumentError, bool) {
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		return docErr, true
	}
	return nil, false
}
