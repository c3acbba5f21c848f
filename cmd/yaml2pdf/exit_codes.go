package main

import (
	"errors"
	"fmt"
	"io"

	yaml2pdf "github.com/alnah/go-yaml2pdf"
	"github.com/alnah/go-yaml2pdf/internal/dateutil"
	"github.com/alnah/go-yaml2pdf/internal/hints"
)

// Exit codes for the yaml2pdf CLI. Every failure is terminal and reported
// with the same status.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// CLI sentinel errors.
var (
	ErrUsage    = errors.New("usage error")
	ErrWritePDF = errors.New("failed to write PDF")
)

// exitCodeFor returns the exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// hintedError attaches a hint computed where the failure happened, when
// the error alone does not carry enough context (paths searched, input name).
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }

func (e *hintedError) Unwrap() error { return e.err }

func withHint(err error, hint string) error {
	return &hintedError{err: err, hint: hint}
}

// hintFor returns the hint for err, or "" when none applies.
func hintFor(err error) string {
	var h *hintedError
	if errors.As(err, &h) {
		return h.hint
	}

	switch {
	case errors.Is(err, ErrUsage):
		return hints.ForUsage()
	case errors.Is(err, ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, yaml2pdf.ErrFormat):
		return hints.ForFormat()
	case errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForDateFormat()
	case errors.Is(err, yaml2pdf.ErrSchema):
		return hints.ForSchema()
	}
	return ""
}

// reportError writes err and its hint to w.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
}
