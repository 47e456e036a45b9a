package autocorr

import "fmt"

// ParseError represents a malformed or unreadable input file. The batch
// layer treats it as recoverable: the file is skipped, the batch continues.
type ParseError struct {
	Path    string `json:"path"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Path, e.Message)
	if e.Line > 0 {
		msg = fmt.Sprintf("parse %s:%d: %s", e.Path, e.Line, e.Message)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error. Line 0 means the error is not
// tied to a specific row.
func NewParseError(path string, line int, message string, cause error) *ParseError {
	return &ParseError{
		Path:    path,
		Line:    line,
		Message: message,
		Cause:   cause,
	}
}
