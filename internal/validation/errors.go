package validation

import (
	"strings"
)

// Error codes reported in FieldError.Code.
const (
	CodeRequired    = "required"
	CodeType        = "type"
	CodeFormat      = "format"
	CodeSchema      = "schema"
	CodeInvalidJSON = "invalid_json"
)

// FieldError describes a single validation failure.
type FieldError struct {
	// Field is the dotted path of the offending value, empty for the document root.
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is returned when a payload fails validation.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field != "" {
			msgs = append(msgs, fe.Field+": "+fe.Message)
			continue
		}
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
