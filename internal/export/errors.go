// Package export renders requirement sessions as the downloadable analysis document and the
// plain-text summary.
package export

import "fmt"

// TemplateError represents an error parsing or executing the summary template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
