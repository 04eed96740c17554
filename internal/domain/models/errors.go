package models

import "fmt"

// ValidationError marks input that failed schema or enum checks. It aborts
// only the offending message; the originating connection stays open.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}
