package server

import "fmt"

// ValidationError marks a malformed request payload or query parameter. The
// router translates it to a 400 with the reason in the detail field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
