package models

import "fmt"

// ValidationError reports a rejected entry; nothing is mutated when one is
// returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
