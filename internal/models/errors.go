package models

// ValidationError signals that caller-supplied input failed a required-field
// check. Handlers translate it into a 400 response; the store is never
// touched when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
