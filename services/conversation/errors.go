package conversation

import "fmt"

// LookupError signals an internal inconsistency, e.g. a stored service code
// that is no longer present in the catalog. It is fatal to the session: the
// conversation is reset and the user asked to start over.
type LookupError struct {
	Code    int
	Message string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookupError: %s (code %d)", e.Message, e.Code)
}

func NewLookupError(code int, msg string) error {
	return &LookupError{
		Code:    code,
		Message: msg,
	}
}
