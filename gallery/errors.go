package gallery

import "errors"

// ErrCategoryNotFound means the parent category document does not exist.
// Append and remove detect it from the matched count of the store mutation,
// never from a separate read.
var ErrCategoryNotFound = errors.New("Category not found")

// ValidationError is a client-caused rejection: bad extension, bad declared
// type, oversize or empty payload, undecodable image. The reason is safe to
// return to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
