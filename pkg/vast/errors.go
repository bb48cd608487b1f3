package vast

import "errors"

var (
	// ErrInvalidWidth is returned when a width of zero bits is requested.
	ErrInvalidWidth = errors.New("width must be greater than zero")

	// ErrNotSized is returned when the width of an unsized type is requested.
	ErrNotSized = errors.New("type does not support width")

	// ErrMissingID is returned when an identifier is requested from a node
	// that does not drive a single named target.
	ErrMissingID = errors.New("node has no identifier")

	// ErrNilStmt is the panic value when a nil declaration or parallel
	// statement is added to a module body.
	ErrNilStmt = errors.New("statement is nil")
)
