package vast

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
)

// Width is a number of bits. A valid Width is at least 1.
type Width uint64

// NewWidth validates n as a bit width.
func NewWidth(n uint64) (Width, error) {
	if n == 0 {
		return 0, errors.WithStack(ErrInvalidWidth)
	}
	return Width(n), nil
}

// Doc renders the range of a vector, or nothing for a scalar.
//
// Widths are validated on construction; rendering a zero Width is a
// programming error and panics.
func (w Width) Doc() pretty.Doc {
	switch w {
	case 0:
		panic(ErrInvalidWidth)
	case 1:
		return pretty.Nil()
	default:
		return pretty.Text("[").
			Append(pretty.AsString(uint64(w)-1), pretty.Text(":"), pretty.Text("0"), pretty.Text("]"))
	}
}

func (w Width) String() string {
	return Print(w)
}

// VectorDoc renders a net or variable declaration: "kw name" for a scalar
// and "kw [n-1:0] name" otherwise.
func VectorDoc(kw string, w Width, name string) pretty.Doc {
	doc := pretty.Text(kw).Append(pretty.Space())
	if w != 1 {
		doc = doc.Append(w.Doc(), pretty.Space())
	}
	return doc.Append(pretty.Text(name))
}
