// Package v05 is the Verilog-2005 dialect.
package v05

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
	"github.com/vito/vast/pkg/vast"
)

// Ty is either the unsized integer type or a vector of some width.
type Ty struct {
	sized bool
	width vast.Width
}

// NewIntTy returns the unsized integer type.
func NewIntTy() Ty {
	return Ty{}
}

// NewWidthTy returns a vector type of the given width.
func NewWidthTy(width uint64) (Ty, error) {
	w, err := vast.NewWidth(width)
	if err != nil {
		return Ty{}, err
	}
	return Ty{sized: true, width: w}, nil
}

// Width returns the width of a vector type.
func (ty Ty) Width() (uint64, error) {
	if !ty.sized {
		return 0, errors.WithStack(vast.ErrNotSized)
	}
	return uint64(ty.width), nil
}

// IsScalar reports whether ty renders without a range.
func (ty Ty) IsScalar() bool {
	return !ty.sized || ty.width == 1
}

func (ty Ty) Doc() pretty.Doc {
	if !ty.sized {
		return pretty.Text("integer")
	}
	return ty.width.Doc()
}

func (ty Ty) String() string {
	return vast.Print(ty)
}
