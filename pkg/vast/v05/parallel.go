package v05

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
	"github.com/vito/vast/pkg/vast"
)

// Parallel is a module-level statement that runs concurrently with the
// others: a continuous assignment, a behavioral block or an instance.
//
// *vast.Instance and *vast.ParAssign are Parallel as well as the types
// declared here.
type Parallel interface {
	vast.Printer
	fmt.Stringer

	// ID returns the identifier the statement drives. Instances and
	// assignments have one; Assign and Always do not and return
	// vast.ErrMissingID.
	ID() (string, error)
}

var (
	_ Parallel = Assign{}
	_ Parallel = (*Always)(nil)
	_ Parallel = (*vast.Instance)(nil)
	_ Parallel = (*vast.ParAssign)(nil)
)

// Assign is the bare continuous assignment keyword.
type Assign struct{}

func (Assign) ID() (string, error) {
	return "", errors.Wrap(vast.ErrMissingID, "assign")
}

func (Assign) Doc() pretty.Doc {
	return pretty.Text("assign")
}

func (a Assign) String() string {
	return vast.Print(a)
}

// Always is a behavioral block. The zero value renders the bare keyword.
type Always struct {
	Sensitivity []vast.Sequential
	Body        []vast.Sequential
}

// NewAlways returns a block triggered by sensitivity running body.
func NewAlways(sensitivity []vast.Sequential, body ...vast.Sequential) *Always {
	return &Always{Sensitivity: sensitivity, Body: body}
}

func (*Always) ID() (string, error) {
	return "", errors.Wrap(vast.ErrMissingID, "always")
}

func (a *Always) Doc() pretty.Doc {
	return vast.BehavioralDoc("always", a.Sensitivity, a.Body)
}

func (a *Always) String() string {
	return vast.Print(a)
}

// NewInst wraps an instance as a parallel statement.
func NewInst(inst *vast.Instance) Parallel {
	return inst
}

// NewParAssign returns "assign target = value" as a parallel statement.
func NewParAssign(target, value vast.Expr) (Parallel, error) {
	a, err := vast.NewParAssign(target, value)
	if err != nil {
		return nil, err
	}
	return a, nil
}
