package v17

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
	"github.com/vito/vast/pkg/vast"
)

// Parallel is a module-level statement. *vast.Instance and *vast.ParAssign
// satisfy it alongside the types declared here.
type Parallel interface {
	vast.Printer
	fmt.Stringer
	ID() (string, error)
}

var (
	_ Parallel = Assign{}
	_ Parallel = (*AlwaysComb)(nil)
	_ Parallel = (*AlwaysFF)(nil)
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

// AlwaysComb is a combinational block with an inferred sensitivity list.
type AlwaysComb struct {
	Body []vast.Sequential
}

// NewAlwaysComb returns a combinational block running body.
func NewAlwaysComb(body ...vast.Sequential) *AlwaysComb {
	return &AlwaysComb{Body: body}
}

func (*AlwaysComb) ID() (string, error) {
	return "", errors.Wrap(vast.ErrMissingID, "always_comb")
}

func (a *AlwaysComb) Doc() pretty.Doc {
	return vast.BehavioralDoc("always_comb", nil, a.Body)
}

func (a *AlwaysComb) String() string {
	return vast.Print(a)
}

// AlwaysFF is a sequential block triggered by edges.
type AlwaysFF struct {
	Sensitivity []vast.Sequential
	Body        []vast.Sequential
}

// NewAlwaysFF returns a block triggered by sensitivity running body.
func NewAlwaysFF(sensitivity []vast.Sequential, body ...vast.Sequential) *AlwaysFF {
	return &AlwaysFF{Sensitivity: sensitivity, Body: body}
}

func (*AlwaysFF) ID() (string, error) {
	return "", errors.Wrap(vast.ErrMissingID, "always_ff")
}

func (a *AlwaysFF) Doc() pretty.Doc {
	return vast.BehavioralDoc("always_ff", a.Sensitivity, a.Body)
}

func (a *AlwaysFF) String() string {
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
