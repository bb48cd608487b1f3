package v05

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
	"github.com/vito/vast/pkg/vast"
)

// Decl is a named declaration.
type Decl interface {
	vast.Printer
	fmt.Stringer
	Name() string
	isDecl()
}

// Int declares an integer variable.
type Int struct {
	name string
	ty   Ty
}

// NewInt declares an integer called name.
func NewInt(name string) *Int {
	return &Int{name: name, ty: NewIntTy()}
}

func (*Int) isDecl() {}

func (d *Int) Name() string { return d.name }

func (d *Int) Ty() Ty { return d.ty }

func (d *Int) Doc() pretty.Doc {
	return d.ty.Doc().Append(pretty.Space(), pretty.Text(d.name))
}

func (d *Int) String() string {
	return vast.Print(d)
}

// Wire declares a net.
type Wire struct {
	name string
	ty   Ty
}

// NewWire declares a wire of the given width.
func NewWire(name string, width uint64) (*Wire, error) {
	ty, err := NewWidthTy(width)
	if err != nil {
		return nil, errors.Wrapf(err, "wire %s", name)
	}
	return &Wire{name: name, ty: ty}, nil
}

func (*Wire) isDecl() {}

func (d *Wire) Name() string { return d.name }

func (d *Wire) Ty() Ty { return d.ty }

func (d *Wire) Doc() pretty.Doc {
	return vast.VectorDoc("wire", d.ty.width, d.name)
}

func (d *Wire) String() string {
	return vast.Print(d)
}

// Reg declares a variable assigned from behavioral blocks.
type Reg struct {
	name string
	ty   Ty
}

// NewReg declares a reg of the given width.
func NewReg(name string, width uint64) (*Reg, error) {
	ty, err := NewWidthTy(width)
	if err != nil {
		return nil, errors.Wrapf(err, "reg %s", name)
	}
	return &Reg{name: name, ty: ty}, nil
}

func (*Reg) isDecl() {}

func (d *Reg) Name() string { return d.name }

func (d *Reg) Ty() Ty { return d.ty }

func (d *Reg) Doc() pretty.Doc {
	return vast.VectorDoc("reg", d.ty.width, d.name)
}

func (d *Reg) String() string {
	return vast.Print(d)
}

// Param declares a module parameter with a default value.
type Param struct {
	name  string
	value vast.Expr
}

// NewParam declares a parameter with an arbitrary default.
func NewParam(name string, value vast.Expr) *Param {
	return &Param{name: name, value: value}
}

// NewParamUint declares a parameter defaulting to a 32-bit decimal.
func NewParamUint(name string, value uint32) *Param {
	return NewParam(name, vast.NewUint32(value))
}

// NewParamStr declares a parameter defaulting to a string.
func NewParamStr(name, value string) *Param {
	return NewParam(name, vast.NewStr(value))
}

func (*Param) isDecl() {}

func (d *Param) Name() string { return d.name }

func (d *Param) Value() vast.Expr { return d.value }

func (d *Param) Doc() pretty.Doc {
	return pretty.Text("parameter").Append(
		pretty.Space(),
		pretty.Text(d.name),
		pretty.Text(" = "),
		d.value.Doc(),
	)
}

func (d *Param) String() string {
	return vast.Print(d)
}
