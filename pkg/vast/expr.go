package vast

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
)

// Expr is an immutable expression tree. Nodes are never modified after
// construction, so a sub-expression may be shared by any number of parents.
type Expr interface {
	Printer
	fmt.Stringer

	// ID returns the identifier an expression refers to. Only references
	// have one.
	ID() (string, error)

	isExpr()
}

// Ref is a reference to a named signal, parameter or variable.
type Ref struct {
	Name string
}

// NewRef returns a reference to name.
func NewRef(name string) *Ref {
	return &Ref{Name: name}
}

func (*Ref) isExpr() {}

func (r *Ref) ID() (string, error) {
	return r.Name, nil
}

func (r *Ref) Doc() pretty.Doc {
	return pretty.Text(r.Name)
}

func (r *Ref) String() string {
	return Print(r)
}

// Unary applies a reduction or logical operator to an operand.
type Unary struct {
	Op      Unop
	Operand Expr
}

// NewUnary returns op applied to operand.
func NewUnary(op Unop, operand Expr) *Unary {
	return &Unary{Op: op, Operand: operand}
}

func (*Unary) isExpr() {}

func (u *Unary) ID() (string, error) {
	return "", errors.Wrapf(ErrMissingID, "unary expression %s", u)
}

func (u *Unary) Doc() pretty.Doc {
	return u.Op.Doc().Append(u.Operand.Doc())
}

func (u *Unary) String() string {
	return Print(u)
}

// Binary applies a binary operator to two operands.
//
// Operands are rendered flat, left to right, without parentheses: a nested
// Binary on the right-hand side prints the same as one on the left.
type Binary struct {
	Op    Binop
	Left  Expr
	Right Expr
}

// NewBinary returns left op right.
func NewBinary(op Binop, left, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (*Binary) isExpr() {}

func (b *Binary) ID() (string, error) {
	return "", errors.Wrapf(ErrMissingID, "binary expression %s", b)
}

func (b *Binary) Doc() pretty.Doc {
	return b.Left.Doc().Append(
		pretty.Space(),
		b.Op.Doc(),
		pretty.Space(),
		b.Right.Doc(),
	)
}

func (b *Binary) String() string {
	return Print(b)
}

// Radix is the base a sized literal is written in.
type Radix byte

const (
	Dec Radix = 'd'
	Hex Radix = 'h'
	Bin Radix = 'b'
)

// ULit is a sized unsigned literal, e.g. 32'd8.
type ULit struct {
	Width  Width
	Radix  Radix
	Digits string
}

// NewULit returns a literal of the given width whose digits are written in
// radix.
func NewULit(width uint64, radix Radix, digits string) (*ULit, error) {
	w, err := NewWidth(width)
	if err != nil {
		return nil, errors.Wrapf(err, "literal %s", digits)
	}
	return &ULit{Width: w, Radix: radix, Digits: digits}, nil
}

// NewULitDec returns a decimal literal of the given width.
func NewULitDec(width uint64, digits string) (*ULit, error) {
	return NewULit(width, Dec, digits)
}

// NewUint32 returns value as a 32-bit decimal literal.
func NewUint32(value uint32) *ULit {
	return &ULit{Width: 32, Radix: Dec, Digits: strconv.FormatUint(uint64(value), 10)}
}

func (*ULit) isExpr() {}

func (l *ULit) ID() (string, error) {
	return "", errors.Wrapf(ErrMissingID, "literal %s", l)
}

func (l *ULit) Doc() pretty.Doc {
	return pretty.Text(fmt.Sprintf("%d'%c%s", uint64(l.Width), l.Radix, l.Digits))
}

func (l *ULit) String() string {
	return Print(l)
}

// Str is a string literal.
type Str struct {
	Value string
}

// NewStr returns a string literal.
func NewStr(value string) *Str {
	return &Str{Value: value}
}

func (*Str) isExpr() {}

func (s *Str) ID() (string, error) {
	return "", errors.Wrapf(ErrMissingID, "string literal %s", s)
}

func (s *Str) Doc() pretty.Doc {
	return pretty.Text(strconv.Quote(s.Value))
}

func (s *Str) String() string {
	return Print(s)
}
