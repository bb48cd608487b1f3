package vast

import (
	"fmt"

	"github.com/vito/vast/pkg/pretty"
)

// Sequential is a procedural statement or sensitivity-list entry, used
// inside behavioral blocks.
type Sequential interface {
	Printer
	fmt.Stringer

	// terminated reports whether the statement needs a trailing ";" when
	// placed in a block
	terminated() bool
}

// Wildcard is the catch-all sensitivity entry, rendered "*".
type Wildcard struct{}

func (Wildcard) terminated() bool { return false }

func (Wildcard) Doc() pretty.Doc {
	return pretty.Text("*")
}

func (w Wildcard) String() string {
	return Print(w)
}

// Event is an edge-triggered sensitivity entry, e.g. "posedge clk".
type Event struct {
	Edge EventTy
	Expr Expr
}

// NewEvent returns an event triggered on edge of expr.
func NewEvent(edge EventTy, expr Expr) *Event {
	return &Event{Edge: edge, Expr: expr}
}

func (*Event) terminated() bool { return false }

func (e *Event) Doc() pretty.Doc {
	return e.Edge.Doc().Append(pretty.Space(), e.Expr.Doc())
}

func (e *Event) String() string {
	return Print(e)
}

// If is a conditional with ordered then and else branches. An empty Else
// omits the else clause.
type If struct {
	Cond Expr
	Then []Sequential
	Else []Sequential
}

// NewIf returns a conditional on cond.
func NewIf(cond Expr, then, els []Sequential) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

func (*If) terminated() bool { return false }

func (i *If) Doc() pretty.Doc {
	doc := pretty.Text("if").Append(
		pretty.Space(),
		pretty.Text("("),
		i.Cond.Doc(),
		pretty.Text(")"),
		pretty.Space(),
		BlockDoc(i.Then),
	)
	switch {
	case len(i.Else) == 0:
	case len(i.Else) == 1 && isIf(i.Else[0]):
		doc = doc.Append(pretty.Space(), pretty.Text("else"), pretty.Space(), i.Else[0].Doc())
	default:
		doc = doc.Append(pretty.Space(), pretty.Text("else"), pretty.Space(), BlockDoc(i.Else))
	}
	return doc
}

func (i *If) String() string {
	return Print(i)
}

func isIf(s Sequential) bool {
	_, ok := s.(*If)
	return ok
}

// BlockingAssign is a procedural assignment "target = value".
type BlockingAssign struct {
	Target Expr
	Value  Expr
}

// NewBlockingAssign returns target = value.
func NewBlockingAssign(target, value Expr) *BlockingAssign {
	return &BlockingAssign{Target: target, Value: value}
}

func (*BlockingAssign) terminated() bool { return true }

func (a *BlockingAssign) Doc() pretty.Doc {
	return assignDoc(a.Target, "=", a.Value)
}

func (a *BlockingAssign) String() string {
	return Print(a)
}

// NonBlockingAssign is a procedural assignment "target <= value".
type NonBlockingAssign struct {
	Target Expr
	Value  Expr
}

// NewNonBlockingAssign returns target <= value.
func NewNonBlockingAssign(target, value Expr) *NonBlockingAssign {
	return &NonBlockingAssign{Target: target, Value: value}
}

func (*NonBlockingAssign) terminated() bool { return true }

func (a *NonBlockingAssign) Doc() pretty.Doc {
	return assignDoc(a.Target, "<=", a.Value)
}

func (a *NonBlockingAssign) String() string {
	return Print(a)
}

func assignDoc(target Expr, op string, value Expr) pretty.Doc {
	return target.Doc().Append(pretty.Space(), pretty.Text(op), pretty.Space(), value.Doc())
}

// BlockDoc renders stmts as a begin/end block with its body indented.
func BlockDoc(stmts []Sequential) pretty.Doc {
	body := pretty.Nil()
	for _, s := range stmts {
		body = body.Append(pretty.Hardline(), s.Doc())
		if s.terminated() {
			body = body.Append(pretty.Text(";"))
		}
	}
	return pretty.Text("begin").Append(
		body.Nest(Indent),
		pretty.Hardline(),
		pretty.Text("end"),
	)
}

// SensitivityDoc renders "@(a or b)", or nothing for an empty list.
func SensitivityDoc(events []Sequential) pretty.Doc {
	if len(events) == 0 {
		return pretty.Nil()
	}
	docs := make([]pretty.Doc, len(events))
	for i, e := range events {
		docs[i] = e.Doc()
	}
	return pretty.Text("@(").Append(
		pretty.Intersperse(docs, pretty.Text(" or ")),
		pretty.Text(")"),
	)
}

// BehavioralDoc renders a behavioral block introduced by keyword, such as
// "always @(posedge clk) begin ... end". With no sensitivity list and no
// body only the keyword is rendered.
func BehavioralDoc(keyword string, sensitivity, body []Sequential) pretty.Doc {
	doc := pretty.Text(keyword)
	if len(sensitivity) > 0 {
		doc = doc.Append(pretty.Space(), SensitivityDoc(sensitivity))
	}
	if len(body) > 0 {
		doc = doc.Append(pretty.Space(), BlockDoc(body))
	}
	return doc
}
