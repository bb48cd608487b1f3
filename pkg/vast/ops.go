package vast

import (
	"fmt"

	"github.com/vito/vast/pkg/pretty"
)

// Unop is a unary reduction or logical operator.
type Unop int

const (
	LogNot Unop = iota
	Not
	And
	Nand
	Or
	Nor
	Xor
	Xnor
)

var unopTokens = [...]string{
	LogNot: "!",
	Not:    "~",
	And:    "&",
	Nand:   "~&",
	Or:     "|",
	Nor:    "~|",
	Xor:    "^",
	Xnor:   "~^",
}

var unopNames = map[string]Unop{
	"lognot": LogNot,
	"not":    Not,
	"and":    And,
	"nand":   Nand,
	"or":     Or,
	"nor":    Nor,
	"xor":    Xor,
	"xnor":   Xnor,
}

// Unops lists every unary operator in declaration order.
func Unops() []Unop {
	return []Unop{LogNot, Not, And, Nand, Or, Nor, Xor, Xnor}
}

// ParseUnop looks up an operator by its lower-case name, e.g. "nand".
func ParseUnop(name string) (Unop, error) {
	op, ok := unopNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown unary operator %q", name)
	}
	return op, nil
}

// Name is the lower-case name accepted by ParseUnop.
func (op Unop) Name() string {
	for name, o := range unopNames {
		if o == op {
			return name
		}
	}
	return fmt.Sprintf("unop(%d)", int(op))
}

func (op Unop) Doc() pretty.Doc {
	if op < 0 || int(op) >= len(unopTokens) {
		return pretty.Text(fmt.Sprintf("unop(%d)", int(op)))
	}
	return pretty.Text(unopTokens[op])
}

func (op Unop) String() string {
	return Print(op)
}

// Binop is a binary operator.
type Binop int

const (
	Add Binop = iota
)

var binopTokens = [...]string{
	Add: "+",
}

var binopNames = map[string]Binop{
	"add": Add,
}

// ParseBinop looks up an operator by its lower-case name, e.g. "add".
func ParseBinop(name string) (Binop, error) {
	op, ok := binopNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown binary operator %q", name)
	}
	return op, nil
}

func (op Binop) Doc() pretty.Doc {
	if op < 0 || int(op) >= len(binopTokens) {
		return pretty.Text(fmt.Sprintf("binop(%d)", int(op)))
	}
	return pretty.Text(binopTokens[op])
}

func (op Binop) String() string {
	return Print(op)
}

// EventTy is the edge an event in a sensitivity list triggers on.
type EventTy int

const (
	Posedge EventTy = iota
	Negedge
)

// ParseEventTy accepts "posedge" or "negedge".
func ParseEventTy(name string) (EventTy, error) {
	switch name {
	case "posedge":
		return Posedge, nil
	case "negedge":
		return Negedge, nil
	default:
		return 0, fmt.Errorf("unknown event type %q", name)
	}
}

func (ty EventTy) Doc() pretty.Doc {
	switch ty {
	case Negedge:
		return pretty.Text("negedge")
	default:
		return pretty.Text("posedge")
	}
}

func (ty EventTy) String() string {
	return Print(ty)
}
