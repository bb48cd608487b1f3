package vast

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
)

// Connection binds a named port or parameter of an instantiated module to
// an expression.
type Connection struct {
	Name string
	Expr Expr
}

func (c Connection) Doc() pretty.Doc {
	return pretty.Text(".").Append(
		pretty.Text(c.Name),
		pretty.Text("("),
		c.Expr.Doc(),
		pretty.Text(")"),
	)
}

// Instance instantiates another module. Parameter overrides and port
// connections are rendered in the order they were added.
type Instance struct {
	Module string
	Name   string
	Params []Connection
	Ports  []Connection
}

// NewInstance returns an instance called name of module.
func NewInstance(module, name string) *Instance {
	return &Instance{Module: module, Name: name}
}

// AddParam overrides parameter name with value.
func (inst *Instance) AddParam(name string, value Expr) {
	inst.Params = append(inst.Params, Connection{Name: name, Expr: value})
}

// Connect binds port to expr.
func (inst *Instance) Connect(port string, expr Expr) {
	inst.Ports = append(inst.Ports, Connection{Name: port, Expr: expr})
}

// ID returns the instance name.
func (inst *Instance) ID() (string, error) {
	return inst.Name, nil
}

func (inst *Instance) Doc() pretty.Doc {
	doc := pretty.Text(inst.Module)
	if len(inst.Params) > 0 {
		doc = doc.Append(
			pretty.Space(),
			pretty.Text("#("),
			connectionList(inst.Params),
			pretty.Text(")"),
		)
	}
	return doc.Append(
		pretty.Space(),
		pretty.Text(inst.Name),
		pretty.Space(),
		pretty.Text("("),
		connectionList(inst.Ports),
		pretty.Text(")"),
	)
}

func (inst *Instance) String() string {
	return Print(inst)
}

// connectionList lays connections out on one line, or one per line when
// they don't fit.
func connectionList(conns []Connection) pretty.Doc {
	if len(conns) == 0 {
		return pretty.Nil()
	}
	docs := make([]pretty.Doc, len(conns))
	for i, c := range conns {
		docs[i] = c.Doc()
	}
	return pretty.SoftLine().
		Append(pretty.Intersperse(docs, pretty.Text(",").Append(pretty.Line()))).
		Nest(Indent).
		Append(pretty.SoftLine()).
		Group()
}

// ParAssign is a continuous assignment "assign target = value".
type ParAssign struct {
	Target Expr
	Value  Expr
}

// NewParAssign returns a continuous assignment. The target must be a
// reference.
func NewParAssign(target, value Expr) (*ParAssign, error) {
	if _, err := target.ID(); err != nil {
		return nil, errors.Wrap(err, "assignment target")
	}
	return &ParAssign{Target: target, Value: value}, nil
}

// ID returns the identifier driven by the assignment.
func (a *ParAssign) ID() (string, error) {
	return a.Target.ID()
}

func (a *ParAssign) Doc() pretty.Doc {
	return pretty.Text("assign").Append(pretty.Space(), assignDoc(a.Target, "=", a.Value))
}

func (a *ParAssign) String() string {
	return Print(a)
}
