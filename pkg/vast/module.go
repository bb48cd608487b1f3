package vast

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/pretty"
)

// StmtKind tells the two halves of a GenericStmt apart.
type StmtKind int

const (
	DeclStmt StmtKind = iota
	ParallelStmt
)

// GenericStmt is a module body item: either a declaration from a dialect's
// declaration universe D, or a parallel statement from its universe P.
//
// The zero GenericStmt is not valid; use NewDeclStmt or NewParallelStmt.
type GenericStmt[D, P Printer] struct {
	kind StmtKind
	decl D
	par  P
}

// NewDeclStmt wraps a declaration. It panics with ErrNilStmt if decl is nil,
// which usually means a constructor error was ignored.
func NewDeclStmt[D, P Printer](decl D) GenericStmt[D, P] {
	mustNotBeNil(decl, "declaration")
	return GenericStmt[D, P]{kind: DeclStmt, decl: decl}
}

// NewParallelStmt wraps a parallel statement. It panics with ErrNilStmt if
// par is nil.
func NewParallelStmt[D, P Printer](par P) GenericStmt[D, P] {
	mustNotBeNil(par, "parallel statement")
	return GenericStmt[D, P]{kind: ParallelStmt, par: par}
}

func mustNotBeNil(p Printer, what string) {
	if isNil(p) {
		panic(errors.Wrap(ErrNilStmt, what))
	}
}

func isNil(p Printer) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (s GenericStmt[D, P]) Kind() StmtKind {
	return s.kind
}

// Decl returns the wrapped declaration, if s is one.
func (s GenericStmt[D, P]) Decl() (D, bool) {
	return s.decl, s.kind == DeclStmt
}

// Parallel returns the wrapped parallel statement, if s is one.
func (s GenericStmt[D, P]) Parallel() (P, bool) {
	return s.par, s.kind == ParallelStmt
}

func (s GenericStmt[D, P]) Doc() pretty.Doc {
	if s.kind == DeclStmt {
		return s.decl.Doc()
	}
	return s.par.Doc()
}

func (s GenericStmt[D, P]) String() string {
	return Print(s)
}

// Direction is the direction of a port.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) Doc() pretty.Doc {
	if d == Output {
		return pretty.Text("output")
	}
	return pretty.Text("input")
}

func (d Direction) String() string {
	return Print(d)
}

// GenericPort gives a declaration a direction.
type GenericPort[D Printer] struct {
	Dir  Direction
	Decl D
}

// NewInputPort returns decl as an input.
func NewInputPort[D Printer](decl D) GenericPort[D] {
	return GenericPort[D]{Dir: Input, Decl: decl}
}

// NewOutputPort returns decl as an output.
func NewOutputPort[D Printer](decl D) GenericPort[D] {
	return GenericPort[D]{Dir: Output, Decl: decl}
}

func (p GenericPort[D]) Doc() pretty.Doc {
	return p.Dir.Doc().Append(pretty.Space(), p.Decl.Doc())
}

func (p GenericPort[D]) String() string {
	return Print(p)
}

// GenericModule is a named module with parameters, ports and an ordered
// body, parametrized over a dialect's declarations D and parallel
// statements P.
//
// Modules are built by appending; nothing is ever removed or reordered.
type GenericModule[D, P Printer] struct {
	name   string
	params []D
	ports  []GenericPort[D]
	body   []GenericStmt[D, P]
}

// NewGenericModule returns an empty module called name.
func NewGenericModule[D, P Printer](name string) *GenericModule[D, P] {
	return &GenericModule[D, P]{name: name}
}

func (m *GenericModule[D, P]) Name() string {
	return m.name
}

// Params returns the parameters in insertion order. The returned slice, like
// those from Ports and Body, must not be modified; appending to it never
// affects the module.
func (m *GenericModule[D, P]) Params() []D {
	return slices.Clip(m.params)
}

func (m *GenericModule[D, P]) Ports() []GenericPort[D] {
	return slices.Clip(m.ports)
}

func (m *GenericModule[D, P]) Body() []GenericStmt[D, P] {
	return slices.Clip(m.body)
}

// AddParam appends a parameter declaration.
func (m *GenericModule[D, P]) AddParam(decl D) {
	m.params = append(m.params, decl)
}

// AddPort appends a port.
func (m *GenericModule[D, P]) AddPort(port GenericPort[D]) {
	m.ports = append(m.ports, port)
}

// AddStmt appends a statement to the body. It panics with ErrNilStmt on a
// zero GenericStmt.
func (m *GenericModule[D, P]) AddStmt(stmt GenericStmt[D, P]) {
	if stmt.kind == DeclStmt {
		mustNotBeNil(stmt.decl, "declaration")
	} else {
		mustNotBeNil(stmt.par, "parallel statement")
	}
	m.body = append(m.body, stmt)
}

// AddDecl appends a declaration to the body.
func (m *GenericModule[D, P]) AddDecl(decl D) {
	m.AddStmt(NewDeclStmt[D, P](decl))
}

// AddParallel appends a parallel statement to the body.
func (m *GenericModule[D, P]) AddParallel(par P) {
	m.AddStmt(NewParallelStmt[D](par))
}

// Doc renders the module header, each body statement on its own indented
// line terminated by ";", and the closing endmodule.
func (m *GenericModule[D, P]) Doc() pretty.Doc {
	body := pretty.Nil()
	for _, stmt := range m.body {
		body = body.Append(pretty.Hardline(), stmt.Doc(), pretty.Text(";"))
	}
	body = body.Nest(Indent).Group()
	return pretty.Text("module").Append(
		pretty.Space(),
		pretty.Text(m.name),
		pretty.Space(),
		pretty.Text("("),
		pretty.Text(")"),
		pretty.Text(";"),
		body,
		pretty.Hardline(),
		pretty.Text("endmodule"),
	)
}

func (m *GenericModule[D, P]) String() string {
	return Print(m)
}
