package v17

import (
	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/vast"
)

// Stmt is a module body item.
type Stmt = vast.GenericStmt[Decl, Parallel]

// Port is a directed declaration.
type Port = vast.GenericPort[Decl]

// NewDeclStmt wraps a declaration as a body item.
func NewDeclStmt(decl Decl) Stmt {
	return vast.NewDeclStmt[Decl, Parallel](decl)
}

// NewParallelStmt wraps a parallel statement as a body item.
func NewParallelStmt(par Parallel) Stmt {
	return vast.NewParallelStmt[Decl, Parallel](par)
}

// NewInput returns an input wire port.
func NewInput(name string, width uint64) (Port, error) {
	wire, err := NewWire(name, width)
	if err != nil {
		return Port{}, errors.Wrap(err, "input")
	}
	return vast.NewInputPort[Decl](wire), nil
}

// NewOutput returns an output wire port.
func NewOutput(name string, width uint64) (Port, error) {
	wire, err := NewWire(name, width)
	if err != nil {
		return Port{}, errors.Wrap(err, "output")
	}
	return vast.NewOutputPort[Decl](wire), nil
}

// NewOutputReg returns an output port driven from a procedural block.
func NewOutputReg(name string, width uint64) (Port, error) {
	reg, err := NewReg(name, width)
	if err != nil {
		return Port{}, errors.Wrap(err, "output")
	}
	return vast.NewOutputPort[Decl](reg), nil
}

// NewOutputLogic returns an output logic port, which may be driven either
// continuously or from a procedural block.
func NewOutputLogic(name string, width uint64) (Port, error) {
	logic, err := NewLogic(name, width)
	if err != nil {
		return Port{}, errors.Wrap(err, "output")
	}
	return vast.NewOutputPort[Decl](logic), nil
}

// Module is a SystemVerilog-2017 module.
type Module struct {
	*vast.GenericModule[Decl, Parallel]
}

// New returns an empty module called name.
func New(name string) *Module {
	return &Module{vast.NewGenericModule[Decl, Parallel](name)}
}

func (m *Module) AddParamUint(name string, value uint32) {
	m.AddParam(NewParamUint(name, value))
}

func (m *Module) AddParamStr(name, value string) {
	m.AddParam(NewParamStr(name, value))
}

func (m *Module) AddInput(name string, width uint64) error {
	return m.addPort(NewInput(name, width))
}

func (m *Module) AddOutput(name string, width uint64) error {
	return m.addPort(NewOutput(name, width))
}

func (m *Module) AddOutputReg(name string, width uint64) error {
	return m.addPort(NewOutputReg(name, width))
}

func (m *Module) AddOutputLogic(name string, width uint64) error {
	return m.addPort(NewOutputLogic(name, width))
}

func (m *Module) addPort(port Port, err error) error {
	if err != nil {
		return err
	}
	m.AddPort(port)
	return nil
}

// AddInstance appends an instance of another module to the body.
func (m *Module) AddInstance(inst *vast.Instance) {
	m.AddParallel(NewInst(inst))
}
