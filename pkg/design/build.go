package design

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vito/vast/pkg/ioctx"
	"github.com/vito/vast/pkg/vast"
	"github.com/vito/vast/pkg/vast/v05"
	"github.com/vito/vast/pkg/vast/v17"
)

// Rendered is the source text of one module.
type Rendered struct {
	Module  string
	Dialect Dialect
	Source  string
}

// Filename is the conventional file name for the module.
func (r Rendered) Filename() string {
	return r.Module + r.Dialect.Ext()
}

// Render builds and renders every module in the design. A non-empty
// override takes precedence over the dialect named in the file.
func (d *Design) Render(ctx context.Context, override string) ([]Rendered, error) {
	name := d.Dialect
	if override != "" {
		name = override
	}
	dialect, err := ParseDialect(name)
	if err != nil {
		return nil, err
	}

	logger := ioctx.LoggerFromContext(ctx)
	n := namer{normalize: d.NormalizeNames}

	var out []Rendered
	for _, mc := range d.Modules {
		if mc.Name == "" {
			return nil, fmt.Errorf("module without a name")
		}
		b := newBuilder(dialect, n.signal(mc.Name))
		if err := build(b, mc, n); err != nil {
			return nil, fmt.Errorf("module %s: %w", mc.Name, err)
		}
		if len(mc.Ports) > 0 || len(mc.Params) > 0 {
			logger.Info("module header is rendered without ports or params",
				"module", b.name(),
				"ports", len(mc.Ports),
				"params", len(mc.Params))
		}
		logger.Debug("rendered module",
			"module", b.name(),
			"dialect", dialect,
			"ports", len(mc.Ports),
			"stmts", len(mc.Decls)+len(mc.Assigns)+len(mc.Always)+len(mc.Instances))
		out = append(out, Rendered{
			Module:  b.name(),
			Dialect: dialect,
			Source:  b.render(),
		})
	}
	return out, nil
}

// builder hides the differences between the dialect module APIs.
type builder interface {
	name() string
	addParam(name string, value vast.Expr)
	addPort(pc PortConfig, width uint64) error
	addDecl(kind, name string, width uint64) error
	addAssign(target, value vast.Expr) error
	addAlways(sensitivity []vast.Sequential, body []vast.Sequential)
	addInstance(inst *vast.Instance)
	render() string
}

func newBuilder(d Dialect, name string) builder {
	if d == V17 {
		return &v17Builder{v17.New(name)}
	}
	return &v05Builder{v05.New(name)}
}

func build(b builder, mc ModuleConfig, n namer) error {
	for _, pc := range mc.Params {
		value, err := paramValue(pc.Value)
		if err != nil {
			return fmt.Errorf("param %s: %w", pc.Name, err)
		}
		b.addParam(n.param(pc.Name), value)
	}

	for _, pc := range mc.Ports {
		pc.Name = n.signal(pc.Name)
		if err := b.addPort(pc, widthOrScalar(pc.Width)); err != nil {
			return fmt.Errorf("port %s: %w", pc.Name, err)
		}
	}

	for _, dc := range mc.Decls {
		if err := b.addDecl(dc.Kind, n.signal(dc.Name), widthOrScalar(dc.Width)); err != nil {
			return fmt.Errorf("decl %s: %w", dc.Name, err)
		}
	}

	refs := map[string]*vast.Ref{}
	for _, ac := range mc.Assigns {
		target, value, err := assignment(ac, refs, n)
		if err != nil {
			return fmt.Errorf("assign %s: %w", ac.Target, err)
		}
		if err := b.addAssign(target, value); err != nil {
			return fmt.Errorf("assign %s: %w", ac.Target, err)
		}
	}

	for i, al := range mc.Always {
		sensitivity, body, err := behavioral(al, refs, n)
		if err != nil {
			return fmt.Errorf("always #%d: %w", i+1, err)
		}
		b.addAlways(sensitivity, body)
	}

	for _, ic := range mc.Instances {
		inst := vast.NewInstance(n.signal(ic.Module), n.signal(ic.Name))
		for _, k := range sortedKeys(ic.Params) {
			value, err := paramValue(ic.Params[k])
			if err != nil {
				return fmt.Errorf("instance %s: param %s: %w", ic.Name, k, err)
			}
			inst.AddParam(n.param(k), value)
		}
		for _, k := range sortedKeys(ic.Ports) {
			inst.Connect(n.signal(k), operand(ic.Ports[k], refs, n))
		}
		b.addInstance(inst)
	}
	return nil
}

func widthOrScalar(w *uint64) uint64 {
	if w == nil {
		return 1
	}
	return *w
}

func paramValue(v any) (vast.Expr, error) {
	switch x := v.(type) {
	case int64:
		if x < 0 || x > math.MaxUint32 {
			return nil, fmt.Errorf("value %d out of range for a 32-bit parameter", x)
		}
		return vast.NewUint32(uint32(x)), nil
	case string:
		return vast.NewStr(x), nil
	case nil:
		return nil, fmt.Errorf("missing value")
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// operand resolves a name to a reference, reusing one node per name so that
// every use shares it.
func operand(arg string, refs map[string]*vast.Ref, n namer) vast.Expr {
	if v, err := strconv.ParseUint(arg, 10, 32); err == nil {
		return vast.NewUint32(uint32(v))
	}
	name := n.signal(arg)
	ref, ok := refs[name]
	if !ok {
		ref = vast.NewRef(name)
		refs[name] = ref
	}
	return ref
}

func assignment(ac AssignConfig, refs map[string]*vast.Ref, n namer) (vast.Expr, vast.Expr, error) {
	if ac.Target == "" {
		return nil, nil, fmt.Errorf("missing target")
	}
	target := operand(ac.Target, refs, n)

	args := make([]vast.Expr, len(ac.Args))
	for i, a := range ac.Args {
		args[i] = operand(a, refs, n)
	}

	if ac.Op == "" {
		if len(args) != 1 {
			return nil, nil, fmt.Errorf("expected 1 operand, got %d", len(args))
		}
		return target, args[0], nil
	}

	if op, err := vast.ParseBinop(ac.Op); err == nil {
		if len(args) < 2 {
			return nil, nil, fmt.Errorf("%s: expected at least 2 operands, got %d", ac.Op, len(args))
		}
		value := args[0]
		for _, rhs := range args[1:] {
			value = vast.NewBinary(op, value, rhs)
		}
		return target, value, nil
	}

	op, err := vast.ParseUnop(ac.Op)
	if err != nil {
		return nil, nil, err
	}
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%s: expected 1 operand, got %d", ac.Op, len(args))
	}
	return target, vast.NewUnary(op, args[0]), nil
}

func behavioral(al AlwaysConfig, refs map[string]*vast.Ref, n namer) ([]vast.Sequential, []vast.Sequential, error) {
	var sensitivity []vast.Sequential
	if al.Edge == "" {
		sensitivity = []vast.Sequential{vast.Wildcard{}}
	} else {
		edge, err := vast.ParseEventTy(al.Edge)
		if err != nil {
			return nil, nil, err
		}
		if al.Signal == "" {
			return nil, nil, fmt.Errorf("%s without a signal", al.Edge)
		}
		sensitivity = []vast.Sequential{vast.NewEvent(edge, operand(al.Signal, refs, n))}
	}

	var body []vast.Sequential
	for _, ac := range al.Assigns {
		target, value, err := assignment(ac, refs, n)
		if err != nil {
			return nil, nil, fmt.Errorf("assign %s: %w", ac.Target, err)
		}
		if al.Edge == "" {
			body = append(body, vast.NewBlockingAssign(target, value))
		} else {
			body = append(body, vast.NewNonBlockingAssign(target, value))
		}
	}
	return sensitivity, body, nil
}

type v05Builder struct {
	m *v05.Module
}

func (b *v05Builder) name() string { return b.m.Name() }

func (b *v05Builder) addParam(name string, value vast.Expr) {
	b.m.AddParam(v05.NewParam(name, value))
}

func (b *v05Builder) addPort(pc PortConfig, width uint64) error {
	switch pc.Dir {
	case "input":
		if pc.Reg {
			return fmt.Errorf("input ports cannot be reg")
		}
		return b.m.AddInput(pc.Name, width)
	case "output":
		if pc.Reg {
			return b.m.AddOutputReg(pc.Name, width)
		}
		return b.m.AddOutput(pc.Name, width)
	default:
		return fmt.Errorf("unknown port direction %q", pc.Dir)
	}
}

func (b *v05Builder) addDecl(kind, name string, width uint64) error {
	var decl v05.Decl
	var err error
	switch kind {
	case "wire":
		decl, err = v05.NewWire(name, width)
	case "reg":
		decl, err = v05.NewReg(name, width)
	case "int", "integer":
		decl = v05.NewInt(name)
	default:
		return fmt.Errorf("unknown declaration kind %q", kind)
	}
	if err != nil {
		return err
	}
	b.m.AddDecl(decl)
	return nil
}

func (b *v05Builder) addAssign(target, value vast.Expr) error {
	par, err := v05.NewParAssign(target, value)
	if err != nil {
		return err
	}
	b.m.AddParallel(par)
	return nil
}

func (b *v05Builder) addAlways(sensitivity []vast.Sequential, body []vast.Sequential) {
	b.m.AddParallel(v05.NewAlways(sensitivity, body...))
}

func (b *v05Builder) addInstance(inst *vast.Instance) {
	b.m.AddInstance(inst)
}

func (b *v05Builder) render() string {
	return b.m.String()
}

type v17Builder struct {
	m *v17.Module
}

func (b *v17Builder) name() string { return b.m.Name() }

func (b *v17Builder) addParam(name string, value vast.Expr) {
	b.m.AddParam(v17.NewParam(name, value))
}

func (b *v17Builder) addPort(pc PortConfig, width uint64) error {
	switch pc.Dir {
	case "input":
		if pc.Reg {
			return fmt.Errorf("input ports cannot be reg")
		}
		return b.m.AddInput(pc.Name, width)
	case "output":
		if pc.Reg {
			return b.m.AddOutputReg(pc.Name, width)
		}
		return b.m.AddOutput(pc.Name, width)
	default:
		return fmt.Errorf("unknown port direction %q", pc.Dir)
	}
}

func (b *v17Builder) addDecl(kind, name string, width uint64) error {
	var decl v17.Decl
	var err error
	switch kind {
	case "wire":
		decl, err = v17.NewWire(name, width)
	case "reg":
		decl, err = v17.NewReg(name, width)
	case "logic":
		decl, err = v17.NewLogic(name, width)
	case "int", "integer":
		decl = v17.NewInt(name)
	default:
		return fmt.Errorf("unknown declaration kind %q", kind)
	}
	if err != nil {
		return err
	}
	b.m.AddDecl(decl)
	return nil
}

func (b *v17Builder) addAssign(target, value vast.Expr) error {
	par, err := v17.NewParAssign(target, value)
	if err != nil {
		return err
	}
	b.m.AddParallel(par)
	return nil
}

func (b *v17Builder) addAlways(sensitivity []vast.Sequential, body []vast.Sequential) {
	if len(sensitivity) == 1 {
		if _, ok := sensitivity[0].(vast.Wildcard); ok {
			b.m.AddParallel(v17.NewAlwaysComb(body...))
			return
		}
	}
	b.m.AddParallel(v17.NewAlwaysFF(sensitivity, body...))
}

func (b *v17Builder) addInstance(inst *vast.Instance) {
	b.m.AddInstance(inst)
}

func (b *v17Builder) render() string {
	return b.m.String()
}

// Join concatenates rendered modules, separated by blank lines, with a
// trailing newline.
func Join(rs []Rendered) string {
	var sb strings.Builder
	for i, r := range rs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.Source)
		sb.WriteString("\n")
	}
	return sb.String()
}
