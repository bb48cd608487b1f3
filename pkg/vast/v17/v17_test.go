package v17

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vito/vast/pkg/vast"
)

func TestDecls(t *testing.T) {
	bit, err := NewLogic("valid", 1)
	require.NoError(t, err)
	require.Equal(t, "logic valid", bit.String())

	bus, err := NewLogic("data", 32)
	require.NoError(t, err)
	require.Equal(t, "logic [31:0] data", bus.String())

	wire, err := NewWire("sum", 4)
	require.NoError(t, err)
	require.Equal(t, "wire [3:0] sum", wire.String())
	require.False(t, wire.Ty().IsScalar())

	reg, err := NewReg("q", 1)
	require.NoError(t, err)
	require.Equal(t, "reg q", reg.String())
	require.True(t, reg.Ty().IsScalar())

	wideReg, err := NewReg("acc", 16)
	require.NoError(t, err)
	require.Equal(t, "reg [15:0] acc", wideReg.String())

	require.Equal(t, "int i", NewInt("i").String())
	require.Equal(t, "parameter DEPTH = 32'd16", NewParamUint("DEPTH", 16).String())
	require.Equal(t, `parameter MODE = "fast"`, NewParamStr("MODE", "fast").String())

	_, err = NewLogic("data", 0)
	require.ErrorIs(t, err, vast.ErrInvalidWidth)
	_, err = NewWire("data", 0)
	require.ErrorIs(t, err, vast.ErrInvalidWidth)
	_, err = NewReg("data", 0)
	require.ErrorIs(t, err, vast.ErrInvalidWidth)

	_, err = NewIntTy().Width()
	require.ErrorIs(t, err, vast.ErrNotSized)
}

func TestPorts(t *testing.T) {
	m := New("fifo")
	require.NoError(t, m.AddInput("clk", 1))
	require.NoError(t, m.AddOutput("data", 8))
	require.NoError(t, m.AddOutputReg("full", 1))
	require.NoError(t, m.AddOutputLogic("count", 4))
	require.ErrorIs(t, m.AddOutput("bad", 0), vast.ErrInvalidWidth)
	require.ErrorIs(t, m.AddOutputReg("bad", 0), vast.ErrInvalidWidth)
	require.ErrorIs(t, m.AddOutputLogic("bad", 0), vast.ErrInvalidWidth)

	require.Len(t, m.Ports(), 4)
	require.Equal(t, "input wire clk", m.Ports()[0].String())
	require.Equal(t, "output wire [7:0] data", m.Ports()[1].String())
	require.Equal(t, "output reg full", m.Ports()[2].String())
	require.Equal(t, "output logic [3:0] count", m.Ports()[3].String())

	_, isReg := m.Ports()[2].Decl.(*Reg)
	require.True(t, isReg)
}

func TestModule(t *testing.T) {
	m := New("pipe")
	m.AddParamUint("DEPTH", 2)

	q, err := NewLogic("q", 8)
	require.NoError(t, err)
	m.AddStmt(NewDeclStmt(q))

	d := vast.NewRef("d")
	m.AddParallel(NewAlwaysFF(
		[]vast.Sequential{vast.NewEvent(vast.Posedge, vast.NewRef("clk"))},
		vast.NewNonBlockingAssign(vast.NewRef("q"), d),
	))
	m.AddParallel(NewAlwaysComb(
		vast.NewBlockingAssign(vast.NewRef("y"), vast.NewUnary(vast.Xor, d)),
	))

	assign, err := NewParAssign(vast.NewRef("z"), vast.NewBinary(vast.Add, d, d))
	require.NoError(t, err)
	m.AddStmt(NewParallelStmt(assign))

	inst := vast.NewInstance("reg_slice", "u_slice")
	inst.AddParam("W", vast.NewUint32(8))
	inst.Connect("d", d)
	m.AddInstance(inst)

	require.Equal(t, `module pipe ();
    logic [7:0] q;
    always_ff @(posedge clk) begin
        q <= d;
    end;
    always_comb begin
        y = ^d;
    end;
    assign z = d + d;
    reg_slice #(.W(32'd8)) u_slice (.d(d));
endmodule`, m.String())
}

func TestIDs(t *testing.T) {
	for _, par := range []Parallel{Assign{}, NewAlwaysComb(), NewAlwaysFF(nil)} {
		_, err := par.ID()
		require.ErrorIs(t, err, vast.ErrMissingID)
	}

	id, err := NewInst(vast.NewInstance("m", "u0")).ID()
	require.NoError(t, err)
	require.Equal(t, "u0", id)

	require.Equal(t, "always_ff", NewAlwaysFF(nil).String())
	require.Equal(t, "assign", Assign{}.String())
}

func TestWireAndReg(t *testing.T) {
	m := New("latch")
	require.NoError(t, m.AddInput("d", 8))
	require.NoError(t, m.AddOutputReg("q", 8))

	next, err := NewWire("next", 8)
	require.NoError(t, err)
	m.AddDecl(next)

	held, err := NewReg("held", 1)
	require.NoError(t, err)
	m.AddStmt(NewDeclStmt(held))

	require.Equal(t, `module latch ();
    wire [7:0] next;
    reg held;
endmodule`, m.String())
}
