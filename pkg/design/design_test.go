package design

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vito/vast/pkg/ioctx"
	"github.com/vito/vast/pkg/vast"
	"gotest.tools/v3/golden"
)

func TestParseDialect(t *testing.T) {
	for in, expected := range map[string]Dialect{
		"":              V05,
		"2005":          V05,
		"Verilog":       V05,
		"v17":           V17,
		"SystemVerilog": V17,
	} {
		d, err := ParseDialect(in)
		require.NoError(t, err, in)
		require.Equal(t, expected, d, in)
	}

	_, err := ParseDialect("vhdl")
	require.Error(t, err)

	require.Equal(t, ".v", V05.Ext())
	require.Equal(t, ".sv", V17.Ext())
}

func TestRenderGolden(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "accumulate.toml"))
	require.NoError(t, err)
	require.Len(t, d.Modules, 2)

	ctx := context.Background()

	t.Run("file dialect", func(t *testing.T) {
		rendered, err := d.Render(ctx, "")
		require.NoError(t, err)
		require.Len(t, rendered, 2)
		require.Equal(t, "add_accumulate.v", rendered[0].Filename())
		require.Equal(t, "edge_detect.v", rendered[1].Filename())
		golden.Assert(t, Join(rendered), "accumulate.v.golden")
	})

	t.Run("overridden dialect", func(t *testing.T) {
		rendered, err := d.Render(ctx, "v17")
		require.NoError(t, err)
		require.Equal(t, "add_accumulate.sv", rendered[0].Filename())
		golden.Assert(t, Join(rendered), "accumulate.sv.golden")
	})

	t.Run("repeatable", func(t *testing.T) {
		first, err := d.Render(ctx, "")
		require.NoError(t, err)
		second, err := d.Render(ctx, "")
		require.NoError(t, err)
		require.Equal(t, Join(first), Join(second))
	})
}

func TestNamesKeptWithoutNormalization(t *testing.T) {
	d, err := Parse(`
[[module]]
name = "TopLevel"
decls = [{ kind = "wire", name = "dataIn", width = 2 }]
`)
	require.NoError(t, err)

	rendered, err := d.Render(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "module TopLevel ();\n    wire [1:0] dataIn;\nendmodule", rendered[0].Source)
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   error
		msg  string
	}{
		{
			name: "zero width port",
			src: `[[module]]
name = "m"
ports = [{ name = "a", dir = "input", width = 0 }]`,
			is: vast.ErrInvalidWidth,
		},
		{
			name: "zero width decl",
			src: `dialect = "v17"
[[module]]
name = "m"
decls = [{ kind = "logic", name = "a", width = 0 }]`,
			is: vast.ErrInvalidWidth,
		},
		{
			name: "literal assignment target",
			src: `[[module]]
name = "m"
assigns = [{ target = "1", args = ["a"] }]`,
			is: vast.ErrMissingID,
		},
		{
			name: "unknown operator",
			src: `[[module]]
name = "m"
assigns = [{ target = "y", op = "mul", args = ["a", "b"] }]`,
			msg: `unknown unary operator "mul"`,
		},
		{
			name: "unary arity",
			src: `[[module]]
name = "m"
assigns = [{ target = "y", op = "xor", args = ["a", "b"] }]`,
			msg: "xor: expected 1 operand, got 2",
		},
		{
			name: "unknown direction",
			src: `[[module]]
name = "m"
ports = [{ name = "a", dir = "inout" }]`,
			msg: `unknown port direction "inout"`,
		},
		{
			name: "reg input",
			src: `[[module]]
name = "m"
ports = [{ name = "a", dir = "input", reg = true }]`,
			msg: "input ports cannot be reg",
		},
		{
			name: "negative param",
			src: `[[module]]
name = "m"
params = [{ name = "P", value = -1 }]`,
			msg: "out of range",
		},
		{
			name: "edge without signal",
			src: `[[module]]
name = "m"
[[module.always]]
edge = "posedge"`,
			msg: "posedge without a signal",
		},
		{
			name: "unnamed module",
			src:  `[[module]]`,
			msg:  "module without a name",
		},
		{
			name: "unknown dialect",
			src:  `dialect = "vhdl"`,
			msg:  `unknown dialect "vhdl"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.src)
			require.NoError(t, err)

			_, err = d.Render(context.Background(), "")
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				require.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[module]]
name = "m"
port = [{ name = "a", dir = "input" }]
`), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "unknown keys: module.port")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(`
[[module]]
name = "m"
decl = [{ kind = "wire", name = "a" }]
`)
	require.ErrorContains(t, err, "parsing design: unknown keys: module.decl")

	_, err = Parse(`[[module]`)
	require.ErrorContains(t, err, "parsing design:")
}

func TestV17Vocabulary(t *testing.T) {
	d, err := Parse(`
dialect = "v17"
[[module]]
name = "m"
ports = [
  { name = "a", dir = "input" },
  { name = "q", dir = "output", width = 4, reg = true },
]
decls = [
  { kind = "wire", name = "w", width = 2 },
  { kind = "reg", name = "r" },
  { kind = "logic", name = "l", width = 3 },
  { kind = "int", name = "i" },
]
`)
	require.NoError(t, err)

	rendered, err := d.Render(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, `module m ();
    wire [1:0] w;
    reg r;
    logic [2:0] l;
    int i;
endmodule`, rendered[0].Source)

	d, err = Parse(`
dialect = "v17"
[[module]]
name = "m"
ports = [{ name = "a", dir = "input", reg = true }]
`)
	require.NoError(t, err)
	_, err = d.Render(context.Background(), "")
	require.ErrorContains(t, err, "input ports cannot be reg")

	// logic only exists in SystemVerilog
	d, err = Parse(`
[[module]]
name = "m"
decls = [{ kind = "logic", name = "l" }]
`)
	require.NoError(t, err)
	_, err = d.Render(context.Background(), "")
	require.ErrorContains(t, err, `unknown declaration kind "logic"`)
}

func TestRenderLogsOmittedHeader(t *testing.T) {
	var logs bytes.Buffer
	ctx := ioctx.LoggerToContext(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	d, err := Parse(`
[[module]]
name = "bare"

[[module]]
name = "m"
params = [{ name = "P", value = 1 }]
ports = [{ name = "a", dir = "input" }, { name = "y", dir = "output" }]
`)
	require.NoError(t, err)

	_, err = d.Render(ctx, "")
	require.NoError(t, err)
	require.Contains(t, logs.String(), `msg="module header is rendered without ports or params" module=m ports=2 params=1`)
	require.NotContains(t, logs.String(), "module=bare")
}

func TestSharedOperands(t *testing.T) {
	refs := map[string]*vast.Ref{}
	n := namer{}
	target, value, err := assignment(AssignConfig{Target: "acc", Op: "add", Args: []string{"acc", "x", "x"}}, refs, n)
	require.NoError(t, err)
	require.Equal(t, "acc + x + x", value.String())

	bin := value.(*vast.Binary)
	require.Same(t, target, bin.Left.(*vast.Binary).Left)
	require.Same(t, bin.Right, bin.Left.(*vast.Binary).Right)
	require.Len(t, refs, 2)
}
