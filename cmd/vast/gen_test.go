package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vito/vast/pkg/ioctx"
)

const adder = `
[[module]]
name = "adder"
decls = [{ kind = "wire", name = "sum", width = 4 }]
assigns = [{ target = "sum", op = "add", args = ["a", "b"] }]
`

const inverter = `
dialect = "v17"
[[module]]
name = "inverter"
assigns = [{ target = "y", op = "not", args = ["a"] }]
`

func writeDesign(t *testing.T, dir, name, src string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestGenStdoutPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDesign(t, dir, "adder.toml", adder),
		writeDesign(t, dir, "inverter.toml", inverter),
	}

	var out bytes.Buffer
	ctx := ioctx.StdoutToContext(context.Background(), &out)
	require.NoError(t, runGen(ctx, &Config{}, paths))

	require.Equal(t, `module adder ();
    wire [3:0] sum;
    assign sum = a + b;
endmodule

module inverter ();
    assign y = ~a;
endmodule
`, out.String())
}

func TestGenOutDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "rtl")
	path := writeDesign(t, dir, "inverter.toml", inverter)

	require.NoError(t, runGen(context.Background(), &Config{OutDir: outDir}, []string{path}))

	src, err := os.ReadFile(filepath.Join(outDir, "inverter.sv"))
	require.NoError(t, err)
	require.Equal(t, "module inverter ();\n    assign y = ~a;\nendmodule\n", string(src))
}

func TestGenDialectOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeDesign(t, dir, "bad.toml", inverter)

	err := runGen(context.Background(), &Config{Dialect: "vhdl"}, []string{path})
	require.ErrorContains(t, err, `unknown dialect "vhdl"`)
}

func TestGenMissingFile(t *testing.T) {
	err := runGen(context.Background(), &Config{}, []string{filepath.Join(t.TempDir(), "nope.toml")})
	require.ErrorContains(t, err, "parsing")
}

func TestOps(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "0")
	t.Setenv("TTY_FORCE", "0")

	var out bytes.Buffer
	require.NoError(t, printOps(&out))

	text := out.String()
	for _, token := range []string{"!", "~&", "~|", "~^", "+"} {
		require.Contains(t, text, token)
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "Verilog 2005 / SystemVerilog 2017 operators", lines[0])
	require.Equal(t, "  ~&   nand", lines[4])

	// not a terminal, so no escape sequences
	require.NotContains(t, text, "\x1b")
}
