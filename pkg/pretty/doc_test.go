package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, "", Nil().Pretty(80))
	require.Equal(t, "abc", Text("abc").Pretty(80))
	require.Equal(t, "42", AsString(42).Pretty(80))
	require.True(t, Text("").IsNil())
}

func TestConcatSkipsNil(t *testing.T) {
	d := Concat(Nil(), Text("a"), Nil(), Space(), Text("b"))
	require.Equal(t, "a b", d.Pretty(80))
	require.Equal(t, "a", Concat(Nil(), Text("a")).Pretty(80))
}

func TestHardlineNest(t *testing.T) {
	d := Text("begin").
		Append(Hardline(), Text("x;"), Hardline(), Text("y;")).
		Nest(4).
		Append(Hardline(), Text("end"))
	require.Equal(t, "begin\n    x;\n    y;\nend", d.Pretty(80))
}

func TestGroupFits(t *testing.T) {
	args := Intersperse([]Doc{Text("a"), Text("b"), Text("c")}, Text(",").Append(Line()))
	d := Text("f(").Append(SoftLine().Append(args).Nest(2), SoftLine(), Text(")")).Group()

	require.Equal(t, "f(a, b, c)", d.Pretty(80))
	require.Equal(t, "f(\n  a,\n  b,\n  c\n)", d.Pretty(5))
}

func TestGroupWithHardlineBreaks(t *testing.T) {
	d := Text("a").Append(Line(), Text("b"), Hardline(), Text("c")).Group()
	require.Equal(t, "a\nb\nc", d.Pretty(80))
}

func TestGroupConsidersTrailingText(t *testing.T) {
	inner := Text("xx").Append(Line(), Text("yy")).Group()
	d := inner.Append(Text("zzzz"))

	require.Equal(t, "xx yyzzzz", d.Pretty(9))
	require.Equal(t, "xx\nyyzzzz", d.Pretty(8))
}

func TestNoTrailingWhitespace(t *testing.T) {
	d := Text("a").Append(Hardline(), Hardline(), Text("b")).Nest(4)
	out := d.Pretty(80)
	require.Equal(t, "a\n\n    b", out)
	for _, line := range strings.Split(out, "\n") {
		require.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestCombinatorsDoNotMutate(t *testing.T) {
	base := Text("a").Append(Text("b"))
	_ = base.Append(Text("c"))
	_ = base.Nest(2).Group()
	require.Equal(t, "ab", base.Pretty(80))
}

func TestDeepConcat(t *testing.T) {
	d := Nil()
	for i := 0; i < 10000; i++ {
		d = d.Append(Text("x"))
	}
	require.Len(t, d.Pretty(80), 10000)
}
