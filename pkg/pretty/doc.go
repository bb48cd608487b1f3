package pretty

import (
	"fmt"
	"strings"
)

type kind uint8

const (
	kindNil kind = iota
	kindText
	kindConcat
	kindLine
	kindHardline
	kindNest
	kindGroup
)

// Doc is a layout document: text with optional line breaks that a renderer
// decides to take or flatten depending on the available width.
//
// Docs are immutable values; every combinator returns a new Doc and never
// modifies its receiver or arguments, so a Doc may be shared freely.
type Doc struct {
	kind   kind
	text   string // literal text, or the flat rendering of a line
	indent int
	docs   []Doc
}

// Nil returns the empty document.
func Nil() Doc {
	return Doc{}
}

// Text returns a literal document. The text must not contain newlines; use
// Hardline for those.
func Text(s string) Doc {
	if s == "" {
		return Nil()
	}
	return Doc{kind: kindText, text: s}
}

// AsString renders v with fmt and wraps it as Text.
func AsString(v any) Doc {
	return Text(fmt.Sprint(v))
}

// Space is a literal single space. It never breaks.
func Space() Doc {
	return Text(" ")
}

// Line is a space when its enclosing group fits on one line and a newline
// otherwise.
func Line() Doc {
	return Doc{kind: kindLine, text: " "}
}

// SoftLine is empty when its enclosing group fits on one line and a newline
// otherwise.
func SoftLine() Doc {
	return Doc{kind: kindLine}
}

// Hardline always breaks, and prevents any group containing it from being
// flattened.
func Hardline() Doc {
	return Doc{kind: kindHardline}
}

// Concat joins documents left to right.
func Concat(docs ...Doc) Doc {
	var parts []Doc
	for _, d := range docs {
		if d.kind == kindNil {
			continue
		}
		parts = append(parts, d)
	}
	switch len(parts) {
	case 0:
		return Nil()
	case 1:
		return parts[0]
	}
	return Doc{kind: kindConcat, docs: parts}
}

// Intersperse joins documents with sep between each pair.
func Intersperse(docs []Doc, sep Doc) Doc {
	parts := make([]Doc, 0, 2*len(docs))
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// Append returns d followed by more.
func (d Doc) Append(more ...Doc) Doc {
	parts := make([]Doc, 0, len(more)+1)
	parts = append(parts, d)
	parts = append(parts, more...)
	return Concat(parts...)
}

// Nest increases the indentation of every line break inside d by n columns.
func (d Doc) Nest(n int) Doc {
	if d.kind == kindNil {
		return d
	}
	return Doc{kind: kindNest, indent: n, docs: []Doc{d}}
}

// Group lays d out on a single line if it fits in the remaining width,
// otherwise its line breaks are taken.
func (d Doc) Group() Doc {
	if d.kind == kindNil {
		return d
	}
	return Doc{kind: kindGroup, docs: []Doc{d}}
}

// IsNil reports whether d renders to nothing.
func (d Doc) IsNil() bool {
	return d.kind == kindNil
}

// Pretty renders d with the given column budget.
func (d Doc) Pretty(width int) string {
	var buf strings.Builder
	r := &renderer{width: width, out: &buf}
	r.render(d)
	return buf.String()
}

// String renders d at DefaultWidth.
func (d Doc) String() string {
	return d.Pretty(DefaultWidth)
}
