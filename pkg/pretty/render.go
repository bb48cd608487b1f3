package pretty

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// DefaultWidth is the column budget used by Doc.String.
const DefaultWidth = 80

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type cmd struct {
	indent int
	mode   mode
	doc    Doc
}

type renderer struct {
	width int
	col   int
	out   *strings.Builder

	// indentation owed to the current line, written lazily so that blank
	// lines never carry trailing whitespace
	pending int
}

func (r *renderer) write(s string) {
	if r.pending > 0 {
		r.out.WriteString(strings.Repeat(" ", r.pending))
		r.pending = 0
	}
	r.out.WriteString(s)
	r.col += textWidth(s)
}

func (r *renderer) newline(indent int) {
	r.out.WriteByte('\n')
	r.pending = indent
	r.col = indent
}

func (r *renderer) render(d Doc) {
	stack := []cmd{{mode: modeBreak, doc: d}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch c.doc.kind {
		case kindNil:
		case kindText:
			r.write(c.doc.text)
		case kindConcat:
			stack = pushReversed(stack, c)
		case kindNest:
			stack = append(stack, cmd{c.indent + c.doc.indent, c.mode, c.doc.docs[0]})
		case kindLine:
			if c.mode == modeFlat {
				r.write(c.doc.text)
			} else {
				r.newline(c.indent)
			}
		case kindHardline:
			r.newline(c.indent)
		case kindGroup:
			m := c.mode
			if m == modeBreak {
				flat := cmd{c.indent, modeFlat, c.doc.docs[0]}
				if fits(r.width-r.col, flat, stack) {
					m = modeFlat
				}
			}
			stack = append(stack, cmd{c.indent, m, c.doc.docs[0]})
		}
	}
}

// fits reports whether next, followed by whatever is on the stack up to the
// first line break, fits in rem columns.
func fits(rem int, next cmd, rest []cmd) bool {
	work := []cmd{next}
	restIdx := len(rest) - 1
	for rem >= 0 {
		if len(work) == 0 {
			if restIdx < 0 {
				return true
			}
			work = append(work, rest[restIdx])
			restIdx--
			continue
		}

		c := work[len(work)-1]
		work = work[:len(work)-1]

		switch c.doc.kind {
		case kindNil:
		case kindText:
			rem -= textWidth(c.doc.text)
		case kindConcat:
			work = pushReversed(work, c)
		case kindNest:
			work = append(work, cmd{c.indent + c.doc.indent, c.mode, c.doc.docs[0]})
		case kindGroup:
			work = append(work, cmd{c.indent, c.mode, c.doc.docs[0]})
		case kindLine:
			if c.mode == modeBreak {
				return true
			}
			rem -= textWidth(c.doc.text)
		case kindHardline:
			return c.mode == modeBreak
		}
	}
	return false
}

func pushReversed(stack []cmd, c cmd) []cmd {
	for i := len(c.doc.docs) - 1; i >= 0; i-- {
		stack = append(stack, cmd{c.indent, c.mode, c.doc.docs[i]})
	}
	return stack
}

// textWidth is the display width of s in terminal columns.
func textWidth(s string) int {
	return ansi.StringWidth(s)
}
