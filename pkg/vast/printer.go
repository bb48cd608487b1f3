// Package vast builds Verilog abstract syntax trees and renders them as
// source text.
//
// The shared vocabulary (widths, operators, expressions, procedural
// statements, instances) and the generic statement/module containers live
// here. Dialect packages v05 and v17 supply their own declarations and
// parallel statements and instantiate the generic containers with them.
package vast

import "github.com/vito/vast/pkg/pretty"

const (
	// LineWidth is the column budget every tree is rendered at.
	LineWidth = 100

	// Indent is the number of columns a module or block body is nested by.
	Indent = 4
)

// Printer is implemented by every node that appears in rendered output.
type Printer interface {
	Doc() pretty.Doc
}

// Print renders p at LineWidth.
func Print(p Printer) string {
	return p.Doc().Pretty(LineWidth)
}
