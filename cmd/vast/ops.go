package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/vito/vast/pkg/ioctx"
	"github.com/vito/vast/pkg/vast"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List operator tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOps(ioctx.StdoutFromContext(cmd.Context()))
		},
	}
}

// printOps lists the unary and binary operators. Both dialects share the
// same tokens. Styles are downsampled to what w supports, so pipes and files
// get plain text.
func printOps(w io.Writer) error {
	if _, err := lipgloss.Fprintln(w, headerStyle.Render("Verilog 2005 / SystemVerilog 2017 operators")); err != nil {
		return err
	}
	for _, op := range vast.Unops() {
		if err := printOp(w, op.String(), op.Name()); err != nil {
			return err
		}
	}
	return printOp(w, vast.Add.String(), "add")
}

func printOp(w io.Writer, token, name string) error {
	_, err := lipgloss.Fprintf(w, "  %s %s\n",
		tokenStyle.Render(fmt.Sprintf("%-4s", token)),
		nameStyle.Render(name))
	return err
}
