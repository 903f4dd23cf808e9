package commands

import (
	"classroom/packages/common/validation"
	"classroom/packages/core/calculator"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Negative operands must follow "--", otherwise they are parsed as flags.
func newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "calc <a> <op> <b>",
		Short:   "Calculadora (+ - * / x)",
		Example: "  toolkit calc 2 + 3\n  toolkit calc -- -4 x 2.5",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := validation.Float(args[0], nil, nil)
			if err != nil {
				return err
			}
			b, err := validation.Float(args[2], nil, nil)
			if err != nil {
				return err
			}

			res, err := calculator.Eval(a, args[1], b)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(a, 'f', -1, 64)+" "+args[1]+" "+
				strconv.FormatFloat(b, 'f', -1, 64)+" = "+SuccessStyle.Render(strconv.FormatFloat(res, 'f', -1, 64)))

			return nil
		},
	}
}
