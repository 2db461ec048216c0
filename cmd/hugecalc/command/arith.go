package command

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal"
)

// binaryOp describes a command applying one operation to two operands.
type binaryOp struct {
	use   string
	short string
	op    func(a *app, x, y string) (string, error)
}

var (
	addOp = binaryOp{
		use:   "add <a> <b>",
		short: "Prints the exact sum a + b.",
		op: func(_ *app, x, y string) (string, error) {
			return bigdecimal.Add(x, y)
		},
	}
	subOp = binaryOp{
		use:   "sub <a> <b>",
		short: "Prints the exact difference a - b.",
		op: func(_ *app, x, y string) (string, error) {
			return bigdecimal.Subtract(x, y)
		},
	}
	mulOp = binaryOp{
		use:   "mul <a> <b>",
		short: "Prints the exact product a * b.",
		op: func(_ *app, x, y string) (string, error) {
			return bigdecimal.Multiply(x, y)
		},
	}
	divOp = binaryOp{
		use:   "div [--precision N] <a> <b>",
		short: "Prints the quotient a / b truncated to --precision digits after the decimal point.",
		op: func(a *app, x, y string) (string, error) {
			return bigdecimal.DividePrec(x, y, a.cfg.Precision)
		},
	}
)

func (a *app) binaryCommand(bo binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:                   bo.use,
		Short:                 bo.short,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level.Debug(a.logger).Log("msg", "computing", "cmd", cmd.Name(), "a", args[0], "b", args[1])
			result, err := bo.op(a, args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}
