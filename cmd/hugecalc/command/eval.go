package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal/internal/rpn"
)

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [<expression> ...]",
		Short: "Evaluates expressions written in Polish notation, such as \"* 10 + 1.23 4.56\".",
		Long: "Evaluates expressions written in Polish (prefix) notation with the operators\n" +
			"+, -, * and /. Each argument is one expression. Without arguments, one\n" +
			"expression is read from every non-blank line of standard input.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := rpn.New(a.cfg.Precision, a.logger)
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, expr := range args {
					if err := evalLine(ev, out, expr); err != nil {
						return err
					}
				}
				return nil
			}
			return evalStream(ev, cmd.InOrStdin(), out)
		},
	}
}

func evalStream(ev *rpn.Evaluator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Allow lines of up to 16 MiB.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		expr := scanner.Text()
		if strings.TrimSpace(expr) == "" {
			continue
		}
		if err := evalLine(ev, out, expr); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(scanner.Err(), "reading expressions")
}

func evalLine(ev *rpn.Evaluator, out io.Writer, expr string) error {
	d, err := ev.Evaluate(expr)
	if err != nil {
		return errors.Wrapf(err, "evaluating %q", expr)
	}
	_, err = fmt.Fprintln(out, d)
	return err
}
