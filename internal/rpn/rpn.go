// Package rpn evaluates arithmetic expressions written in Polish (prefix)
// notation, such as "* 10 + 1.23 4.56", using arbitrary-precision decimals.
package rpn

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/govalues/bigdecimal"
)

var (
	// ErrNoTokens is returned for an empty expression.
	ErrNoTokens = errors.New("no tokens")
	// ErrNotEnoughOperands is returned when an operator has fewer than two operands.
	ErrNotEnoughOperands = errors.New("not enough operands")
	// ErrUnbalanced is returned when operands are left over after evaluation.
	ErrUnbalanced = errors.New("unbalanced expression")
)

// Evaluator evaluates expressions with the operators +, -, * and /.
// Division is truncated to Precision digits after the decimal point.
type Evaluator struct {
	precision int
	logger    log.Logger
}

// New returns an evaluator dividing with the given precision.
// A nil logger discards all messages.
func New(precision int, logger log.Logger) *Evaluator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Evaluator{precision: precision, logger: logger}
}

// Evaluate computes the value of input.
// Tokens are separated by whitespace and processed from right to left, so
// the first token is the outermost operator.
func (e *Evaluator) Evaluate(input string) (bigdecimal.Decimal, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return bigdecimal.Decimal{}, ErrNoTokens
	}

	stack := make([]bigdecimal.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = e.processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return bigdecimal.Decimal{}, errors.Wrapf(err, "processing token %q", token)
		}
	}

	if len(stack) != 1 {
		return bigdecimal.Decimal{}, errors.Wrapf(ErrUnbalanced, "post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func (e *Evaluator) processOperator(stack []bigdecimal.Decimal, token string) ([]bigdecimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, ErrNotEnoughOperands
	}
	left := stack[len(stack)-1]
	right := stack[len(stack)-2]
	stack = stack[:len(stack)-2]

	var (
		result bigdecimal.Decimal
		err    error
	)
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.QuoPrec(right, e.precision)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%s %s %s\"", left, token, right)
	}

	level.Debug(e.logger).Log("msg", "applied operator", "op", token, "left", left, "right", right, "result", result)
	return append(stack, result), nil
}

func processOperand(stack []bigdecimal.Decimal, token string) ([]bigdecimal.Decimal, error) {
	d, err := bigdecimal.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
