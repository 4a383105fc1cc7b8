package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrEvaluation = errors.New("evaluation error")

// MaxExpressionLength bounds the input accepted by Evaluate.
const MaxExpressionLength = 256

// DivisionScale is the number of fractional digits in a result.
const DivisionScale = 16

// guardDigits are carried past DivisionScale between steps so that a
// quotient fed into later operations rounds back cleanly, as in 1/3*3.
const guardDigits = 8

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
)

type token struct {
	kind  tokenKind
	value decimal.Decimal
	op    byte
	pos   int
}

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func precedence(op byte) int {
	if op == '*' || op == '/' {
		return 2
	}
	return 1
}

func evalErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEvaluation, fmt.Sprintf(format, args...))
}

// tokenize accepts the grammar number (op number)*. Spaces between tokens are ignored.
func tokenize(expr string) ([]token, error) {
	var tokens []token
	expectNumber := true

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case isDigit(c) || c == '.':
			if !expectNumber {
				return nil, evalErr("unexpected number at %d", i)
			}
			start := i
			dots, digits := 0, 0
			for i < len(expr) && (isDigit(expr[i]) || expr[i] == '.') {
				if expr[i] == '.' {
					dots++
				} else {
					digits++
				}
				i++
			}
			lit := expr[start:i]
			if dots > 1 || digits == 0 {
				return nil, evalErr("malformed number %q", lit)
			}
			lit = strings.TrimSuffix(lit, ".")
			if strings.HasPrefix(lit, ".") {
				lit = "0" + lit
			}
			v, err := decimal.NewFromString(lit)
			if err != nil {
				return nil, evalErr("malformed number %q", expr[start:i])
			}
			tokens = append(tokens, token{kind: tokenNumber, value: v, pos: start})
			expectNumber = false

		case isOperator(c):
			if expectNumber {
				return nil, evalErr("unexpected operator %q at %d", c, i)
			}
			tokens = append(tokens, token{kind: tokenOperator, op: c, pos: i})
			expectNumber = true
			i++

		default:
			return nil, evalErr("unexpected character %q at %d", c, i)
		}
	}

	if len(tokens) == 0 {
		return nil, evalErr("empty expression")
	}
	if expectNumber {
		return nil, evalErr("expression ends with an operator")
	}
	return tokens, nil
}

// toRPN reorders tokens by operator precedence, left-associative within a tier.
func toRPN(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	var ops []token

	for _, t := range tokens {
		if t.kind == tokenNumber {
			out = append(out, t)
			continue
		}
		for len(ops) > 0 && precedence(ops[len(ops)-1].op) >= precedence(t.op) {
			out = append(out, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
		ops = append(ops, t)
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return out
}

func apply(op byte, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case '+':
		return a.Add(b), nil
	case '-':
		return a.Sub(b), nil
	case '*':
		return a.Mul(b), nil
	case '/':
		if b.IsZero() {
			return decimal.Decimal{}, evalErr("division by zero")
		}
		return a.DivRound(b, DivisionScale+guardDigits), nil
	default:
		return decimal.Decimal{}, evalErr("unknown operator %q", op)
	}
}

// Evaluate computes an arithmetic expression over + - * / with the usual precedence.
// The result is rounded half away from zero to DivisionScale places.
// Any failure wraps ErrEvaluation.
func Evaluate(expr string) (decimal.Decimal, error) {
	if len(expr) > MaxExpressionLength {
		return decimal.Decimal{}, evalErr("expression longer than %d characters", MaxExpressionLength)
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var stack []decimal.Decimal
	for _, t := range toRPN(tokens) {
		if t.kind == tokenNumber {
			stack = append(stack, t.value)
			continue
		}
		if len(stack) < 2 {
			return decimal.Decimal{}, evalErr("operator %q at %d is missing an operand", t.op, t.pos)
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		v, err := apply(t.op, a, b)
		if err != nil {
			return decimal.Decimal{}, err
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return decimal.Decimal{}, evalErr("malformed expression")
	}
	return stack[0].Round(DivisionScale), nil
}
