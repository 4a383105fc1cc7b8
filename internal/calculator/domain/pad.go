package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type PadState int

const (
	PadEmpty PadState = iota
	PadComposing
	PadEvaluated
	PadErrored
)

func (s PadState) String() string {
	switch s {
	case PadEmpty:
		return "empty"
	case PadComposing:
		return "composing"
	case PadEvaluated:
		return "evaluated"
	case PadErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Keypad keys besides the digits, "." and the four operators.
const (
	KeyClear     = "C"
	KeyBackspace = "←"
	KeyEquals    = "="
)

// Pad is the calculator input. After Evaluate the expression stays visible until
// the next Append, which starts a fresh expression.
type Pad struct {
	expr   string
	state  PadState
	result decimal.Decimal
	err    error
}

func NewPad() *Pad {
	return &Pad{}
}

func isPaletteToken(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	c := tok[0]
	return isDigit(c) || c == '.' || isOperator(c)
}

func (p *Pad) Append(tok string) (string, error) {
	if !isPaletteToken(tok) {
		return p.expr, fmt.Errorf("%w: unknown key %q", ErrEvaluation, tok)
	}
	if p.state == PadEvaluated || p.state == PadErrored {
		p.reset()
	}
	p.expr += tok
	p.state = PadComposing
	return p.expr, nil
}

// Backspace drops the last rune and discards any shown result.
func (p *Pad) Backspace() string {
	if p.expr == "" {
		p.reset()
		return p.expr
	}
	_, size := utf8.DecodeLastRuneInString(p.expr)
	p.expr = p.expr[:len(p.expr)-size]
	p.result, p.err = decimal.Decimal{}, nil
	if p.expr == "" {
		p.state = PadEmpty
	} else {
		p.state = PadComposing
	}
	return p.expr
}

func (p *Pad) Clear() string {
	p.reset()
	return p.expr
}

func (p *Pad) reset() {
	p.expr = ""
	p.state = PadEmpty
	p.result = decimal.Decimal{}
	p.err = nil
}

func (p *Pad) Evaluate() (decimal.Decimal, error) {
	v, err := Evaluate(p.expr)
	if err != nil {
		p.state = PadErrored
		p.result = decimal.Decimal{}
		p.err = err
		return decimal.Decimal{}, err
	}
	p.state = PadEvaluated
	p.result = v
	p.err = nil
	return v, nil
}

// Press dispatches one keypad key. "<" is accepted as an ASCII backspace.
func (p *Pad) Press(key string) error {
	key = strings.TrimSpace(key)
	switch strings.ToUpper(key) {
	case KeyClear:
		p.Clear()
		return nil
	case KeyBackspace, "<":
		p.Backspace()
		return nil
	case KeyEquals:
		_, err := p.Evaluate()
		return err
	default:
		_, err := p.Append(key)
		return err
	}
}

// SetExpression replaces the input wholesale, as typed into the free-text field.
func (p *Pad) SetExpression(expr string) {
	p.reset()
	p.expr = expr
	if expr != "" {
		p.state = PadComposing
	}
}

func (p *Pad) Expression() string { return p.expr }
func (p *Pad) State() PadState    { return p.state }
func (p *Pad) Err() error         { return p.err }

// Result reports the last successful evaluation, if the pad is showing one.
func (p *Pad) Result() (decimal.Decimal, bool) {
	if p.state != PadEvaluated {
		return decimal.Decimal{}, false
	}
	return p.result, true
}
