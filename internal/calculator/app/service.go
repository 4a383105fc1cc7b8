package app

import (
	"strings"

	"github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	"github.com/shopspring/decimal"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

type KeyResult struct {
	Expression string
	State      domain.PadState
	Result     decimal.Decimal
	HasResult  bool
	Recorded   *domain.CalculationRecord
}

// Press applies one key. A successful "=" is appended to history.
func (s *Service) Press(pad *domain.Pad, history *domain.History, key string) (KeyResult, error) {
	err := pad.Press(key)

	res := KeyResult{Expression: pad.Expression(), State: pad.State()}
	if v, ok := pad.Result(); ok {
		res.Result, res.HasResult = v, true
	}
	if err != nil {
		return res, err
	}

	if strings.TrimSpace(key) == domain.KeyEquals && res.HasResult {
		rec := history.Add(pad.Expression(), res.Result)
		res.Recorded = &rec
	}
	return res, nil
}

// Evaluate sets the whole expression from free text and evaluates it.
func (s *Service) Evaluate(pad *domain.Pad, history *domain.History, expr string) (KeyResult, error) {
	pad.SetExpression(expr)
	return s.Press(pad, history, domain.KeyEquals)
}
