// Package engine is the single entry point the CLI and the Slack bot use to
// reach the analytics. It maps an action-keyed request onto the pure
// calculators and carries their results back.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bcdannyboy/optionspro/models"
	"github.com/bcdannyboy/optionspro/payoff"
	"github.com/bcdannyboy/optionspro/positions"
	"github.com/bcdannyboy/optionspro/probability"
)

const (
	ActionCalculateGreeks           = "calculateGreeks"
	ActionCalculateOption           = "calculateOption" // alias of calculateGreeks
	ActionCalculateProbability      = "calculateProbability"
	ActionGeneratePayoff            = "generatePayoff"
	ActionGetStrategy               = "getStrategy"
	ActionGetAllStrategies          = "getAllStrategies"
	ActionGetStrategiesByDifficulty = "getStrategiesByDifficulty"
	ActionGetRecommendedStrategies  = "getRecommendedStrategies"
)

var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrStrategyNotFound = errors.New("strategy not found")
)

// Params are the named numeric fields a caller supplies. Which fields are
// read depends on the action.
type Params struct {
	StockPrice       float64 `json:"stockPrice"`
	StrikePrice      float64 `json:"strikePrice"`
	OptionPrice      float64 `json:"optionPrice"`
	DaysToExpiry     int     `json:"daysToExpiry"`
	Volatility       float64 `json:"volatility"`
	InterestRate     float64 `json:"interestRate"`
	OptionType       string  `json:"optionType,omitempty"`
	StrategyType     string  `json:"strategyType,omitempty"`
	StrikeWidth      float64 `json:"strikeWidth,omitempty"`
	BackDaysToExpiry int     `json:"backDaysToExpiry,omitempty"`
}

type Request struct {
	Action     string `json:"action"`
	StrategyID string `json:"strategyId,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Outlook    string `json:"outlook,omitempty"`
	Params     Params `json:"params"`
}

// Response holds the result for exactly one action.
type Response struct {
	Greeks      *models.GreekResult       `json:"greeks,omitempty"`
	Probability *models.ProbabilityResult `json:"probability,omitempty"`
	Payoff      models.PayoffCurve        `json:"payoff,omitempty"`
	Summary     *models.PayoffSummary     `json:"summary,omitempty"`
	Strategy    *models.Strategy          `json:"strategy,omitempty"`
	Strategies  []models.Strategy         `json:"strategies,omitempty"`
	Error       string                    `json:"error,omitempty"`
}

// MarketInputs converts p for the single-option calculators.
func (p Params) MarketInputs() (models.MarketInputs, error) {
	typ, err := models.ParseOptionType(p.OptionType)
	if err != nil {
		return models.MarketInputs{}, err
	}
	return models.MarketInputs{
		UnderlyingPrice: p.StockPrice,
		StrikePrice:     p.StrikePrice,
		DaysToExpiry:    p.DaysToExpiry,
		Volatility:      p.Volatility,
		InterestRate:    p.InterestRate,
		OptionType:      typ,
	}, nil
}

func (p Params) PayoffParams() models.PayoffParams {
	return models.PayoffParams{
		StockPrice:       p.StockPrice,
		StrikePrice:      p.StrikePrice,
		OptionPrice:      p.OptionPrice,
		StrikeWidth:      p.StrikeWidth,
		Volatility:       p.Volatility,
		InterestRate:     p.InterestRate,
		BackDaysToExpiry: p.BackDaysToExpiry,
	}
}

// Handle runs req. It holds no state, so it is safe to call concurrently.
func Handle(req Request) (Response, error) {
	switch req.Action {
	case ActionCalculateGreeks, ActionCalculateOption:
		in, err := req.Params.MarketInputs()
		if err != nil {
			return Response{}, err
		}
		g, err := positions.ComputeGreeks(in, req.Params.OptionPrice)
		if err != nil {
			return Response{}, err
		}
		return Response{Greeks: &g}, nil

	case ActionCalculateProbability:
		in, err := req.Params.MarketInputs()
		if err != nil {
			return Response{}, err
		}
		pr, err := probability.ComputeProbability(in, req.Params.OptionPrice)
		if err != nil {
			return Response{}, err
		}
		return Response{Probability: &pr}, nil

	case ActionGeneratePayoff:
		id := req.Params.StrategyType
		if id == "" {
			id = req.StrategyID
		}
		curve, err := payoff.GeneratePayoff(models.ParseStrategyKind(id), req.Params.PayoffParams())
		if err != nil {
			return Response{}, err
		}
		summary := payoff.Summarize(curve)
		return Response{Payoff: curve, Summary: &summary}, nil

	case ActionGetStrategy:
		s, ok := payoff.Lookup(models.ParseStrategyKind(req.StrategyID))
		if !ok {
			return Response{}, fmt.Errorf("%w: %q", ErrStrategyNotFound, req.StrategyID)
		}
		return Response{Strategy: &s}, nil

	case ActionGetAllStrategies:
		return Response{Strategies: payoff.Strategies()}, nil

	case ActionGetStrategiesByDifficulty:
		return Response{Strategies: payoff.StrategiesByDifficulty(parseDifficulty(req.Difficulty))}, nil

	case ActionGetRecommendedStrategies:
		outlook := models.Outlook(strings.ToLower(strings.TrimSpace(req.Outlook)))
		return Response{Strategies: payoff.RecommendedStrategies(outlook)}, nil
	}
	return Response{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
}

func parseDifficulty(s string) models.Difficulty {
	for _, d := range []models.Difficulty{models.Beginner, models.Intermediate, models.Advanced} {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d
		}
	}
	return models.Difficulty(s)
}
