package optionsslack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bcdannyboy/optionspro/engine"
	"github.com/bcdannyboy/optionspro/models"
)

var errUsage = errors.New("not enough arguments, see /help")

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// optionParams reads <stock> <strike> <premium> followed by optional
// positional overrides of the configured defaults.
func (h *Handler) optionParams(args []string, withRate bool) (engine.Params, error) {
	if len(args) < 3 {
		return engine.Params{}, errUsage
	}
	p := engine.Params{
		DaysToExpiry: h.defaults.DaysToExpiry,
		Volatility:   h.defaults.Volatility,
		InterestRate: h.defaults.InterestRate,
		OptionType:   h.defaults.OptionType,
	}

	var err error
	if p.StockPrice, err = parseFloat("stock price", args[0]); err != nil {
		return p, err
	}
	if p.StrikePrice, err = parseFloat("strike", args[1]); err != nil {
		return p, err
	}
	if p.OptionPrice, err = parseFloat("premium", args[2]); err != nil {
		return p, err
	}

	var rest []string
	for _, a := range args[3:] {
		if isOptionType(a) {
			p.OptionType = a
			continue
		}
		rest = append(rest, a)
	}

	if len(rest) > 0 {
		days, err := strconv.Atoi(rest[0])
		if err != nil {
			return p, fmt.Errorf("invalid days %q", rest[0])
		}
		p.DaysToExpiry = days
	}
	if len(rest) > 1 {
		if p.Volatility, err = parseFloat("volatility", rest[1]); err != nil {
			return p, err
		}
	}
	if withRate && len(rest) > 2 {
		if p.InterestRate, err = parseFloat("interest rate", rest[2]); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (h *Handler) greeks(args []string) (string, error) {
	p, err := h.optionParams(args, true)
	if err != nil {
		return "", err
	}
	resp, err := engine.Handle(engine.Request{Action: engine.ActionCalculateGreeks, Params: p})
	if err != nil {
		return "", err
	}
	g := resp.Greeks
	return fmt.Sprintf("*%s* S=%.2f K=%.2f %dd vol %.1f%% rate %.2f%%\n"+
		"Delta: %.3f  Gamma: %.3f  Theta: %.3f  Vega: %.3f  Rho: %.3f\n"+
		"Intrinsic: %.2f  Time value: %.2f  Theoretical: %.2f",
		strings.ToUpper(typeOrCall(p.OptionType)), p.StockPrice, p.StrikePrice, p.DaysToExpiry, p.Volatility, p.InterestRate,
		g.Delta, g.Gamma, g.Theta, g.Vega, g.Rho,
		g.Intrinsic, g.TimeValue, g.TheoreticalPrice), nil
}

func (h *Handler) probability(args []string) (string, error) {
	p, err := h.optionParams(args, false)
	if err != nil {
		return "", err
	}
	resp, err := engine.Handle(engine.Request{Action: engine.ActionCalculateProbability, Params: p})
	if err != nil {
		return "", err
	}
	pr := resp.Probability
	return fmt.Sprintf("*%s* ITM: %.1f%%  OTM: %.1f%%  Breakeven: %.2f",
		strings.ToUpper(typeOrCall(p.OptionType)), pr.ITMProbability, pr.OTMProbability, pr.BreakevenPrice), nil
}

func (h *Handler) payoff(args []string) (string, error) {
	if len(args) < 4 {
		return "", errUsage
	}
	p := engine.Params{
		StrategyType:     args[0],
		StrikeWidth:      h.defaults.StrikeWidth,
		Volatility:       h.defaults.Volatility,
		InterestRate:     h.defaults.InterestRate,
		BackDaysToExpiry: h.defaults.BackDaysToExpiry,
	}
	var err error
	if p.StockPrice, err = parseFloat("stock price", args[1]); err != nil {
		return "", err
	}
	if p.StrikePrice, err = parseFloat("strike", args[2]); err != nil {
		return "", err
	}
	if p.OptionPrice, err = parseFloat("premium", args[3]); err != nil {
		return "", err
	}
	if len(args) > 4 {
		if p.StrikeWidth, err = parseFloat("width", args[4]); err != nil {
			return "", err
		}
	}

	kind := models.ParseStrategyKind(p.StrategyType)
	if kind == models.StrategyUnknown {
		return fmt.Sprintf("No payoff model for %q; the curve is flat at 0.", p.StrategyType), nil
	}

	resp, err := engine.Handle(engine.Request{Action: engine.ActionGeneratePayoff, Params: p})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s* at expiration\n", kind)
	fmt.Fprintf(&b, "Max profit: %.2f  Max loss: %.2f", resp.Summary.MaxProfit, resp.Summary.MaxLoss)
	if len(resp.Summary.Breakevens) > 0 {
		be := make([]string, len(resp.Summary.Breakevens))
		for i, v := range resp.Summary.Breakevens {
			be[i] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		fmt.Fprintf(&b, "  Breakeven: %s", strings.Join(be, ", "))
	}
	b.WriteString("\n```")
	for i := 0; i < len(resp.Payoff); i += 5 {
		pt := resp.Payoff[i]
		fmt.Fprintf(&b, "\n%9.2f %9.2f", pt.Price, pt.Payoff)
	}
	b.WriteString("\n```")
	return b.String(), nil
}

func (h *Handler) strategy(args []string) (string, error) {
	req := engine.Request{Action: engine.ActionGetAllStrategies}
	if len(args) > 0 {
		arg := strings.ToLower(args[0])
		switch arg {
		case "all":
		case "beginner", "intermediate", "advanced":
			req = engine.Request{Action: engine.ActionGetStrategiesByDifficulty, Difficulty: arg}
		case string(models.Bullish), string(models.Bearish), string(models.Neutral), string(models.Volatile):
			req = engine.Request{Action: engine.ActionGetRecommendedStrategies, Outlook: arg}
		default:
			req = engine.Request{Action: engine.ActionGetStrategy, StrategyID: arg}
		}
	}

	resp, err := engine.Handle(req)
	if err != nil {
		return "", err
	}
	if resp.Strategy != nil {
		s := resp.Strategy
		return fmt.Sprintf("*%s* (%s)\n%s\nOutlook: %s  Max profit: %s  Max loss: %s\n• %s",
			s.Name, s.Difficulty, s.Description, s.MarketOutlook, s.MaxProfit, s.MaxLoss,
			strings.Join(s.Setup, "\n• ")), nil
	}

	lines := make([]string, len(resp.Strategies))
	for i, s := range resp.Strategies {
		lines[i] = fmt.Sprintf("`%s` %s (%s) - %s", s.ID, s.Name, s.Difficulty, s.MarketOutlook)
	}
	return strings.Join(lines, "\n"), nil
}

func isOptionType(s string) bool {
	switch strings.ToLower(s) {
	case "call", "put", "c", "p":
		return true
	}
	return false
}

// typeOrCall normalises short forms like "p" to their full name.
func typeOrCall(s string) string {
	typ, err := models.ParseOptionType(s)
	if err != nil {
		return strings.ToLower(s)
	}
	return string(typ)
}
