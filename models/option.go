package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrNonPositiveUnderlying = errors.New("underlying price must be positive")
	ErrNonPositiveStrike     = errors.New("strike price must be positive")
	ErrNegativeDaysToExpiry  = errors.New("days to expiry must not be negative")
	ErrNegativeVolatility    = errors.New("volatility must not be negative")
	ErrNonFiniteInput        = errors.New("input must be a finite number")
	ErrInvalidOptionType     = errors.New("option type must be call or put")
	ErrInvalidStrikeWidth    = errors.New("strike width must keep every leg strike positive")
)

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ParseOptionType accepts "call"/"put" in any case. An empty string is a call.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOptionType, s)
}

// MarketInputs describes one European option and the market around it.
// Volatility and InterestRate are annualised percentages (25 means 25%).
type MarketInputs struct {
	UnderlyingPrice float64    `json:"stockPrice"`
	StrikePrice     float64    `json:"strikePrice"`
	DaysToExpiry    int        `json:"daysToExpiry"`
	Volatility      float64    `json:"volatility"`
	InterestRate    float64    `json:"interestRate"`
	OptionType      OptionType `json:"optionType"`
}

// Validate rejects inputs outside the pricing domain. Zero days or zero
// volatility are valid.
func (m MarketInputs) Validate() error {
	for _, f := range []float64{m.UnderlyingPrice, m.StrikePrice, m.Volatility, m.InterestRate} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNonFiniteInput
		}
	}
	if m.UnderlyingPrice <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveUnderlying, m.UnderlyingPrice)
	}
	if m.StrikePrice <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveStrike, m.StrikePrice)
	}
	if m.DaysToExpiry < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDaysToExpiry, m.DaysToExpiry)
	}
	if m.Volatility < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeVolatility, m.Volatility)
	}
	if m.OptionType != Call && m.OptionType != Put {
		return fmt.Errorf("%w: %q", ErrInvalidOptionType, m.OptionType)
	}
	return nil
}

// YearFraction converts DaysToExpiry on a 365-day year.
func (m MarketInputs) YearFraction() float64 {
	return float64(m.DaysToExpiry) / 365
}

// Sigma is the volatility as a decimal.
func (m MarketInputs) Sigma() float64 {
	return m.Volatility / 100
}

// Rate is the interest rate as a decimal.
func (m MarketInputs) Rate() float64 {
	return m.InterestRate / 100
}

// Degenerate reports whether d1/d2 are undefined for these inputs.
func (m MarketInputs) Degenerate() bool {
	return m.DaysToExpiry == 0 || m.Volatility == 0
}
