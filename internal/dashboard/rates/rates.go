// Package rates fetches currency exchange data for the dashboard's
// exchange-rate visualizations.
package rates

import (
	"context"
	"fmt"

	"github.com/shoplens/shoplens/internal/httpx"
)

// DefaultBaseCurrency is assumed when the caller passes an empty base.
const DefaultBaseCurrency = "USD"

// ExchangeRates is the payload of the public exchange-rate API: quotes for
// one base currency on one date.
type ExchangeRates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Service wraps the exchange-rate API.
type Service struct {
	api *httpx.Client
}

func NewService(api *httpx.Client) *Service {
	return &Service{api: api}
}

// Latest returns the current quotes for base.
func (s *Service) Latest(ctx context.Context, base string) (*ExchangeRates, error) {
	if base == "" {
		base = DefaultBaseCurrency
	}
	var out ExchangeRates
	if err := s.api.GetJSON(ctx, "/latest/"+base, &out); err != nil {
		return nil, fmt.Errorf("fetching rates for %s: %w", base, err)
	}
	return &out, nil
}

// Convert converts amount from one currency into another using the latest
// quotes for the source currency.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	quotes, err := s.Latest(ctx, from)
	if err != nil {
		return 0, err
	}
	rate, ok := quotes.Rates[to]
	if !ok {
		return 0, fmt.Errorf("exchange rate not found for %s", to)
	}
	return amount * rate, nil
}
