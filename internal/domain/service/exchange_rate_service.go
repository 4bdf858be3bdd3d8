package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"localmarket/pkg/logger"
)

type exchangeRateResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRateService reads the BDT->USD rate from a public rates endpoint.
// Upstream failures trip a circuit breaker; while it is open, or whenever a
// call fails, the fallback rate is returned.
type ExchangeRateService struct {
	url      string
	fallback float64
	client   *http.Client
	cb       *gobreaker.CircuitBreaker
}

func NewExchangeRateService(url string, fallback float64) *ExchangeRateService {
	return &ExchangeRateService{
		url:      url,
		fallback: fallback,
		client:   &http.Client{Timeout: 5 * time.Second},
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "exchange-rate",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("circuit breaker %s: %s -> %s", name, from, to)
			},
		}),
	}
}

func (s *ExchangeRateService) USDRate(ctx context.Context) float64 {
	result, err := s.cb.Execute(func() (interface{}, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		logger.Warn("Exchange rate unavailable, using fallback %.4f: %v", s.fallback, err)
		return s.fallback
	}
	return result.(float64)
}

func (s *ExchangeRateService) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate endpoint returned %d", resp.StatusCode)
	}

	var body exchangeRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	rate := body.Rates["USD"]
	if rate <= 0 {
		return 0, fmt.Errorf("no USD rate in response")
	}
	return rate, nil
}
