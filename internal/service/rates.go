package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/cache"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/UgurucanDuman/Autonova/pkg/utils"
	"github.com/go-resty/resty/v2"
)

type RateServicer interface {
	Rates(ctx context.Context) (map[string]float64, error)
	ApproxTRY(ctx context.Context, amount int, currency string) (float64, error)
	Refresh(ctx context.Context) error
}

// RateService keeps a TRY-relative exchange-rate snapshot cached in
// redis. The rates are informational only ("1 USD ≈ X TL" hints),
// never authoritative pricing.
type RateService struct {
	cache  cache.Cacher
	client *resty.Client
	log    *logger.Logger

	providerURL string
	ttl         time.Duration
}

type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
}

func NewRateService(c cache.Cacher, log *logger.Logger) *RateService {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &RateService{
		cache:       c,
		client:      client,
		log:         log.Named("rates"),
		providerURL: utils.GetEnv("EXCHANGE_RATE_URL", "https://api.exchangerate-api.com/v4/latest/TRY"),
		ttl:         utils.GetDurationEnv("EXCHANGE_RATE_TTL", time.Hour),
	}
}

// Refresh fetches the provider snapshot and caches it. Failure leaves
// the previous cached snapshot serving.
func (rs *RateService) Refresh(ctx context.Context) error {
	var payload ratesPayload
	resp, err := rs.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(rs.providerURL)
	if err != nil {
		rs.log.Warnw("rate fetch failed", "error", err)
		return fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
	}
	if resp.IsError() || len(payload.Rates) == 0 {
		rs.log.Warnw("rate provider rejected request", "status", resp.StatusCode())
		return ErrRatesUnavailable
	}

	raw, err := json.Marshal(payload.Rates)
	if err != nil {
		return err
	}
	if err := rs.cache.Set(ctx, cache.ExchangeRatesKey, string(raw), rs.ttl); err != nil {
		rs.log.Warnw("rate cache write failed", "error", err)
		return err
	}

	rs.log.Infow("exchange rates refreshed", "currencies", len(payload.Rates))
	return nil
}

// Rates returns the cached currency -> TRY-relative rate map,
// refreshing on a cold cache.
func (rs *RateService) Rates(ctx context.Context) (map[string]float64, error) {
	raw, found, err := rs.cache.Get(ctx, cache.ExchangeRatesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := rs.Refresh(ctx); err != nil {
			return nil, err
		}
		raw, found, err = rs.cache.Get(ctx, cache.ExchangeRatesKey)
		if err != nil || !found {
			return nil, ErrRatesUnavailable
		}
	}

	rates := map[string]float64{}
	if err := json.Unmarshal([]byte(raw), &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// ApproxTRY converts an amount in the given currency to an approximate
// TRY figure for display.
func (rs *RateService) ApproxTRY(ctx context.Context, amount int, currency string) (float64, error) {
	if currency == "TRY" {
		return float64(amount), nil
	}

	rates, err := rs.Rates(ctx)
	if err != nil {
		return 0, err
	}
	rate, ok := rates[currency]
	if !ok || rate == 0 {
		return 0, ErrRatesUnavailable
	}
	// provider rates are TRY-based: 1 TRY = rate units of currency
	return float64(amount) / rate, nil
}
