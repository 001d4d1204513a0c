package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/cache"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key, val string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	f.data[key] = val
	f.mu.Unlock()
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.data, key)
	f.mu.Unlock()
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }
func (f *fakeCache) Close() error                 { return nil }

func rateProvider(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newRateFixture(c cache.Cacher, providerURL string) *RateService {
	svc := NewRateService(c, logger.NewLogger())
	svc.providerURL = providerURL
	return svc
}

func TestRefreshCachesProviderSnapshot(t *testing.T) {
	provider := rateProvider(t, `{"base":"TRY","rates":{"TRY":1,"USD":0.024,"EUR":0.022}}`, http.StatusOK)
	defer provider.Close()

	c := newFakeCache()
	svc := newRateFixture(c, provider.URL)

	require.NoError(t, svc.Refresh(context.Background()))

	rates, err := svc.Rates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.024, rates["USD"], 1e-9)
	assert.InDelta(t, 1.0, rates["TRY"], 1e-9)
}

func TestRatesRefreshesOnColdCache(t *testing.T) {
	provider := rateProvider(t, `{"rates":{"USD":0.025}}`, http.StatusOK)
	defer provider.Close()

	svc := newRateFixture(newFakeCache(), provider.URL)

	rates, err := svc.Rates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.025, rates["USD"], 1e-9)
}

func TestRefreshFailureLeavesCacheUntouched(t *testing.T) {
	provider := rateProvider(t, `upstream error`, http.StatusBadGateway)
	defer provider.Close()

	c := newFakeCache()
	c.data[cache.ExchangeRatesKey] = `{"USD":0.024}`
	svc := newRateFixture(c, provider.URL)

	assert.ErrorIs(t, svc.Refresh(context.Background()), ErrRatesUnavailable)

	rates, err := svc.Rates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.024, rates["USD"], 1e-9)
}

func TestRefreshRejectsEmptyRateSet(t *testing.T) {
	provider := rateProvider(t, `{"rates":{}}`, http.StatusOK)
	defer provider.Close()

	svc := newRateFixture(newFakeCache(), provider.URL)
	assert.ErrorIs(t, svc.Refresh(context.Background()), ErrRatesUnavailable)
}

func TestApproxTRY(t *testing.T) {
	c := newFakeCache()
	c.data[cache.ExchangeRatesKey] = `{"USD":0.025,"EUR":0.02,"GBP":0}`
	svc := newRateFixture(c, "http://unused.local")

	got, err := svc.ApproxTRY(context.Background(), 25000, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 1000000, got, 1e-6)

	// TRY needs no conversion and no cache hit
	got, err = svc.ApproxTRY(context.Background(), 850000, "TRY")
	require.NoError(t, err)
	assert.Equal(t, float64(850000), got)

	_, err = svc.ApproxTRY(context.Background(), 100, "JPY")
	assert.ErrorIs(t, err, ErrRatesUnavailable)

	// a zero rate never divides
	_, err = svc.ApproxTRY(context.Background(), 100, "GBP")
	assert.ErrorIs(t, err, ErrRatesUnavailable)
}
