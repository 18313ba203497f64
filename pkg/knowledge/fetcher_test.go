package knowledge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
)

func testFetcher(t *testing.T) *Fetcher {
	t.Helper()
	cfg := config.KnowledgeConfig{
		MaxConcurrency:   2,
		Timeout:          2 * time.Second,
		MaxContentLength: 1 << 20,
		UserAgent:        "stagehand-test",
	}
	guard := NewGuard(config.SSRFConfig{Enabled: false})
	limiter := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 100, Window: time.Minute})
	f := NewFetcher(cfg, guard, limiter, nil)
	f.sleep = func(context.Context, time.Duration) error { return nil }
	return f
}

func TestFetchAllSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stagehand-test", r.UserAgent())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := testFetcher(t)
	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "one", URL: srv.URL + "/a", Reliability: 0.9},
		{Name: "two", URL: srv.URL + "/b", Reliability: 0.8},
	})

	require.Len(t, results, 2)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.True(t, r.Success)
		assert.Equal(t, http.StatusOK, r.Status)
		assert.Equal(t, `{"ok":true}`, r.Body)
		assert.False(t, r.Corrected)
		assert.LessOrEqual(t, len(r.Headers), maxHeaders)
	}
	assert.Equal(t, "one", results[0].Name)
	assert.Equal(t, "two", results[1].Name)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := testFetcher(t)
	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "flaky", URL: srv.URL, Reliability: 0.5},
	})

	require.Len(t, results, 1)
	r := results[0]
	assert.False(t, r.Success)
	require.NotNil(t, r.Error)
	assert.Equal(t, ErrHTTP, r.Error.Type)
	assert.EqualValues(t, 1+maxRetries, hits.Load(), "5xx retries up to the attempt cap")
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := testFetcher(t)
	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "missing", URL: srv.URL, Reliability: 0.5},
	})

	r := results[0]
	assert.False(t, r.Success)
	assert.Equal(t, ErrHTTP, r.Error.Type)
	assert.EqualValues(t, 1, hits.Load(), "4xx is terminal for the URL")
}

func TestFetchRemoteRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := testFetcher(t)
	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "throttled", URL: srv.URL, Reliability: 0.5},
	})

	r := results[0]
	assert.False(t, r.Success)
	assert.Equal(t, ErrRateLimit, r.Error.Type)
	assert.Equal(t, http.StatusTooManyRequests, r.Status)
}

func TestFetchLocalRateLimit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	cfg := config.KnowledgeConfig{MaxConcurrency: 1, Timeout: 2 * time.Second, MaxContentLength: 1 << 20, UserAgent: "t"}
	guard := NewGuard(config.SSRFConfig{Enabled: false})
	limiter := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Window: time.Minute})
	f := NewFetcher(cfg, guard, limiter, nil)
	f.sleep = func(context.Context, time.Duration) error { return nil }

	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "first", URL: srv.URL + "/1", Reliability: 0.5},
		{Name: "second", URL: srv.URL + "/2", Reliability: 0.5},
	})

	require.Len(t, results, 2)
	var denied int
	for _, r := range results {
		if !r.Success {
			require.NotNil(t, r.Error)
			assert.Equal(t, ErrRateLimit, r.Error.Type)
			denied++
		}
	}
	assert.Equal(t, 1, denied, "second request to the same host is denied locally")
	assert.EqualValues(t, 1, hits.Load())
}

func TestFetchSSRFBlocked(t *testing.T) {
	cfg := config.KnowledgeConfig{MaxConcurrency: 1, Timeout: 2 * time.Second, MaxContentLength: 1 << 20, UserAgent: "t"}
	guard := NewGuard(config.SSRFConfig{Enabled: true})
	limiter := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 100, Window: time.Minute})
	f := NewFetcher(cfg, guard, limiter, nil)
	f.sleep = func(context.Context, time.Duration) error { return nil }

	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "internal", URL: "http://127.0.0.1:1/secret", Reliability: 0.5},
	})

	r := results[0]
	assert.False(t, r.Success)
	require.NotNil(t, r.Error)
	assert.Equal(t, ErrSSRFBlocked, r.Error.Type)
}

func TestFetchAlternateRecovers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/primary" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	f := testFetcher(t)
	primary := srv.URL + "/primary"
	alternate := srv.URL + "/alternate"
	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "fallback", URL: primary, EndpointPatterns: []string{alternate}, Reliability: 0.5},
	})

	r := results[0]
	require.True(t, r.Success)
	assert.True(t, r.Corrected)
	assert.Contains(t, r.Endpoint, primary)
	assert.Contains(t, r.Endpoint, alternate)
	assert.Contains(t, r.Endpoint, " -> ")
	assert.Equal(t, "recovered", r.Body)
}

func TestFetchNetworkError(t *testing.T) {
	f := testFetcher(t)

	// A closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	results := f.FetchAll(context.Background(), []config.APIEndpoint{
		{Name: "gone", URL: url, Reliability: 0.5},
	})

	r := results[0]
	assert.False(t, r.Success)
	require.NotNil(t, r.Error)
	assert.Equal(t, ErrNetwork, r.Error.Type)
}

func TestMetricsFor(t *testing.T) {
	m := MetricsFor([]FetchResult{
		{Success: true, DurationMS: 10},
		{Success: true, Corrected: true, DurationMS: 20},
		{Success: false, Error: &FetchError{Type: ErrRateLimit}, DurationMS: 5},
		{Success: false, Error: &FetchError{Type: ErrSSRFBlocked}},
		{Success: false, Error: &FetchError{Type: ErrTimeout}},
	})

	assert.Equal(t, 5, m.Requested)
	assert.Equal(t, 2, m.Succeeded)
	assert.Equal(t, 3, m.Failed)
	assert.Equal(t, 1, m.RateLimited)
	assert.Equal(t, 1, m.SSRFBlocked)
	assert.Equal(t, 1, m.Corrected)
	assert.EqualValues(t, 35, m.TotalDurationMS)
}

func TestHeaderSubset(t *testing.T) {
	h := http.Header{}
	for _, k := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		h.Set(k, "v")
	}
	out := headerSubset(h)
	assert.Len(t, out, maxHeaders)
	assert.Contains(t, out, "A", "selection is alphabetical and stable")
	assert.NotContains(t, out, "L")

	assert.Nil(t, headerSubset(http.Header{}))
}
