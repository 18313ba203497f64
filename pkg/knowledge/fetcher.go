package knowledge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/stagehand-project/stagehand/pkg/config"
)

const (
	// retryBaseDelay is the first backoff step; each retry doubles it.
	retryBaseDelay = 500 * time.Millisecond
	maxRetries     = 2
	// maxHeaders caps how many response headers a FetchResult records.
	maxHeaders = 10
	// maxBodyChars caps the recorded (post-truncation) body per result.
	maxBodyChars = 10000
)

// Fetcher queries selected catalog endpoints concurrently under a
// semaphore, with SSRF guarding, per-host rate limiting, retry with
// exponential backoff, and alternate-endpoint fallback.
type Fetcher struct {
	cfg     config.KnowledgeConfig
	guard   *Guard
	limiter *RateLimiter
	client  *http.Client
	logger  *slog.Logger

	// sleep is swapped in tests to skip real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewFetcher creates a fetcher. A nil client gets a default one with the
// configured per-request timeout.
func NewFetcher(cfg config.KnowledgeConfig, guard *Guard, limiter *RateLimiter, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		cfg:     cfg,
		guard:   guard,
		limiter: limiter,
		client:  client,
		logger:  slog.With("component", "knowledge.fetcher"),
		sleep:   sleepCtx,
	}
}

// FetchAll queries every endpoint with at most cfg.MaxConcurrency in
// flight. Individual failures never abort siblings; every endpoint yields
// exactly one FetchResult. Results come back in input order.
func (f *Fetcher) FetchAll(ctx context.Context, endpoints []config.APIEndpoint) []FetchResult {
	results := make([]FetchResult, len(endpoints))
	sem := semaphore.NewWeighted(int64(f.cfg.MaxConcurrency))

	var wg sync.WaitGroup
	for i, ep := range endpoints {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = canceledResult(ep, i)
			continue
		}
		wg.Add(1)
		go func(i int, ep config.APIEndpoint) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = f.fetchOne(ctx, ep, i)
		}(i, ep)
	}
	wg.Wait()

	return results
}

// fetchOne tries the primary URL with retries, then each alternate pattern
// in order. An alternate success is reported as corrected with the
// endpoint field naming both URLs.
func (f *Fetcher) fetchOne(ctx context.Context, ep config.APIEndpoint, index int) FetchResult {
	primary := f.attemptWithRetries(ctx, ep, ep.URL, index)
	if primary.Success {
		return primary
	}

	for _, alt := range ep.EndpointPatterns {
		if ctx.Err() != nil {
			break
		}
		res := f.attemptWithRetries(ctx, ep, alt, index)
		if res.Success {
			res.Corrected = true
			res.Endpoint = fmt.Sprintf("%s -> %s", ep.URL, alt)
			f.logger.Info("Alternate endpoint recovered a failed fetch",
				"name", ep.Name, "primary", ep.URL, "alternate", alt)
			return res
		}
	}
	return primary
}

// attemptWithRetries runs up to 1+maxRetries attempts against one URL with
// exponential backoff. Non-retryable failures (SSRF block, rate limit,
// cancellation, 4xx other than 429) return immediately.
func (f *Fetcher) attemptWithRetries(ctx context.Context, ep config.APIEndpoint, rawURL string, index int) FetchResult {
	var last FetchResult
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			if err := f.sleep(ctx, delay); err != nil {
				return canceledResult(ep, index)
			}
		}
		last = f.attempt(ctx, ep, rawURL, index)
		if last.Success || !retryable(last) {
			return last
		}
		f.logger.Debug("Fetch attempt failed, will retry",
			"name", ep.Name, "url", rawURL, "attempt", attempt, "error_type", errType(last))
	}
	return last
}

// attempt performs one guarded HTTP GET.
func (f *Fetcher) attempt(ctx context.Context, ep config.APIEndpoint, rawURL string, index int) FetchResult {
	start := time.Now()
	res := FetchResult{
		Endpoint:    rawURL,
		Name:        ep.Name,
		Index:       index,
		Reliability: ep.Reliability,
	}
	fail := func(t ErrorType, msg string) FetchResult {
		res.DurationMS = time.Since(start).Milliseconds()
		res.Error = &FetchError{Type: t, Message: msg}
		return res
	}

	safeURL, ok := f.guard.Sanitize(ctx, rawURL)
	if !ok {
		return fail(ErrSSRFBlocked, "url rejected by outbound guard")
	}
	host := hostOf(safeURL)
	if !f.limiter.Allow(host) {
		return fail(ErrRateLimit, "per-host rate limit exceeded for "+host)
	}
	if err := f.limiter.Egress().Wait(ctx); err != nil {
		return fail(ErrCanceled, "canceled while waiting for egress slot")
	}

	reqCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, safeURL, nil)
	if err != nil {
		return fail(ErrUnknown, err.Error())
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "application/json, text/plain;q=0.8, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return fail(classify(ctx, err))
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	res.Headers = headerSubset(resp.Header)

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxContentLength))
	if err != nil {
		return fail(classify(ctx, err))
	}
	res.Size = len(body)
	res.DurationMS = time.Since(start).Milliseconds()

	if resp.StatusCode == http.StatusTooManyRequests {
		res.Error = &FetchError{Type: ErrRateLimit, Message: "remote returned 429"}
		return res
	}
	if resp.StatusCode >= 400 {
		res.Error = &FetchError{Type: ErrHTTP, Message: fmt.Sprintf("status %d", resp.StatusCode)}
		return res
	}

	res.Success = true
	res.Body = TruncateBody(string(body), maxBodyChars)
	return res
}

// retryable reports whether a failed result is worth another attempt on
// the same URL. Guard rejections and local rate limits will not change on
// retry; remote 429 backs off to the alternates instead.
func retryable(r FetchResult) bool {
	if r.Error == nil {
		return false
	}
	switch r.Error.Type {
	case ErrTimeout, ErrNetwork:
		return true
	case ErrHTTP:
		return r.Status >= 500
	default:
		return false
	}
}

func classify(ctx context.Context, err error) (ErrorType, string) {
	switch {
	case ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled):
		return ErrCanceled, "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout, "request deadline exceeded"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout, "request deadline exceeded"
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return ErrNetwork, ue.Err.Error()
	}
	return ErrNetwork, err.Error()
}

func canceledResult(ep config.APIEndpoint, index int) FetchResult {
	return FetchResult{
		Endpoint:    ep.URL,
		Name:        ep.Name,
		Index:       index,
		Reliability: ep.Reliability,
		Error:       &FetchError{Type: ErrCanceled, Message: "canceled before fetch"},
	}
}

// headerSubset copies up to maxHeaders response headers, preferring a
// stable alphabetical selection so repeated fetches report the same keys.
func headerSubset(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxHeaders {
		keys = keys[:maxHeaders]
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = h.Get(k)
	}
	return out
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return strings.ToLower(u.Hostname())
}

func errType(r FetchResult) ErrorType {
	if r.Error == nil {
		return ""
	}
	return r.Error.Type
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
