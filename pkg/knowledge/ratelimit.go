package knowledge

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/stagehand-project/stagehand/pkg/config"
)

// HostStatus is a point-in-time view of one host's bucket.
type HostStatus struct {
	Tokens       int       `json:"tokens"`
	RequestCount int       `json:"request_count"`
	WindowStart  time.Time `json:"window_start"`
}

type hostWindow struct {
	windowStart  time.Time
	requestCount int
}

// RateLimiter enforces a per-host request budget over a sliding window,
// with a process-wide egress smoother on top. The per-host budget is a
// windowed counter (the (capacity+1)-th request inside one window is
// denied; the window resets once it fully elapses); the smoother is a
// token bucket that spreads bursts across time so a wide fetch fan-out
// does not fire simultaneously.
type RateLimiter struct {
	mu          sync.Mutex
	hosts       map[string]*hostWindow
	maxRequests int
	window      time.Duration
	now         func() time.Time

	egress *rate.Limiter
}

// egressPerSecond bounds total outbound request starts per second across
// all hosts.
const egressPerSecond = 10

// NewRateLimiter creates a limiter with the configured per-host defaults.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		hosts:       make(map[string]*hostWindow),
		maxRequests: cfg.RequestsPerMinute,
		window:      cfg.Window,
		now:         time.Now,
		egress:      rate.NewLimiter(rate.Limit(egressPerSecond), egressPerSecond),
	}
}

// Allow applies the configured defaults for the host.
func (l *RateLimiter) Allow(host string) bool {
	return l.CanMakeRequest(host, l.maxRequests, l.window)
}

// CanMakeRequest consumes one unit of the host's budget if available.
// The first call after a full window has elapsed always succeeds.
func (l *RateLimiter) CanMakeRequest(host string, maxRequests int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.hosts[host]
	if !ok || now.Sub(w.windowStart) >= window {
		w = &hostWindow{windowStart: now}
		l.hosts[host] = w
	}
	if w.requestCount >= maxRequests {
		return false
	}
	w.requestCount++
	return true
}

// Reset clears the host's window so its next request is admitted.
func (l *RateLimiter) Reset(host string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hosts, host)
}

// Status reports the host's remaining tokens and current window. A host
// with no recorded traffic reports a full bucket and a zero window start.
func (l *RateLimiter) Status(host string) HostStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.hosts[host]
	if !ok {
		return HostStatus{Tokens: l.maxRequests}
	}
	if l.now().Sub(w.windowStart) >= l.window {
		return HostStatus{Tokens: l.maxRequests}
	}
	tokens := l.maxRequests - w.requestCount
	if tokens < 0 {
		tokens = 0
	}
	return HostStatus{
		Tokens:       tokens,
		RequestCount: w.requestCount,
		WindowStart:  w.windowStart,
	}
}

// Egress returns the process-wide smoothing bucket. The fetcher waits on
// it before every request start.
func (l *RateLimiter) Egress() *rate.Limiter {
	return l.egress
}
