package knowledge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
)

func testLimiter(capacity int, window time.Duration) (*RateLimiter, *time.Time) {
	l := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: capacity, Window: window})
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestCanMakeRequestDeniesOverCapacity(t *testing.T) {
	l, _ := testLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("api.example.com"), "request %d", i+1)
	}
	assert.False(t, l.Allow("api.example.com"), "request over capacity must be denied")
}

func TestCanMakeRequestWindowReset(t *testing.T) {
	l, now := testLimiter(2, time.Minute)

	assert.True(t, l.Allow("h"))
	assert.True(t, l.Allow("h"))
	assert.False(t, l.Allow("h"))

	// Just before the window elapses: still denied.
	*now = now.Add(time.Minute - time.Millisecond)
	assert.False(t, l.Allow("h"))

	// First request after a full window is always admitted.
	*now = now.Add(time.Millisecond)
	assert.True(t, l.Allow("h"))
}

func TestHostsAreIndependent(t *testing.T) {
	l, _ := testLimiter(1, time.Minute)

	assert.True(t, l.Allow("a.example.com"))
	assert.False(t, l.Allow("a.example.com"))
	assert.True(t, l.Allow("b.example.com"))
}

func TestReset(t *testing.T) {
	l, _ := testLimiter(1, time.Minute)

	require.True(t, l.Allow("h"))
	require.False(t, l.Allow("h"))

	l.Reset("h")
	assert.True(t, l.Allow("h"))
}

func TestStatus(t *testing.T) {
	l, now := testLimiter(5, time.Minute)

	st := l.Status("fresh")
	assert.Equal(t, 5, st.Tokens)
	assert.Zero(t, st.RequestCount)

	l.Allow("h")
	l.Allow("h")
	st = l.Status("h")
	assert.Equal(t, 3, st.Tokens)
	assert.Equal(t, 2, st.RequestCount)
	assert.Equal(t, *now, st.WindowStart)

	*now = now.Add(2 * time.Minute)
	st = l.Status("h")
	assert.Equal(t, 5, st.Tokens, "elapsed window reports a full bucket")
}

func TestEgressSmoother(t *testing.T) {
	l, _ := testLimiter(5, time.Minute)
	require.NotNil(t, l.Egress())
	assert.True(t, l.Egress().Allow(), "bucket starts with burst available")
}
