package knowledge

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
)

func TestSanitizeSchemes(t *testing.T) {
	g := NewGuard(config.SSRFConfig{Enabled: true})
	ctx := context.Background()

	for _, raw := range []string{
		"ftp://example.com/file",
		"file:///etc/passwd",
		"gopher://example.com",
		"javascript:alert(1)",
		"not a url",
		"",
	} {
		_, ok := g.Sanitize(ctx, raw)
		assert.False(t, ok, "url %q", raw)
	}
}

func TestSanitizeBlockedHosts(t *testing.T) {
	g := NewGuard(config.SSRFConfig{Enabled: true})
	ctx := context.Background()

	for _, raw := range []string{
		"http://localhost/admin",
		"http://localhost:8080/admin",
		"http://0.0.0.0/",
		"http://127.0.0.1/",
		"http://127.0.0.53:53/",
		"http://10.1.2.3/internal",
		"http://172.16.0.1/",
		"http://192.168.1.1/router",
		"http://169.254.169.254/latest/meta-data/",
		"http://[::1]/",
	} {
		_, ok := g.Sanitize(ctx, raw)
		assert.False(t, ok, "url %q", raw)
	}
}

func TestSanitizeDisabledGuardStillNormalizes(t *testing.T) {
	g := NewGuard(config.SSRFConfig{Enabled: false})
	ctx := context.Background()

	// Network checks off: loopback passes, but param stripping and scheme
	// checks still apply.
	out, ok := g.Sanitize(ctx, "http://127.0.0.1:9999/path?__proto__=x&q=1")
	require.True(t, ok)
	assert.NotContains(t, out, "__proto__")
	assert.Contains(t, out, "q=1")

	_, ok = g.Sanitize(ctx, "ftp://127.0.0.1/")
	assert.False(t, ok)
}

func TestSanitizeStripsDenylistedParams(t *testing.T) {
	g := NewGuard(config.SSRFConfig{Enabled: false}).WithStrippedParams("api_key")
	ctx := context.Background()

	out, ok := g.Sanitize(ctx, "https://example.test/search?q=go&__PROTO__=1&constructor=2&prototype=3&API_KEY=secret")
	require.True(t, ok)
	assert.Contains(t, out, "q=go")
	assert.NotContains(t, out, "__PROTO__")
	assert.NotContains(t, out, "constructor")
	assert.NotContains(t, out, "prototype")
	assert.NotContains(t, out, "secret")
}

func TestSanitizeIdempotent(t *testing.T) {
	g := NewGuard(config.SSRFConfig{Enabled: false})
	ctx := context.Background()

	first, ok := g.Sanitize(ctx, "HTTPS://example.test/a%20b?__proto__=x&keep=1#frag")
	require.True(t, ok)

	second, ok := g.Sanitize(ctx, first)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestMatchesAllowlist(t *testing.T) {
	allowed := []string{"api.example.com", "*.trusted.org"}

	assert.True(t, matchesAllowlist("api.example.com", allowed))
	assert.True(t, matchesAllowlist("trusted.org", allowed))
	assert.True(t, matchesAllowlist("sub.trusted.org", allowed))
	assert.True(t, matchesAllowlist("deep.sub.trusted.org", allowed))

	assert.False(t, matchesAllowlist("example.com", allowed))
	assert.False(t, matchesAllowlist("eviltrusted.org", allowed))
	assert.False(t, matchesAllowlist("trusted.org.evil.net", allowed))
}

func TestSanitizeAllowlistEnforced(t *testing.T) {
	g := NewGuard(config.SSRFConfig{Enabled: true, AllowedHosts: []string{"*.example.com"}})
	ctx := context.Background()

	_, ok := g.Sanitize(ctx, "https://other.test/")
	assert.False(t, ok)
}

func TestIsBlockedIP(t *testing.T) {
	blocked := []string{"127.0.0.1", "10.0.0.5", "172.20.1.1", "192.168.0.10", "169.254.169.254", "0.0.0.0", "::1", "fe80::1", "fc00::1"}
	for _, s := range blocked {
		assert.True(t, isBlockedIP(mustIP(t, s)), "ip %s", s)
	}
	for _, s := range []string{"8.8.8.8", "1.1.1.1", "2606:4700::1111"} {
		assert.False(t, isBlockedIP(mustIP(t, s)), "ip %s", s)
	}
}

func mustIP(t *testing.T, s string) net.IP {
	t.Helper()
	ip := net.ParseIP(s)
	require.NotNil(t, ip, "bad test ip %q", s)
	return ip
}
