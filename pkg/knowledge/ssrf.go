package knowledge

import (
	"context"
	"net"
	"net/url"
	"strings"

	"github.com/stagehand-project/stagehand/pkg/config"
)

// blockedNets are the address ranges outbound fetches must never reach:
// loopback, link-local, RFC1918, and cloud metadata space.
var blockedNets = mustParseCIDRs(
	"127.0.0.0/8",
	"169.254.0.0/16",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"0.0.0.0/8",
	"::1/128",
	"fc00::/7",
	"fe80::/10",
)

// strippedParams is the query-parameter denylist: prototype-pollution
// vectors plus anything the deployment adds via WithStrippedParams.
var strippedParams = []string{
	"__proto__",
	"constructor",
	"prototype",
}

func mustParseCIDRs(cidrs ...string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(c)
		if err != nil {
			panic("knowledge: bad builtin CIDR " + c)
		}
		nets = append(nets, n)
	}
	return nets
}

// Guard classifies outbound URLs as safe or unsafe and returns a
// normalized form for safe ones. A disabled guard still normalizes and
// strips denylisted query parameters; only the network checks are skipped.
type Guard struct {
	enabled      bool
	allowedHosts []string // lowercase; "*." prefix wildcards allowed
	extraParams  []string // caller-defined additions to the denylist
	resolver     *net.Resolver
}

// NewGuard creates an SSRF guard from config.
func NewGuard(cfg config.SSRFConfig) *Guard {
	return &Guard{
		enabled:      cfg.Enabled,
		allowedHosts: cfg.AllowedHosts,
		resolver:     net.DefaultResolver,
	}
}

// WithStrippedParams extends the query-parameter denylist.
func (g *Guard) WithStrippedParams(params ...string) *Guard {
	g.extraParams = append(g.extraParams, params...)
	return g
}

// Sanitize validates rawURL and returns its normalized absolute form.
// The boolean is false when the URL is rejected. Sanitize is idempotent:
// feeding an accepted result back in returns it unchanged.
//
// Rejection reasons: non-http(s) scheme, literal localhost or 0.0.0.0,
// a host resolving into a blocked range, or a configured allowlist the
// host does not match.
func (g *Guard) Sanitize(ctx context.Context, rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	u.Scheme = scheme

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}

	if g.enabled {
		if host == "localhost" || host == "0.0.0.0" {
			return "", false
		}
		if len(g.allowedHosts) > 0 && !matchesAllowlist(host, g.allowedHosts) {
			return "", false
		}
		if !g.resolvesSafely(ctx, host) {
			return "", false
		}
	}

	u.RawQuery = g.stripParams(u.Query()).Encode()
	u.Fragment = ""
	return u.String(), true
}

// resolvesSafely resolves the host and checks every returned address
// against the blocked ranges. Literal IPs are checked directly without a
// DNS round trip. Resolution failure is treated as unsafe.
func (g *Guard) resolvesSafely(ctx context.Context, host string) bool {
	if ip := net.ParseIP(host); ip != nil {
		return !isBlockedIP(ip)
	}

	addrs, err := g.resolver.LookupHost(ctx, host)
	if err != nil || len(addrs) == 0 {
		return false
	}
	for _, addr := range addrs {
		ip := net.ParseIP(addr)
		if ip == nil || isBlockedIP(ip) {
			return false
		}
	}
	return true
}

func isBlockedIP(ip net.IP) bool {
	if ip.IsUnspecified() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}
	for _, n := range blockedNets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// matchesAllowlist checks host against exact entries and "*." prefix
// wildcards ("*.example.com" matches "api.example.com" and "example.com").
func matchesAllowlist(host string, allowed []string) bool {
	for _, entry := range allowed {
		if entry == host {
			return true
		}
		if suffix, ok := strings.CutPrefix(entry, "*."); ok {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return true
			}
		}
	}
	return false
}

// stripParams removes denylisted query parameters, case-insensitively.
func (g *Guard) stripParams(q url.Values) url.Values {
	for key := range q {
		lowered := strings.ToLower(key)
		for _, denied := range strippedParams {
			if lowered == denied {
				q.Del(key)
			}
		}
		for _, denied := range g.extraParams {
			if lowered == strings.ToLower(denied) {
				q.Del(key)
			}
		}
	}
	return q
}
