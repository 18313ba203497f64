package knowledge

import (
	"encoding/json"
	"fmt"
	"sort"
)

const (
	truncatedSuffix = "... [truncated]"
	// maxTruncateItems bounds how many array elements or object keys a
	// truncated JSON document retains per level.
	maxTruncateItems = 20
)

// TruncateBody shrinks a response body to at most maxChars characters.
// JSON bodies are truncated structurally so the result stays valid JSON:
// long strings are cut, oversized arrays and objects are trimmed with a
// "_truncated" sentinel recording how much was dropped. Non-JSON bodies
// get a plain character cut with a suffix marker.
func TruncateBody(body string, maxChars int) string {
	if maxChars <= 0 || len(body) <= maxChars {
		return body
	}

	var doc any
	if err := json.Unmarshal([]byte(body), &doc); err == nil {
		trimmed := truncateValue(doc, maxChars)
		if out, err := json.Marshal(trimmed); err == nil && len(out) <= maxChars+len(truncatedSuffix) {
			return string(out)
		}
	}

	cut := maxChars - len(truncatedSuffix)
	if cut < 0 {
		cut = 0
	}
	return body[:cut] + truncatedSuffix
}

// truncateValue recursively trims a decoded JSON value. budget is a soft
// per-value character allowance, not an exact guarantee; the caller
// re-checks the marshaled size.
func truncateValue(v any, budget int) any {
	switch val := v.(type) {
	case string:
		if len(val) > budget {
			cut := budget - len(truncatedSuffix)
			if cut < 0 {
				cut = 0
			}
			return val[:cut] + truncatedSuffix
		}
		return val

	case []any:
		n := len(val)
		if n > maxTruncateItems {
			n = maxTruncateItems
		}
		per := budget / (n + 1)
		out := make([]any, 0, n+1)
		for _, item := range val[:n] {
			out = append(out, truncateValue(item, per))
		}
		if n < len(val) {
			out = append(out, map[string]any{"_truncated": fmt.Sprintf("%d more items", len(val)-n)})
		}
		return out

	case map[string]any:
		if len(val) <= maxTruncateItems {
			per := budget / (len(val) + 1)
			out := make(map[string]any, len(val))
			for k, item := range val {
				out[k] = truncateValue(item, per)
			}
			return out
		}
		keys := sortedKeys(val)
		per := budget / (maxTruncateItems + 1)
		out := make(map[string]any, maxTruncateItems+1)
		for _, k := range keys[:maxTruncateItems] {
			out[k] = truncateValue(val[k], per)
		}
		out["_truncated"] = fmt.Sprintf("%d more keys", len(val)-maxTruncateItems)
		return out

	default:
		return val
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
