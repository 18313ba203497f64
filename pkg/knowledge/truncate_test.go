package knowledge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateBodyPassThrough(t *testing.T) {
	assert.Equal(t, "short", TruncateBody("short", 100))
	assert.Equal(t, "exact", TruncateBody("exact", 5))
	assert.Equal(t, "untouched", TruncateBody("untouched", 0), "non-positive cap disables truncation")
}

func TestTruncateBodyPlainText(t *testing.T) {
	body := strings.Repeat("x", 200)
	out := TruncateBody(body, 50)
	assert.LessOrEqual(t, len(out), 50)
	assert.True(t, strings.HasSuffix(out, truncatedSuffix))
}

func TestTruncateBodyJSONStaysValid(t *testing.T) {
	doc := map[string]any{
		"title":       strings.Repeat("a", 500),
		"description": strings.Repeat("b", 500),
		"count":       42,
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	out := TruncateBody(string(raw), 200)
	require.NotEqual(t, string(raw), out)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), "truncated JSON must remain valid JSON")
	assert.Contains(t, decoded, "count")
}

func TestTruncateBodyLongArray(t *testing.T) {
	items := make([]any, 50)
	for i := range items {
		items[i] = map[string]any{"n": i}
	}
	raw, err := json.Marshal(items)
	require.NoError(t, err)

	out := TruncateBody(string(raw), 300)

	var decoded []any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotEmpty(t, decoded)
	last, ok := decoded[len(decoded)-1].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, last["_truncated"], "more items")
}

func TestTruncateBodyWideObject(t *testing.T) {
	doc := make(map[string]any, 40)
	for i := 0; i < 40; i++ {
		doc[strings.Repeat("k", i+1)] = i
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	out := TruncateBody(string(raw), 400)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded["_truncated"], "more keys")
	assert.LessOrEqual(t, len(decoded), maxTruncateItems+1)
}
