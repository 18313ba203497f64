package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannels(t *testing.T) {
	assert.Equal(t, "sessions", GlobalSessionsChannel)
	assert.Equal(t, "session:abc-123", SessionChannel("abc-123"))
}

func TestInjectDBEventID(t *testing.T) {
	out, err := injectDBEventIDAndTruncate([]byte(`{"type":"phase.transition","session_id":"s1"}`), 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.EqualValues(t, 42, m["db_event_id"])
	assert.Equal(t, "phase.transition", m["type"])
}

func TestInjectDBEventIDRejectsNonJSON(t *testing.T) {
	_, err := injectDBEventIDAndTruncate([]byte(`not json`), 1)
	assert.Error(t, err)
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		out, err := truncateIfNeeded(`{"type":"t","session_id":"s"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"type":"t","session_id":"s"}`, out)
	})

	t.Run("oversized payload becomes a routing envelope", func(t *testing.T) {
		big := `{"type":"phase.transition","session_id":"s1","db_event_id":7,"blob":"` +
			strings.Repeat("x", 9000) + `"}`
		out, err := truncateIfNeeded(big)
		require.NoError(t, err)
		assert.Less(t, len(out), 7900)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.Equal(t, "phase.transition", m["type"])
		assert.Equal(t, "s1", m["session_id"])
		assert.Equal(t, true, m["truncated"])
		assert.EqualValues(t, 7, m["db_event_id"])
		assert.NotContains(t, m, "blob")
	})

	t.Run("envelope omits a missing db_event_id", func(t *testing.T) {
		big := `{"type":"t","session_id":"s","blob":"` + strings.Repeat("x", 9000) + `"}`
		out, err := truncateIfNeeded(big)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.NotContains(t, m, "db_event_id")
	})
}
