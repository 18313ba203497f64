package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
)

func testSynthesizer(maxBytes int) *Synthesizer {
	return NewSynthesizer(config.KnowledgeConfig{MaxResponseSize: maxBytes})
}

func TestSynthesizeConfidence(t *testing.T) {
	s := testSynthesizer(5000)

	t.Run("all succeed", func(t *testing.T) {
		out := s.Synthesize([]FetchResult{
			{Name: "a", Success: true, Reliability: 0.9, Body: "alpha"},
			{Name: "b", Success: true, Reliability: 0.7, Body: "beta"},
		})
		// mean(0.9, 0.7) * 2/2
		assert.InDelta(t, 0.8, out.Confidence, 1e-9)
	})

	t.Run("partial failures degrade confidence", func(t *testing.T) {
		out := s.Synthesize([]FetchResult{
			{Name: "a", Success: true, Reliability: 0.8, Body: "alpha"},
			{Name: "b", Success: false, Reliability: 0.9},
			{Name: "c", Success: false, Reliability: 0.9},
			{Name: "d", Success: false, Reliability: 0.9},
		})
		// mean(0.8) * 1/4
		assert.InDelta(t, 0.2, out.Confidence, 1e-9)
	})

	t.Run("zero successes yields fallback", func(t *testing.T) {
		out := s.Synthesize([]FetchResult{
			{Name: "a", Success: false},
			{Name: "b", Success: false},
		})
		assert.Zero(t, out.Confidence)
		assert.Equal(t, fallbackAnswer, out.Answer)
		assert.Empty(t, out.Contradictions)
	})

	t.Run("empty round yields fallback", func(t *testing.T) {
		out := s.Synthesize(nil)
		assert.Zero(t, out.Confidence)
		assert.Equal(t, fallbackAnswer, out.Answer)
	})
}

func TestComposeAnswerOrdersByReliability(t *testing.T) {
	s := testSynthesizer(5000)
	out := s.Synthesize([]FetchResult{
		{Name: "weak", Success: true, Reliability: 0.5, Body: "weak body"},
		{Name: "strong", Success: true, Reliability: 0.95, Body: "strong body"},
	})

	strongIdx := strings.Index(out.Answer, "## strong")
	weakIdx := strings.Index(out.Answer, "## weak")
	require.GreaterOrEqual(t, strongIdx, 0)
	require.GreaterOrEqual(t, weakIdx, 0)
	assert.Less(t, strongIdx, weakIdx, "most reliable source leads the answer")
}

func TestComposeAnswerRespectsByteCap(t *testing.T) {
	s := testSynthesizer(60)
	out := s.Synthesize([]FetchResult{
		{Name: "a", Success: true, Reliability: 0.9, Body: strings.Repeat("x", 40)},
		{Name: "b", Success: true, Reliability: 0.8, Body: strings.Repeat("y", 40)},
	})
	assert.LessOrEqual(t, len(out.Answer), 60)
	assert.Contains(t, out.Answer, "## a")
}

func TestDetectContradictions(t *testing.T) {
	t.Run("differing scalar fields are reported", func(t *testing.T) {
		out := detectContradictions([]FetchResult{
			{Name: "one", Success: true, Body: `{"version":"1.2","stable":true}`},
			{Name: "two", Success: true, Body: `{"version":"2.0","stable":true}`},
		})
		require.Len(t, out, 1)
		assert.Contains(t, out[0], `field "version"`)
		assert.Contains(t, out[0], "one")
		assert.Contains(t, out[0], "two")
	})

	t.Run("agreement is not a contradiction", func(t *testing.T) {
		out := detectContradictions([]FetchResult{
			{Name: "one", Body: `{"count":3}`},
			{Name: "two", Body: `{"count":3}`},
		})
		assert.Empty(t, out)
	})

	t.Run("non-json and nested values are skipped", func(t *testing.T) {
		out := detectContradictions([]FetchResult{
			{Name: "one", Body: `plain text`},
			{Name: "two", Body: `{"nested":{"a":1},"list":[1,2]}`},
			{Name: "three", Body: `{"nested":{"a":2},"list":[9]}`},
		})
		assert.Empty(t, out)
	})
}
