package knowledge

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/stagehand-project/stagehand/pkg/config"
)

// fallbackAnswer is returned when no endpoint produced usable data. The
// worker is told to fall back to its own research tools.
const fallbackAnswer = "No external knowledge sources responded. Proceed using your own research tools (web_search, web_fetch) and note the reduced confidence in your plan."

// Synthesizer combines a fetch round into a single knowledge artifact.
type Synthesizer struct {
	maxAnswerBytes int
}

// NewSynthesizer creates a synthesizer with the configured answer cap.
func NewSynthesizer(cfg config.KnowledgeConfig) *Synthesizer {
	return &Synthesizer{maxAnswerBytes: cfg.MaxResponseSize}
}

// Synthesize builds the combined answer, detects contradictions between
// sources, and scores confidence as
//
//	mean(reliability of successful sources) * successful / requested
//
// so confidence degrades both with unreliable sources and with failures.
// Zero successes yield confidence 0 and the fallback answer.
func (s *Synthesizer) Synthesize(results []FetchResult) Synthesis {
	var successes []FetchResult
	for _, r := range results {
		if r.Success {
			successes = append(successes, r)
		}
	}

	if len(successes) == 0 {
		return Synthesis{Answer: fallbackAnswer, Confidence: 0}
	}

	var reliabilitySum float64
	for _, r := range successes {
		reliabilitySum += r.Reliability
	}
	confidence := (reliabilitySum / float64(len(successes))) * float64(len(successes)) / float64(len(results))

	return Synthesis{
		Answer:         s.composeAnswer(successes),
		Contradictions: detectContradictions(successes),
		Confidence:     confidence,
	}
}

// composeAnswer concatenates per-source sections under the byte cap.
// Sources are ordered by reliability so the cap drops the weakest first.
func (s *Synthesizer) composeAnswer(successes []FetchResult) string {
	ordered := make([]FetchResult, len(successes))
	copy(ordered, successes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Reliability > ordered[j].Reliability
	})

	var sb strings.Builder
	for _, r := range ordered {
		section := fmt.Sprintf("## %s\n%s\n\n", r.Name, r.Body)
		if sb.Len()+len(section) > s.maxAnswerBytes {
			remaining := s.maxAnswerBytes - sb.Len()
			if remaining > len(truncatedSuffix) {
				sb.WriteString(section[:remaining-len(truncatedSuffix)])
				sb.WriteString(truncatedSuffix)
			}
			break
		}
		sb.WriteString(section)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// detectContradictions compares top-level scalar JSON fields across
// sources. Two sources reporting different values for the same key is
// recorded as a contradiction; non-JSON bodies and nested structures are
// skipped.
func detectContradictions(successes []FetchResult) []string {
	type claim struct {
		source string
		value  string
	}
	claims := make(map[string][]claim)

	for _, r := range successes {
		var doc map[string]any
		if err := json.Unmarshal([]byte(r.Body), &doc); err != nil {
			continue
		}
		for key, v := range doc {
			switch v.(type) {
			case string, float64, bool:
				claims[key] = append(claims[key], claim{source: r.Name, value: fmt.Sprintf("%v", v)})
			}
		}
	}

	var contradictions []string
	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cs := claims[key]
		if len(cs) < 2 {
			continue
		}
		first := cs[0]
		for _, c := range cs[1:] {
			if c.value != first.value {
				contradictions = append(contradictions,
					fmt.Sprintf("field %q: %s reports %q but %s reports %q",
						key, first.source, first.value, c.source, c.value))
				break
			}
		}
	}
	return contradictions
}
