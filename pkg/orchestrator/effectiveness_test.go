package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagehand-project/stagehand/pkg/config"
)

func testTracker() *Tracker {
	return NewTracker(config.EffectivenessConfig{Initial: 0.8, Min: 0.3, Max: 1.0})
}

func TestTrackerUpdate(t *testing.T) {
	tr := testTracker()

	tests := []struct {
		name       string
		current    float64
		success    bool
		complexity string
		want       float64
	}{
		{"simple success", 0.5, true, ComplexitySimple, 0.6},
		{"simple failure", 0.5, false, ComplexitySimple, 0.4},
		{"complex success", 0.5, true, ComplexityComplex, 0.65},
		{"complex failure", 0.5, false, ComplexityComplex, 0.35},
		{"unknown complexity treated as simple", 0.5, true, "weird", 0.6},
		{"clamped at max", 0.95, true, ComplexityComplex, 1.0},
		{"clamped at min", 0.35, false, ComplexitySimple, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Update(tt.current, tt.success, tt.complexity)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTrackerInitial(t *testing.T) {
	assert.InDelta(t, 0.8, testTracker().Initial(), 1e-9)
}
