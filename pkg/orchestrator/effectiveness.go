package orchestrator

import "github.com/stagehand-project/stagehand/pkg/config"

// Complexity tokens reported with EXECUTE completions. Anything other
// than "complex" is treated as simple.
const (
	ComplexitySimple  = "simple"
	ComplexityComplex = "complex"
)

const (
	deltaSimple  = 0.10
	deltaComplex = 0.15
)

// Tracker maintains the reasoning-effectiveness scalar: a rolling estimate
// of how well the worker is executing, nudged on every EXECUTE completion
// and clamped to the configured bounds.
type Tracker struct {
	cfg config.EffectivenessConfig
}

// NewTracker creates a tracker with the configured clamp bounds.
func NewTracker(cfg config.EffectivenessConfig) *Tracker {
	return &Tracker{cfg: cfg}
}

// Initial returns the starting effectiveness for a fresh session.
func (t *Tracker) Initial() float64 {
	return t.cfg.Initial
}

// Update applies one EXECUTE outcome. Complex tasks move the scalar
// further in both directions than simple ones.
func (t *Tracker) Update(current float64, success bool, complexity string) float64 {
	delta := deltaSimple
	if complexity == ComplexityComplex {
		delta = deltaComplex
	}
	if !success {
		delta = -delta
	}
	return t.clamp(current + delta)
}

func (t *Tracker) clamp(v float64) float64 {
	if v < t.cfg.Min {
		return t.cfg.Min
	}
	if v > t.cfg.Max {
		return t.cfg.Max
	}
	return v
}
