package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	for _, p := range AllPhases {
		got, err := ParsePhase(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	for _, bad := range []string{"", "init", "Query", "FINISH", "DONE "} {
		_, err := ParsePhase(bad)
		assert.Error(t, err, "token %q", bad)
	}
}

func TestPhaseClassification(t *testing.T) {
	assert.True(t, PhaseDone.IsTerminal())
	assert.False(t, PhaseVerify.IsTerminal())

	assert.False(t, PhaseInit.IsCompletable())
	assert.False(t, PhaseDone.IsCompletable())
	for _, p := range CompletablePhases {
		assert.True(t, p.IsCompletable(), "phase %s", p)
	}
}

func TestValidSessionID(t *testing.T) {
	assert.True(t, ValidSessionID("abc-123_XYZ"))
	assert.True(t, ValidSessionID("a"))

	assert.False(t, ValidSessionID(""))
	assert.False(t, ValidSessionID("has space"))
	assert.False(t, ValidSessionID("semi;colon"))
	assert.False(t, ValidSessionID(strings.Repeat("a", 129)))
	assert.True(t, ValidSessionID(strings.Repeat("a", 128)))
}
