package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewTrackingID()
		assert.Regexp(t, `^TRK-[0-9A-Z]{8}$`, id)
	}
}

func TestNewTrackingIDIsRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewTrackingID()
		require.False(t, seen[id], "duplicate tracking code %s", id)
		seen[id] = true
	}
}
