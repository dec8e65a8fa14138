package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		stats := computeLatencyStats(nil)
		assert.True(t, stats.IsZero())
		assert.Zero(t, stats.Mean)
	})

	t.Run("single value", func(t *testing.T) {
		stats := computeLatencyStats([]time.Duration{10 * time.Millisecond})
		assert.Equal(t, 10*time.Millisecond, stats.Min)
		assert.Equal(t, 10*time.Millisecond, stats.Max)
		assert.Equal(t, 10*time.Millisecond, stats.P95)
		assert.Zero(t, stats.Stddev)
	})

	t.Run("unsorted values", func(t *testing.T) {
		stats := computeLatencyStats([]time.Duration{
			50 * time.Millisecond,
			10 * time.Millisecond,
			30 * time.Millisecond,
			20 * time.Millisecond,
			40 * time.Millisecond,
		})
		assert.Equal(t, 10*time.Millisecond, stats.Min)
		assert.Equal(t, 50*time.Millisecond, stats.Max)
		assert.Equal(t, 30*time.Millisecond, stats.Mean)
		assert.Equal(t, 30*time.Millisecond, stats.P50)
		assert.InDelta(t, float64(48*time.Millisecond), float64(stats.P95), float64(time.Microsecond))
		assert.Equal(t, 5, stats.SampleCount)
		assert.Greater(t, stats.Stddev, time.Duration(0))
	})
}
