//go:build unit

package offer_test

import (
	"strings"
	"testing"
	"time"

	"tutorlink/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeRange(t *testing.T) {
	now := time.Now()

	t.Run("valid future range", func(t *testing.T) {
		tr, err := offer.NewTimeRange(now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, tr.Duration())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := offer.NewTimeRange(now.Add(2*time.Hour), now.Add(time.Hour), now)
		require.ErrorIs(t, err, offer.ErrInvalidTimeRange)

		_, err = offer.NewTimeRange(now.Add(time.Hour), now.Add(time.Hour), now)
		require.ErrorIs(t, err, offer.ErrInvalidTimeRange)
	})

	t.Run("start cannot be in the past", func(t *testing.T) {
		_, err := offer.NewTimeRange(now.Add(-time.Minute), now.Add(time.Hour), now)
		require.ErrorIs(t, err, offer.ErrTimeRangeInPast)
	})

	t.Run("reconstruct skips the past check", func(t *testing.T) {
		tr := offer.ReconstructTimeRange(now.Add(-2*time.Hour), now.Add(-time.Hour))
		assert.Equal(t, time.Hour, tr.Duration())
	})
}

func TestTimeRangeOverlaps(t *testing.T) {
	now := time.Now()
	base := offer.ReconstructTimeRange(now, now.Add(time.Hour))

	cases := []struct {
		name  string
		other offer.TimeRange
		want  bool
	}{
		{"identical", offer.ReconstructTimeRange(now, now.Add(time.Hour)), true},
		{"contained", offer.ReconstructTimeRange(now.Add(10*time.Minute), now.Add(20*time.Minute)), true},
		{"partial overlap", offer.ReconstructTimeRange(now.Add(30*time.Minute), now.Add(90*time.Minute)), true},
		{"adjacent after", offer.ReconstructTimeRange(now.Add(time.Hour), now.Add(2*time.Hour)), false},
		{"adjacent before", offer.ReconstructTimeRange(now.Add(-time.Hour), now), false},
		{"disjoint", offer.ReconstructTimeRange(now.Add(2*time.Hour), now.Add(3*time.Hour)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Overlaps(c.other))
			assert.Equal(t, c.want, c.other.Overlaps(base))
		})
	}
}

func TestNewPoints(t *testing.T) {
	p, err := offer.NewPoints(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.Value())

	zero, err := offer.NewPoints(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Value())

	_, err = offer.NewPoints(-1)
	require.ErrorIs(t, err, offer.ErrNegativePoints)

	other, _ := offer.NewPoints(50)
	assert.Equal(t, int64(150), p.Add(other).Value())
}

func TestNewSubject(t *testing.T) {
	s, err := offer.NewSubject("  Linear Algebra  ")
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", s.Value())

	_, err = offer.NewSubject("   ")
	require.ErrorIs(t, err, offer.ErrInvalidSubject)

	_, err = offer.NewSubject(strings.Repeat("x", 101))
	require.ErrorIs(t, err, offer.ErrInvalidSubject)

	// rune count, not byte count
	_, err = offer.NewSubject(strings.Repeat("数", 100))
	require.NoError(t, err)
}

func TestSlotClaimRelease(t *testing.T) {
	now := time.Now()
	tr, err := offer.NewTimeRange(now.Add(time.Hour), now.Add(2*time.Hour), now)
	require.NoError(t, err)

	slot := offer.NewSlot(uuid.New(), tr)
	require.False(t, slot.Booked())

	require.NoError(t, slot.Claim())
	assert.True(t, slot.Booked())
	require.ErrorIs(t, slot.Claim(), offer.ErrSlotAlreadyBooked)

	require.NoError(t, slot.Release())
	assert.False(t, slot.Booked())
	require.ErrorIs(t, slot.Release(), offer.ErrSlotNotBooked)
}
