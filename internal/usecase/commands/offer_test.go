//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/usecase/commands"
	"tutorlink/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerEnv struct {
	f         *fake.UnitOfWork
	uc        commands.OfferCommands
	clk       *clock.MockClock
	teacherID uuid.UUID
}

func newOfferEnv() *offerEnv {
	e := &offerEnv{
		f:         fake.NewUnitOfWork(),
		clk:       clock.NewMockClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		teacherID: uuid.New(),
	}
	e.uc = commands.NewOfferUseCase(e.f, e.clk)
	e.f.SeedUser(e.teacherID, "teacher@example.com", "teacher")
	return e
}

func (e *offerEnv) addSlot(offerID, teacherID uuid.UUID, start time.Time, d time.Duration) (*commands.AddSlotResult, error) {
	return e.uc.AddSlot(context.Background(), commands.AddSlotRequest{
		OfferID: offerID,
		Start:   start,
		End:     start.Add(d),
	}, teacherID)
}

func TestCreateOffer(t *testing.T) {
	t.Run("creates an active offer", func(t *testing.T) {
		e := newOfferEnv()

		result, err := e.uc.CreateOffer(context.Background(), commands.CreateOfferRequest{
			Subject:     "Linear Algebra",
			Description: "Proof-based course prep",
			HourlyRate:  40,
		}, e.teacherID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.OfferID)
	})

	t.Run("rejects a blank subject", func(t *testing.T) {
		e := newOfferEnv()

		_, err := e.uc.CreateOffer(context.Background(), commands.CreateOfferRequest{
			Subject:    "   ",
			HourlyRate: 40,
		}, e.teacherID)
		require.ErrorIs(t, err, commands.ErrInvalidOffer)
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		e := newOfferEnv()

		_, err := e.uc.CreateOffer(context.Background(), commands.CreateOfferRequest{
			Subject:    "Algebra",
			HourlyRate: -5,
		}, e.teacherID)
		require.ErrorIs(t, err, commands.ErrInvalidOffer)
	})
}

func TestAddSlot(t *testing.T) {
	t.Run("adds a future slot", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		result, err := e.addSlot(offerID, e.teacherID, e.clk.Now().Add(24*time.Hour), 90*time.Minute)
		require.NoError(t, err)

		slot := e.f.Slot(result.SlotID)
		require.NotNil(t, slot)
		assert.Equal(t, offerID, slot.OfferID)
		assert.False(t, slot.Booked)
	})

	t.Run("rejects an overlapping slot", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		start := e.clk.Now().Add(24 * time.Hour)
		_, err := e.addSlot(offerID, e.teacherID, start, time.Hour)
		require.NoError(t, err)

		_, err = e.addSlot(offerID, e.teacherID, start.Add(30*time.Minute), time.Hour)
		require.ErrorIs(t, err, commands.ErrSlotOverlap)
	})

	t.Run("back-to-back slots do not overlap", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		start := e.clk.Now().Add(24 * time.Hour)
		_, err := e.addSlot(offerID, e.teacherID, start, time.Hour)
		require.NoError(t, err)

		_, err = e.addSlot(offerID, e.teacherID, start.Add(time.Hour), time.Hour)
		require.NoError(t, err)
	})

	t.Run("rejects a slot in the past", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		_, err := e.addSlot(offerID, e.teacherID, e.clk.Now().Add(-time.Hour), time.Hour)
		require.ErrorIs(t, err, commands.ErrInvalidSlot)
	})

	t.Run("only the owner can add slots", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		_, err := e.addSlot(offerID, uuid.New(), e.clk.Now().Add(24*time.Hour), time.Hour)
		require.ErrorIs(t, err, commands.ErrNotOfferOwner)
	})

	t.Run("inactive offers take no new slots", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, false)

		_, err := e.addSlot(offerID, e.teacherID, e.clk.Now().Add(24*time.Hour), time.Hour)
		require.ErrorIs(t, err, commands.ErrOfferInactive)
	})

	t.Run("unknown offer", func(t *testing.T) {
		e := newOfferEnv()

		_, err := e.addSlot(uuid.New(), e.teacherID, e.clk.Now().Add(24*time.Hour), time.Hour)
		require.ErrorIs(t, err, commands.ErrOfferNotFound)
	})
}

func TestDeactivateOffer(t *testing.T) {
	t.Run("owner deactivates the offer", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		require.NoError(t, e.uc.DeactivateOffer(context.Background(), offerID, e.teacherID))
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		e := newOfferEnv()
		offerID := uuid.New()
		e.f.SeedOffer(offerID, e.teacherID, 20, true)

		err := e.uc.DeactivateOffer(context.Background(), offerID, uuid.New())
		require.ErrorIs(t, err, commands.ErrOfferNotFound)
	})
}
