//go:build unit

package review_test

import (
	"strings"
	"testing"

	"tutorlink/internal/domain/review"
	"tutorlink/internal/domain/session"
	"tutorlink/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty comment is allowed",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
			},
			{
				name:   "whitespace only trims to empty",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength))
				},
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength+1))
				},
				errIs: review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  patient teacher  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "patient teacher", actual.Comment().String())
	})
}

func TestCheckEligibility(t *testing.T) {
	studentID := uuid.New()
	teacherID := uuid.New()

	buildSession := func(status session.Status) *session.Session {
		return builder.NewSessionBuilder().
			WithParties(studentID, teacherID).
			WithStatus(status).
			BuildReconstructed()
	}

	t.Run("student reviews the teacher", func(t *testing.T) {
		reviewee, err := review.CheckEligibility(buildSession(session.StatusCompleted), studentID)
		require.NoError(t, err)
		assert.Equal(t, teacherID, reviewee)
	})

	t.Run("teacher reviews the student", func(t *testing.T) {
		reviewee, err := review.CheckEligibility(buildSession(session.StatusCompleted), teacherID)
		require.NoError(t, err)
		assert.Equal(t, studentID, reviewee)
	})

	t.Run("outsider cannot review", func(t *testing.T) {
		_, err := review.CheckEligibility(buildSession(session.StatusCompleted), uuid.New())
		require.ErrorIs(t, err, review.ErrReviewerNotParticipant)
	})

	t.Run("only completed sessions are reviewable", func(t *testing.T) {
		for _, status := range []session.Status{session.StatusRequested, session.StatusConfirmed, session.StatusCancelled} {
			_, err := review.CheckEligibility(buildSession(status), studentID)
			require.ErrorIs(t, err, review.ErrSessionNotEligible, "status %s", status)
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
