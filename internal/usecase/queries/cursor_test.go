//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 3, 10, 9, 0, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, ts.Equal(gotTime), "expected %v, got %v", ts, gotTime)
}

func TestAfterCursorTruncatesToMicros(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 3, 10, 9, 0, 0, 123456789, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	gotTime, _, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, ts.Truncate(time.Microsecond).UnixMicro(), gotTime.UnixMicro())
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty cursor", ""},
		{"not base64", "!!!not-base64!!!"},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{"missing separator", base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{"non numeric timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"invalid uuid", base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
