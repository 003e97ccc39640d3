package datetime

import (
	"encoding/json"
	"testing"
	"time"

	"campusbook/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid naive local date-time", func(t *testing.T) {
		got, err := Parse("2026-03-02T07:45:00")

		require.NoError(t, err)
		assert.Equal(t, "2026-03-02T07:45:00", got.String())
		assert.Equal(t, timezone.GetLocation(), got.Location())
	})

	t.Run("rejects offset suffix", func(t *testing.T) {
		_, err := Parse("2026-03-02T07:45:00Z")

		assert.Error(t, err)
	})

	t.Run("rejects date only", func(t *testing.T) {
		_, err := Parse("2026-03-02")

		assert.Error(t, err)
	})
}

func TestFromSlot(t *testing.T) {
	got, err := FromSlot("2026-03-02", "07:45")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-02T07:45:00", got.String())
}

func TestEqual(t *testing.T) {
	slotStart, err := FromSlot("2026-03-02", "09:50")
	require.NoError(t, err)

	bookingStart, err := Parse("2026-03-02T09:50:00")
	require.NoError(t, err)

	offByAMinute, err := Parse("2026-03-02T09:51:00")
	require.NoError(t, err)

	assert.True(t, slotStart.Equal(bookingStart))
	assert.False(t, slotStart.Equal(offByAMinute))
}

func TestNewTruncatesToSecond(t *testing.T) {
	raw := time.Date(2026, 3, 2, 12, 10, 0, 999999999, timezone.GetLocation())

	got := New(raw)

	assert.Equal(t, "2026-03-02T12:10:00", got.String())
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		StartTime Local `json:"start_time"`
	}

	local, err := Parse("2026-03-06T13:50:00")
	require.NoError(t, err)

	raw, err := json.Marshal(payload{StartTime: local})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_time":"2026-03-06T13:50:00"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, local.Equal(decoded.StartTime))
}

func TestScan(t *testing.T) {
	t.Run("time.Time", func(t *testing.T) {
		var l Local

		require.NoError(t, l.Scan(time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC)))
		assert.False(t, l.IsZero())
	})

	t.Run("string", func(t *testing.T) {
		var l Local

		require.NoError(t, l.Scan("2026-03-02T07:45:00"))
		assert.Equal(t, "2026-03-02T07:45:00", l.String())
	})

	t.Run("nil", func(t *testing.T) {
		var l Local

		require.NoError(t, l.Scan(nil))
		assert.True(t, l.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var l Local

		assert.Error(t, l.Scan(42))
	})
}
