package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jstOffset = 540

func TestLocalDateKey_CrossesUTCMidnight(t *testing.T) {
	// 2025-11-13T16:00:00Z is already 2025-11-14 01:00 in UTC+9
	ts := time.Date(2025, 11, 13, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-14", LocalDateKey(ts, jstOffset))

	// An hour earlier is still 2025-11-13 locally
	ts = time.Date(2025, 11, 13, 14, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-13", LocalDateKey(ts, jstOffset))
}

func TestLocalDateKey_ZeroOffset(t *testing.T) {
	ts := time.Date(2025, 11, 13, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-11-13", LocalDateKey(ts, 0))
}

func TestLocalDayBounds_InclusiveEndpoints(t *testing.T) {
	start, end, err := LocalDayBounds("2025-11-13", jstOffset)
	require.NoError(t, err)

	// Local midnight is 15:00 UTC of the previous day at +9:00
	assert.Equal(t, time.Date(2025, 11, 12, 15, 0, 0, 0, time.UTC), start)

	// End is 23:59:59.999 local, still inside the day
	assert.Equal(t, time.Date(2025, 11, 13, 14, 59, 59, 999000000, time.UTC), end)

	// The next local midnight falls outside the range
	nextMidnight := time.Date(2025, 11, 13, 15, 0, 0, 0, time.UTC)
	assert.True(t, end.Before(nextMidnight))
}

func TestLocalDayBounds_InvalidDate(t *testing.T) {
	_, _, err := LocalDayBounds("13-11-2025", jstOffset)
	assert.Error(t, err)

	_, _, err = LocalDayBounds("", jstOffset)
	assert.Error(t, err)
}

func TestLocalDayBounds_RoundTripsWithDateKey(t *testing.T) {
	start, end, err := LocalDayBounds("2025-11-13", jstOffset)
	require.NoError(t, err)

	assert.Equal(t, "2025-11-13", LocalDateKey(start, jstOffset))
	assert.Equal(t, "2025-11-13", LocalDateKey(end, jstOffset))
}
