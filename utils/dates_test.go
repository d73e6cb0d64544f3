package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("10-03-2024")
	assert.Error(t, err)

	_, err = ParseDay("2024-03-10T08:00:00Z")
	assert.Error(t, err)
}

func TestDayWindow(t *testing.T) {
	start, end := DayWindow(time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999999999, time.UTC), end)

	// boundary instants of the adjacent days fall outside the window
	assert.True(t, time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC).Before(start))
	assert.True(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC).After(end))
}

func TestDayWindow_NonUTCInput(t *testing.T) {
	// 2024-03-10 23:30 at UTC-05 is already 2024-03-11 in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	start, _ := DayWindow(time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), start)
}
