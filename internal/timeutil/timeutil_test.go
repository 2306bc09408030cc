package timeutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/agua_mid/internal/clock"
)

func TestToday_AppliesFixedOffset(t *testing.T) {
	// 03:00 UTC todavía es el día anterior en UTC-5
	c := clock.NewMockClock(time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-09", Today(c, DefaultOffsetHours))

	c.Set(time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-10", Today(c, DefaultOffsetHours))
}

func TestToday_IgnoresClockLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	c := clock.NewMockClock(time.Date(2025, 3, 10, 8, 0, 0, 0, tokyo)) // 23:00 UTC del 9
	assert.Equal(t, "2025-03-09", Today(c, DefaultOffsetHours))
}

func TestCurrentTime_UsesLocalWallClock(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	c := clock.NewMockClock(time.Date(2025, 3, 10, 8, 5, 0, 0, tokyo))
	assert.Equal(t, "08:05", CurrentTime(c))
}

func TestToMinutes(t *testing.T) {
	m, ok := ToMinutes("07:30")
	assert.True(t, ok)
	assert.Equal(t, 450, m)

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd", "12:5"} {
		_, ok := ToMinutes(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsGreaterThan_MatchesMinuteOrder(t *testing.T) {
	times := []string{"00:00", "00:10", "06:45", "12:00", "23:50"}
	for i, a := range times {
		assert.False(t, IsGreaterThan(a, a), "irreflexive for %s", a)
		for j, b := range times {
			assert.Equal(t, i > j, IsGreaterThan(a, b), "%s > %s", a, b)
		}
	}
}

func TestIsGreaterThan_NoWraparound(t *testing.T) {
	assert.False(t, IsGreaterThan("00:10", "23:50"))
	assert.True(t, IsGreaterThan("23:50", "00:10"))
}

func TestDurationHours_Linear(t *testing.T) {
	for s := 0; s < 1440; s += 97 {
		for e := s + 1; e < 1440; e += 131 {
			start := fmt.Sprintf("%02d:%02d", s/60, s%60)
			end := fmt.Sprintf("%02d:%02d", e/60, e%60)
			assert.InDelta(t, float64(e-s)/60, DurationHours(start, end), 0.005, "%s-%s", start, end)
		}
	}
}

func TestDurationHours_Overnight(t *testing.T) {
	assert.Equal(t, 3.0, DurationHours("22:00", "01:00"))
	assert.Equal(t, 24.0, DurationHours("08:00", "08:00"))
	assert.Equal(t, 0.5, DurationHours("23:45", "00:15"))
}

func TestDurationHours_NotCommutative(t *testing.T) {
	assert.NotEqual(t, DurationHours("08:00", "10:00"), DurationHours("10:00", "08:00"))
}

func TestDurationHours_InvalidInput(t *testing.T) {
	assert.Equal(t, 0.0, DurationHours("", "10:00"))
	assert.Equal(t, 0.0, DurationHours("08:00", "x"))
}

func TestDurationHours_Rounded(t *testing.T) {
	assert.Equal(t, 0.33, DurationHours("08:00", "08:20"))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "09/03/2025", FormatDisplayDate("2025-03-09"))
	assert.Equal(t, "bad", FormatDisplayDate("bad"))
}
