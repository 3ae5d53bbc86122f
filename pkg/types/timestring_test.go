package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"", "9:30", "09:60", "24:00", "0930", "ab:cd", "09:30:00"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "value %q must be rejected", invalid)
		assert.True(t, errors.Is(err, ErrInvalidFormat))
	}
}

func TestTimeStringMinutesRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 359, 360, 720, 1319, 1439} {
		ts, err := NewTimeStringFromMinutes(m)
		require.NoError(t, err)

		back, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}

	_, err := NewTimeStringFromMinutes(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = NewTimeStringFromMinutes(MinutesPerDay)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)

	// Выход за пределы суток - ошибка
	_, err = TimeString("23:30").AddMinutes(60)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestNewTimeStringFromTime(t *testing.T) {
	moment := time.Date(2025, 9, 1, 7, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("07:05"), NewTimeString(moment))
}

func TestTimeStringIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
