package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "09:00"},
		{name: "valid evening", value: "17:30"},
		{name: "missing leading zero", value: "9:00", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minutes out of range", value: "10:60", wantErr: true},
		{name: "garbage", value: "ab:cd", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeStringFromString(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Clock(t *testing.T) {
	hour, minute, err := TimeString("14:30").Clock()
	require.NoError(t, err)
	assert.Equal(t, 14, hour)
	assert.Equal(t, 30, minute)

	_, _, err = TimeString("25:00").Clock()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestDateString_Time(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	day, err := DateString("2025-06-10").Time(loc)
	require.NoError(t, err)
	assert.Equal(t, loc, day.Location())
	assert.Equal(t, 10, day.Day())
}

func TestDateString_Validate(t *testing.T) {
	_, err := NewDateStringFromString("2025-06-10")
	assert.NoError(t, err)

	for _, bad := range []string{"2025-6-10", "10-06-2025", "2025-02-30", "2025-13-01", ""} {
		_, err := NewDateStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateString, bad)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Equal(t, 30, DaysInMonth(2025, time.June))
}
