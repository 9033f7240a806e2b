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
		{name: "valid morning time", value: "09:30", wantErr: false},
		{name: "valid midnight", value: "00:00", wantErr: false},
		{name: "valid end of day", value: "23:59", wantErr: false},
		{name: "missing leading zero", value: "9:30", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "10:60", wantErr: true},
		{name: "with seconds", value: "10:00:00", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
		{name: "garbage", value: "abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 630, TimeString("10:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("11:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), result)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_MinutesBetween(t *testing.T) {
	assert.Equal(t, 90, TimeString("10:00").MinutesBetween("11:30"))
	assert.Equal(t, -90, TimeString("11:30").MinutesBetween("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	got := TimeString("14:45").OnDate(date)

	assert.Equal(t, time.Date(2026, 6, 15, 14, 45, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres time колонки приходят как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(12345))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("07:00")
	require.NoError(t, err)
	assert.Equal(t, "07:00", ts.String())

	_, err = NewTimeStringFromString("7am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
