//go:build unit

package calendar_test

import (
	"testing"

	"appointment-scheduler/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	testCases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:00", want: 480},
		{in: "9:05", want: 545},
		{in: "12:30", want: 750},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "1230", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := calendar.TimeToMinutes(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, calendar.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, calendar.Slot("00:00"), calendar.MinutesToTime(0))
	assert.Equal(t, calendar.Slot("08:05"), calendar.MinutesToTime(485))
	assert.Equal(t, calendar.Slot("23:59"), calendar.MinutesToTime(1439))
}

func TestTimeRoundTrip(t *testing.T) {
	for m := 0; m < calendar.MinutesPerDay; m++ {
		s := calendar.MinutesToTime(m)
		back, err := calendar.TimeToMinutes(string(s))
		require.NoError(t, err)
		require.Equal(t, m, back, "slot %s", s)
		require.Equal(t, s, calendar.MinutesToTime(back))
	}
}
