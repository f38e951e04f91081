package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "short form", in: "09:00", want: "09:00:00"},
		{name: "full form", in: "14:30:00", want: "14:30:00"},
		{name: "trims spaces", in: " 13:00 ", want: "13:00:00"},
		{name: "hour out of range", in: "25:00", wantErr: true},
		{name: "single digit hour", in: "9:00", wantErr: true},
		{name: "garbage", in: "noon", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Display12h(t *testing.T) {
	assert.Equal(t, "9:00 AM", TimeString("09:00:00").Display12h())
	assert.Equal(t, "12:00 PM", TimeString("12:00:00").Display12h())
	assert.Equal(t, "12:30 AM", TimeString("00:30:00").Display12h())
	assert.Equal(t, "3:15 PM", TimeString("15:15:00").Display12h())
}

func TestTimeString_Compare(t *testing.T) {
	nine := TimeString("09:00:00")
	ten := TimeString("10:00:00")

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.False(t, nine.IsBefore(nine))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("13:00:00.000000")))
	assert.Equal(t, TimeString("13:00:00"), ts)

	require.NoError(t, ts.Scan("15:00"))
	assert.Equal(t, TimeString("15:00:00"), ts)

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
