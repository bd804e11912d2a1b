package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusPayMultiplier(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusAbsent, "0"},
		{StatusPresent, "1"},
		{StatusOvertime4, "1.5"},
		{StatusOvertime8, "2"},
		{Status("bogus"), "0"},
	}
	for _, c := range cases {
		want, _ := decimal.NewFromString(c.want)
		assert.True(t, c.status.PayMultiplier().Equal(want),
			"PayMultiplier(%s) = %s, want %s", c.status, c.status.PayMultiplier(), c.want)
	}
}

func TestStatusOTHours(t *testing.T) {
	assert.Equal(t, 0, StatusAbsent.OTHours())
	assert.Equal(t, 0, StatusPresent.OTHours())
	assert.Equal(t, 4, StatusOvertime4.OTHours())
	assert.Equal(t, 8, StatusOvertime8.OTHours())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusAbsent, StatusPresent, StatusOvertime4, StatusOvertime8} {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}
	assert.False(t, Status("half-day").IsValid())
	assert.False(t, Status("").IsValid())
}
