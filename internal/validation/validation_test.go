package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("612345678"))
	assert.True(t, IsPhone("+34 612 345 678"))
	assert.True(t, IsPhone("(555) 123-4567"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("call me maybe"))
	assert.False(t, IsPhone(""))
}

func TestNormalizeDate(t *testing.T) {
	d, err := NormalizeDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", d)

	d, err = NormalizeDate("2025-03-14T19:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", d)

	_, err = NormalizeDate("14/03/2025")
	assert.Error(t, err)
}

func TestNormalizeSlot(t *testing.T) {
	s, err := NormalizeSlot("9:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", s)

	s, err = NormalizeSlot("19:00")
	require.NoError(t, err)
	assert.Equal(t, "19:00", s)

	_, err = NormalizeSlot("25:00")
	assert.Error(t, err)
}

func TestCustomTags(t *testing.T) {
	type booking struct {
		Phone string `validate:"required,phone"`
		Date  string `validate:"required,isodate"`
		Time  string `validate:"required,timeslot"`
	}
	v := New()

	assert.NoError(t, v.Struct(booking{Phone: "612345678", Date: "2025-01-02", Time: "12:00"}))

	err := v.Struct(booking{Phone: "12", Date: "tomorrow", Time: "noon"})
	require.Error(t, err)
	msg := Message(err)
	assert.Contains(t, msg, "phone must be a valid phone number")
	assert.Contains(t, msg, "date must be a date (YYYY-MM-DD)")
	assert.Contains(t, msg, "time must be a time (HH:MM)")
}

func TestRegisterGinIsIdempotent(t *testing.T) {
	require.NoError(t, RegisterGin())
	require.NoError(t, RegisterGin())
}
