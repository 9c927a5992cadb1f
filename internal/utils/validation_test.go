package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDateString(t *testing.T) {
	assert.True(t, ValidDateString("2024-06-15"))
	assert.False(t, ValidDateString("2024-6-15"))
	assert.False(t, ValidDateString("15-06-2024"))
	assert.False(t, ValidDateString("2024-13-01"))
	assert.False(t, ValidDateString(""))
}

func TestValidClockString(t *testing.T) {
	assert.True(t, ValidClockString("09:00"))
	assert.True(t, ValidClockString("14:30"))
	assert.True(t, ValidClockString("00:00"))
	assert.False(t, ValidClockString("24:00"))
	assert.False(t, ValidClockString("10am"))
	assert.False(t, ValidClockString(""))

	// Stored times are ordered lexically, so the non-padded form must
	// be rejected even though it parses.
	assert.False(t, ValidClockString("9:00"))
	assert.False(t, ValidClockString("9:5"))
}
