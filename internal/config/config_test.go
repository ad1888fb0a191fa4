package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock_Valid(t *testing.T) {
	tests := []struct {
		value   string
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.value)
		assert.NoError(t, err, tt.value)
		assert.Equal(t, tt.minutes, got, tt.value)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	invalid := []string{"", "930", "24:00", "09:60", "9:3:0", "ab:cd"}

	for _, value := range invalid {
		_, err := ParseClock(value)
		assert.Error(t, err, value)
	}
}
