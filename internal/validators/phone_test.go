package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"9841234567",
		"+9779841234567",
		"123456789",
		"123456789012345",
	}
	for _, phone := range valid {
		assert.True(t, IsPhoneValid(phone), phone)
	}

	invalid := []string{
		"",
		"12345678",          // too short
		"1234567890123456",  // too long
		"98-412-34567",      // separators
		"+977 9841234567",   // spaces
		"ninehundredmillion", // letters
	}
	for _, phone := range invalid {
		assert.False(t, IsPhoneValid(phone), phone)
	}
}
