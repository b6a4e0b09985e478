package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageChecksum(t *testing.T) {
	tests := []struct {
		name     string
		page     []byte
		expected uint16
	}{
		{
			name:     "empty page",
			page:     []byte{},
			expected: 0x0000,
		},
		{
			name:     "single byte",
			page:     []byte{0x41},
			expected: 0x58E5,
		},
		{
			name:     "check value",
			page:     []byte("123456789"),
			expected: 0x31C3, // CRC-16/XMODEM check value
		},
		{
			name:     "all zeros",
			page:     make([]byte, 8),
			expected: 0x0000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageChecksum(tt.page))
		})
	}
}
