package pix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pixkit/pkg/pix"
)

func TestCRC16(t *testing.T) {
	t.Parallel()

	// Standard check value for CRC-16/CCITT-FALSE.
	assert.Equal(t, uint16(0x29B1), pix.CRC16([]byte("123456789")))
	assert.Equal(t, uint16(0xFFFF), pix.CRC16(nil))
}
