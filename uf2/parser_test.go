package uf2

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestBlock builds a valid 512-byte block for testing.
func buildTestBlock(flags, targetAddr, blockNo, numBlocks, fileSize uint32, data []byte) []byte {
	buf := make([]byte, BlockSize)
	binary.LittleEndian.PutUint32(buf[0:4], MagicStart0)
	binary.LittleEndian.PutUint32(buf[4:8], MagicStart1)
	binary.LittleEndian.PutUint32(buf[8:12], flags)
	binary.LittleEndian.PutUint32(buf[12:16], targetAddr)
	binary.LittleEndian.PutUint32(buf[16:20], uint32(len(data)))
	binary.LittleEndian.PutUint32(buf[20:24], blockNo)
	binary.LittleEndian.PutUint32(buf[24:28], numBlocks)
	binary.LittleEndian.PutUint32(buf[28:32], fileSize)
	copy(buf[32:], data)
	binary.LittleEndian.PutUint32(buf[508:512], MagicEnd)
	return buf
}

func TestParseBlock(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	buf := buildTestBlock(FlagFamilyIDPresent, 0x2000, 0, 2, 0x1F8BFF56, data)

	block, err := ParseBlock(buf)
	require.NoError(t, err)

	assert.Equal(t, uint32(FlagFamilyIDPresent), block.Flags)
	assert.Equal(t, uint32(0x2000), block.TargetAddr)
	assert.Equal(t, uint32(4), block.PayloadSize)
	assert.Equal(t, uint32(0), block.BlockNo)
	assert.Equal(t, uint32(2), block.NumBlocks)
	assert.Equal(t, data, block.Data)

	family, ok := block.FamilyID()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1F8BFF56), family)
	assert.False(t, block.NotMainFlash())
}

func TestParseBlockNoFamilyID(t *testing.T) {
	buf := buildTestBlock(0, 0x2000, 0, 1, 1024, []byte{0xAA})

	block, err := ParseBlock(buf)
	require.NoError(t, err)

	family, ok := block.FamilyID()
	assert.False(t, ok)
	assert.Zero(t, family)
	assert.Equal(t, uint32(1024), block.FileSize)
}

func TestParseBlockErrors(t *testing.T) {
	valid := buildTestBlock(0, 0, 0, 1, 0, []byte{0x01})

	corrupt := func(mutate func(buf []byte)) []byte {
		buf := make([]byte, len(valid))
		copy(buf, valid)
		mutate(buf)
		return buf
	}

	tests := []struct {
		name   string
		buf    []byte
		errMsg string
	}{
		{
			name:   "short buffer",
			buf:    valid[:BlockSize-1],
			errMsg: "invalid block size",
		},
		{
			name:   "long buffer",
			buf:    append(append([]byte{}, valid...), 0x00),
			errMsg: "invalid block size",
		},
		{
			name:   "bad first magic",
			buf:    corrupt(func(buf []byte) { buf[0] = 0xFF }),
			errMsg: "invalid first magic word",
		},
		{
			name:   "bad second magic",
			buf:    corrupt(func(buf []byte) { buf[4] = 0xFF }),
			errMsg: "invalid second magic word",
		},
		{
			name:   "bad final magic",
			buf:    corrupt(func(buf []byte) { buf[511] = 0xFF }),
			errMsg: "invalid final magic word",
		},
		{
			name: "payload too large",
			buf: corrupt(func(buf []byte) {
				binary.LittleEndian.PutUint32(buf[16:20], MaxPayloadSize+1)
			}),
			errMsg: "payload size",
		},
		{
			name: "zero block count",
			buf: corrupt(func(buf []byte) {
				binary.LittleEndian.PutUint32(buf[24:28], 0)
			}),
			errMsg: "block count is zero",
		},
		{
			name: "sequence number out of range",
			buf: corrupt(func(buf []byte) {
				binary.LittleEndian.PutUint32(buf[20:24], 1)
			}),
			errMsg: "sequence number 1 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlock(tt.buf)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseBlockCopiesData(t *testing.T) {
	buf := buildTestBlock(0, 0, 0, 1, 0, []byte{0x01, 0x02})

	block, err := ParseBlock(buf)
	require.NoError(t, err)

	buf[32] = 0xFF
	assert.Equal(t, []byte{0x01, 0x02}, block.Data)
}

func TestParseReader(t *testing.T) {
	var file bytes.Buffer
	file.Write(buildTestBlock(FlagFamilyIDPresent, 0x2000, 0, 3, 0xADA52840, []byte{0x01}))
	file.Write(buildTestBlock(FlagFamilyIDPresent, 0x2100, 1, 3, 0xADA52840, []byte{0x02}))
	file.Write(buildTestBlock(FlagFamilyIDPresent, 0x2200, 2, 3, 0xADA52840, []byte{0x03}))

	fw, err := ParseReader(&file)
	require.NoError(t, err)

	assert.Equal(t, uint32(0xADA52840), fw.FamilyID)
	require.Len(t, fw.Blocks, 3)
	assert.Equal(t, uint32(0x2100), fw.Blocks[1].TargetAddr)
	assert.Equal(t, []byte{0x03}, fw.Blocks[2].Data)
}

func TestParseReaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		file   func() *bytes.Buffer
		errMsg string
	}{
		{
			name:   "empty file",
			file:   func() *bytes.Buffer { return &bytes.Buffer{} },
			errMsg: "empty file",
		},
		{
			name: "truncated block",
			file: func() *bytes.Buffer {
				var b bytes.Buffer
				b.Write(buildTestBlock(0, 0, 0, 1, 0, nil)[:100])
				return &b
			},
			errMsg: "truncated block",
		},
		{
			name: "out of order blocks",
			file: func() *bytes.Buffer {
				var b bytes.Buffer
				b.Write(buildTestBlock(0, 0, 0, 2, 0, nil))
				b.Write(buildTestBlock(0, 0, 0, 2, 0, nil))
				return &b
			},
			errMsg: "sequence number mismatch",
		},
		{
			name: "block count mismatch",
			file: func() *bytes.Buffer {
				var b bytes.Buffer
				b.Write(buildTestBlock(0, 0, 0, 2, 0, nil))
				b.Write(buildTestBlock(0, 0, 1, 3, 0, nil))
				return &b
			},
			errMsg: "block count mismatch",
		},
		{
			name: "incomplete file",
			file: func() *bytes.Buffer {
				var b bytes.Buffer
				b.Write(buildTestBlock(0, 0, 0, 2, 0, nil))
				return &b
			},
			errMsg: "incomplete file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader(tt.file())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
