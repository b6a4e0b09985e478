package uf2

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Constants for UF2 file format parsing.
const (
	// BlockSize is the fixed size of every UF2 block in bytes
	BlockSize = 512

	// MaxPayloadSize is the size of the data area within a block
	MaxPayloadSize = 476

	// MagicStart0 is the first magic word ("UF2\n")
	MagicStart0 = 0x0A324655

	// MagicStart1 is the second magic word
	MagicStart1 = 0x9E5D5157

	// MagicEnd is the final magic word
	MagicEnd = 0x0AB16F30
)

// Block flag bits per the UF2 spec.
const (
	// FlagNotMainFlash marks a block to be skipped when flashing
	FlagNotMainFlash = 0x00000001

	// FlagFileContainer marks a block holding file data rather than flash data
	FlagFileContainer = 0x00001000

	// FlagFamilyIDPresent indicates the FileSize field holds a family id
	FlagFamilyIDPresent = 0x00002000

	// FlagMD5Present indicates the data area ends with an MD5 checksum record
	FlagMD5Present = 0x00004000

	// FlagExtensionTags indicates the data area carries extension tags
	FlagExtensionTags = 0x00008000
)

// Parse parses a .uf2 file from the given file path.
// Returns the complete firmware structure or an error if parsing fails.
//
// Example:
//
//	fw, err := uf2.Parse("firmware.uf2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d blocks, family 0x%08X\n", len(fw.Blocks), fw.FamilyID)
func Parse(path string) (*Firmware, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a .uf2 file from any io.Reader.
// This is useful for testing and reading from non-file sources.
func ParseReader(r io.Reader) (*Firmware, error) {
	fw := &Firmware{}

	buf := make([]byte, BlockSize)
	for blockIdx := 0; ; blockIdx++ {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("block %d: truncated block", blockIdx)
		}
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", blockIdx, err)
		}

		block, err := ParseBlock(buf)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", blockIdx, err)
		}

		if block.BlockNo != uint32(blockIdx) {
			return nil, fmt.Errorf("block %d: sequence number mismatch: got %d", blockIdx, block.BlockNo)
		}
		if blockIdx > 0 && block.NumBlocks != fw.Blocks[0].NumBlocks {
			return nil, fmt.Errorf("block %d: block count mismatch: got %d, header says %d",
				blockIdx, block.NumBlocks, fw.Blocks[0].NumBlocks)
		}

		if blockIdx == 0 {
			if family, ok := block.FamilyID(); ok {
				fw.FamilyID = family
			}
		}

		fw.Blocks = append(fw.Blocks, block)
	}

	if len(fw.Blocks) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	if want := fw.Blocks[0].NumBlocks; uint32(len(fw.Blocks)) != want {
		return nil, fmt.Errorf("incomplete file: got %d blocks, header says %d", len(fw.Blocks), want)
	}

	return fw, nil
}

// ParseBlock parses a single 512-byte UF2 block.
//
// Block format (all multi-byte fields little-endian):
//
//	bytes 0-3:    first magic word (0x0A324655, "UF2\n")
//	bytes 4-7:    second magic word (0x9E5D5157)
//	bytes 8-11:   flags
//	bytes 12-15:  target address in flash
//	bytes 16-19:  payload size (at most 476)
//	bytes 20-23:  block sequence number
//	bytes 24-27:  total number of blocks
//	bytes 28-31:  file size or family id
//	bytes 32-507: data area
//	bytes 508-511: final magic word (0x0AB16F30)
//
// The payload is copied out of buf, so the block does not alias it.
func ParseBlock(buf []byte) (*Block, error) {
	if len(buf) != BlockSize {
		return nil, fmt.Errorf("invalid block size: got %d bytes, expected %d", len(buf), BlockSize)
	}

	if magic := binary.LittleEndian.Uint32(buf[0:4]); magic != MagicStart0 {
		return nil, fmt.Errorf("invalid first magic word: got 0x%08X, expected 0x%08X", magic, MagicStart0)
	}
	if magic := binary.LittleEndian.Uint32(buf[4:8]); magic != MagicStart1 {
		return nil, fmt.Errorf("invalid second magic word: got 0x%08X, expected 0x%08X", magic, MagicStart1)
	}
	if magic := binary.LittleEndian.Uint32(buf[508:512]); magic != MagicEnd {
		return nil, fmt.Errorf("invalid final magic word: got 0x%08X, expected 0x%08X", magic, MagicEnd)
	}

	block := &Block{
		Flags:       binary.LittleEndian.Uint32(buf[8:12]),
		TargetAddr:  binary.LittleEndian.Uint32(buf[12:16]),
		PayloadSize: binary.LittleEndian.Uint32(buf[16:20]),
		BlockNo:     binary.LittleEndian.Uint32(buf[20:24]),
		NumBlocks:   binary.LittleEndian.Uint32(buf[24:28]),
		FileSize:    binary.LittleEndian.Uint32(buf[28:32]),
	}

	if block.PayloadSize > MaxPayloadSize {
		return nil, fmt.Errorf("payload size %d exceeds maximum %d", block.PayloadSize, MaxPayloadSize)
	}
	if block.NumBlocks == 0 {
		return nil, fmt.Errorf("block count is zero")
	}
	if block.BlockNo >= block.NumBlocks {
		return nil, fmt.Errorf("sequence number %d out of range: file has %d blocks", block.BlockNo, block.NumBlocks)
	}

	block.Data = make([]byte, block.PayloadSize)
	copy(block.Data, buf[32:32+block.PayloadSize])

	return block, nil
}
