package uf2

// Firmware represents a complete parsed .uf2 firmware file.
type Firmware struct {
	// FamilyID is the device family id reported by the first block,
	// or zero if the file does not carry one
	FamilyID uint32

	// Blocks contains all flash blocks in file order
	Blocks []*Block
}

// Block represents a single 512-byte UF2 block.
type Block struct {
	// Flags is the block flag word (see Flag* constants)
	Flags uint32

	// TargetAddr is the flash address the payload is written to
	TargetAddr uint32

	// PayloadSize is the number of meaningful data bytes
	PayloadSize uint32

	// BlockNo is the sequence number of this block, starting at zero
	BlockNo uint32

	// NumBlocks is the total number of blocks in the file
	NumBlocks uint32

	// FileSize is the total file size, or the device family id when
	// FlagFamilyIDPresent is set
	FileSize uint32

	// Data is the block payload (PayloadSize bytes)
	Data []byte
}

// FamilyID returns the device family id carried by the block and
// whether one is present.
func (b *Block) FamilyID() (uint32, bool) {
	if b.Flags&FlagFamilyIDPresent != 0 {
		return b.FileSize, true
	}
	return 0, false
}

// NotMainFlash reports whether the block is flagged to be skipped
// when writing to flash.
func (b *Block) NotMainFlash() bool {
	return b.Flags&FlagNotMainFlash != 0
}
