package protocol

import "fmt"

// Mode indicates which program is currently running on the device.
// Reported in the BinInfo response.
type Mode uint32

// Mode codes per the HF2 spec.
const (
	// ModeBootloader indicates the device is running its bootloader
	ModeBootloader Mode = 0x01

	// ModeUserSpace indicates the device is running the user application
	ModeUserSpace Mode = 0x02
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeBootloader:
		return "bootloader"
	case ModeUserSpace:
		return "user-space"
	default:
		return fmt.Sprintf("mode 0x%02X", uint32(m))
	}
}

// BinInfo contains bootloader mode and flash geometry information.
// Returned by the BinInfo command.
type BinInfo struct {
	// Mode is the currently running program
	Mode Mode

	// FlashPageSize is the flash page size in bytes.
	// WriteFlashPage payloads must be exactly this size.
	FlashPageSize uint32

	// FlashNumPages is the total number of flash pages
	FlashNumPages uint32

	// MaxMessageSize is the largest command buffer the device
	// accepts, including the request header
	MaxMessageSize uint32

	// FamilyID is the device family identifier, or zero if the
	// device does not report one
	FamilyID uint32
}
