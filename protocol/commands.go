package protocol

import (
	"encoding/binary"
	"fmt"
)

// Command is an HF2 command identifier.
//
// The HF2 spec fixes codes 0x0001-0x0010; all other values are
// vendor-defined and pass through the codec unchanged, so converting
// an arbitrary uint32 to a Command and back is always lossless.
type Command uint32

// Command codes per the HF2 spec.
const (
	// CmdBinInfo queries bootloader mode, flash geometry and limits
	CmdBinInfo Command = 0x0001

	// CmdInfo reads an arbitrary device info string
	CmdInfo Command = 0x0002

	// CmdResetIntoApp resets the device into the user application
	CmdResetIntoApp Command = 0x0003

	// CmdResetIntoBootloader resets the device into bootloader mode
	CmdResetIntoBootloader Command = 0x0004

	// CmdStartFlash announces that a flashing sequence follows
	CmdStartFlash Command = 0x0005

	// CmdWriteFlashPage writes a single page of flash
	CmdWriteFlashPage Command = 0x0006

	// CmdChecksumPages computes checksums over a range of flash pages
	CmdChecksumPages Command = 0x0007

	// CmdReadWords reads a number of words from device memory
	CmdReadWords Command = 0x0008

	// CmdWriteWords writes a number of words to device memory
	CmdWriteWords Command = 0x0009

	// CmdDmesg reads the device debug log
	CmdDmesg Command = 0x0010
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdBinInfo:
		return "bin info"
	case CmdInfo:
		return "info"
	case CmdResetIntoApp:
		return "reset into app"
	case CmdResetIntoBootloader:
		return "reset into bootloader"
	case CmdStartFlash:
		return "start flash"
	case CmdWriteFlashPage:
		return "write flash page"
	case CmdChecksumPages:
		return "checksum pages"
	case CmdReadWords:
		return "read words"
	case CmdWriteWords:
		return "write words"
	case CmdDmesg:
		return "dmesg"
	default:
		return fmt.Sprintf("vendor command 0x%04X", uint32(c))
	}
}

// Request is a view of a reassembled host-to-device command buffer.
//
// Buffer structure:
//
//	bytes 0-3: command id (little-endian)
//	bytes 4-5: tag (little-endian)
//	bytes 6-7: reserved
//	bytes 8..: command-specific data
//
// Data aliases the buffer passed to ParseRequest; the view performs
// no copy and remains valid only as long as that buffer.
type Request struct {
	// Command is the command identifier
	Command Command

	// Tag is the host-chosen correlation id, echoed by the device
	// in the matching response
	Tag uint16

	// Reserved holds the two reserved header bytes. They carry no
	// semantics but round-trip through decode and encode.
	Reserved [2]byte

	// Data is the command-specific payload
	Data []byte
}

// ParseRequest creates a request view over a reassembled command
// buffer. The buffer must be at least RequestHeaderSize bytes.
func ParseRequest(buf []byte) (*Request, error) {
	if len(buf) < RequestHeaderSize {
		return nil, fmt.Errorf("request too short: got %d bytes, header is %d", len(buf), RequestHeaderSize)
	}

	return &Request{
		Command:  Command(binary.LittleEndian.Uint32(buf[0:4])),
		Tag:      binary.LittleEndian.Uint16(buf[4:6]),
		Reserved: [2]byte{buf[6], buf[7]},
		Data:     buf[RequestHeaderSize:],
	}, nil
}

// Size returns the exact encoded size of the request in bytes.
func (r *Request) Size() int {
	return RequestHeaderSize + len(r.Data)
}

// EncodeRequest writes the request into dst.
//
// dst must be exactly Size() bytes; callers size command buffers up
// front for the fixed-size transport, so a larger buffer indicates a
// sizing bug rather than spare capacity. Nothing is written on error.
func EncodeRequest(dst []byte, r *Request) error {
	if len(dst) != r.Size() {
		return fmt.Errorf("destination size mismatch: got %d bytes, request needs exactly %d", len(dst), r.Size())
	}

	binary.LittleEndian.PutUint32(dst[0:4], uint32(r.Command))
	binary.LittleEndian.PutUint16(dst[4:6], r.Tag)
	dst[6] = r.Reserved[0]
	dst[7] = r.Reserved[1]
	copy(dst[RequestHeaderSize:], r.Data)

	return nil
}
