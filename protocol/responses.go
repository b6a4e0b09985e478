package protocol

import (
	"encoding/binary"
	"fmt"
)

// Status is the result code carried in the first status byte of a
// response.
//
// The HF2 spec fixes codes 0x00-0x02; all other values pass through
// the codec unchanged, so converting an arbitrary byte to a Status
// and back is always lossless.
type Status byte

// Status codes per the HF2 spec.
const (
	// StatusSuccess indicates the command was executed successfully
	StatusSuccess Status = 0x00

	// StatusUnknown indicates the command id was not known to the device
	StatusUnknown Status = 0x01

	// StatusError indicates an error occurred while executing the command
	StatusError Status = 0x02
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusUnknown:
		return "unknown command"
	case StatusError:
		return "execution error"
	default:
		return fmt.Sprintf("status 0x%02X", byte(s))
	}
}

// Ok reports whether the status indicates success.
func (s Status) Ok() bool {
	return s == StatusSuccess
}

// Response is a view of a reassembled device-to-host command buffer.
//
// Buffer structure:
//
//	bytes 0-1: tag (little-endian, echoes the request tag)
//	byte 2:    status
//	byte 3:    status info (command-specific)
//	bytes 4..: command-specific data
//
// Data aliases the buffer passed to ParseResponse; the view performs
// no copy and remains valid only as long as that buffer.
type Response struct {
	// Tag echoes the correlation id of the request that triggered
	// this response
	Tag uint16

	// Status is the result code
	Status Status

	// StatusInfo is a command-specific auxiliary status code
	StatusInfo byte

	// Data is the command-specific payload
	Data []byte
}

// ParseResponse creates a response view over a reassembled command
// buffer. The buffer must be at least ResponseHeaderSize bytes.
func ParseResponse(buf []byte) (*Response, error) {
	if len(buf) < ResponseHeaderSize {
		return nil, fmt.Errorf("response too short: got %d bytes, header is %d", len(buf), ResponseHeaderSize)
	}

	return &Response{
		Tag:        binary.LittleEndian.Uint16(buf[0:2]),
		Status:     Status(buf[2]),
		StatusInfo: buf[3],
		Data:       buf[ResponseHeaderSize:],
	}, nil
}

// Size returns the exact encoded size of the response in bytes.
func (r *Response) Size() int {
	return ResponseHeaderSize + len(r.Data)
}

// EncodeResponse writes the response into dst.
//
// dst must be exactly Size() bytes, mirroring the strict sizing
// contract of EncodeRequest. Nothing is written on error.
func EncodeResponse(dst []byte, r *Response) error {
	if len(dst) != r.Size() {
		return fmt.Errorf("destination size mismatch: got %d bytes, response needs exactly %d", len(dst), r.Size())
	}

	binary.LittleEndian.PutUint16(dst[0:2], r.Tag)
	dst[2] = byte(r.Status)
	dst[3] = r.StatusInfo
	copy(dst[ResponseHeaderSize:], r.Data)

	return nil
}

// ParseBinInfo parses the data payload of a BinInfo response.
//
// Data format (BinInfoSize or BinInfoFamilySize bytes, all fields
// little-endian uint32):
//
//	[MODE][FLASH_PAGE_SIZE][FLASH_NUM_PAGES][MAX_MESSAGE_SIZE][FAMILY_ID?]
//
// The family id field is optional; FamilyID is zero when the device
// omits it.
func ParseBinInfo(data []byte) (*BinInfo, error) {
	if len(data) != BinInfoSize && len(data) != BinInfoFamilySize {
		return nil, fmt.Errorf("invalid data length for bin info response: got %d bytes, expected %d or %d",
			len(data), BinInfoSize, BinInfoFamilySize)
	}

	info := &BinInfo{
		Mode:           Mode(binary.LittleEndian.Uint32(data[0:4])),
		FlashPageSize:  binary.LittleEndian.Uint32(data[4:8]),
		FlashNumPages:  binary.LittleEndian.Uint32(data[8:12]),
		MaxMessageSize: binary.LittleEndian.Uint32(data[12:16]),
	}

	if len(data) == BinInfoFamilySize {
		info.FamilyID = binary.LittleEndian.Uint32(data[16:20])
	}

	return info, nil
}

// ParseChecksums parses the data payload of a ChecksumPages response:
// one little-endian uint16 checksum per requested page.
func ParseChecksums(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("invalid data length for checksum pages response: got %d bytes, expected a multiple of 2", len(data))
	}

	sums := make([]uint16, len(data)/2)
	for i := range sums {
		sums[i] = binary.LittleEndian.Uint16(data[2*i : 2*i+2])
	}

	return sums, nil
}
