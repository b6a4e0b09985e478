package protocol

// Frame structure constants per the HF2 wire format.
const (
	// MaxFrameSize is the maximum transport frame size in bytes.
	// HF2 packets ride in fixed-size transport frames (e.g. 64-byte
	// USB HID reports).
	MaxFrameSize = 64

	// MaxPayloadSize is the maximum packet payload size in bytes:
	// one frame minus the header byte.
	MaxPayloadSize = MaxFrameSize - 1

	// RequestHeaderSize is the fixed request header size in bytes:
	// CMD(4) + TAG(2) + RESERVED(2)
	RequestHeaderSize = 8

	// ResponseHeaderSize is the fixed response header size in bytes:
	// TAG(2) + STATUS(1) + STATUS_INFO(1)
	ResponseHeaderSize = 4
)

// Header byte layout: bits 7-6 carry the packet kind tag, bits 5-0
// carry the payload length.
const (
	kindMask   = 0xC0
	lengthMask = 0x3F
)

// BinInfo response data sizes per the HF2 spec.
const (
	// BinInfoSize is the BinInfo response data size without the
	// optional family ID field (4 x uint32)
	BinInfoSize = 16

	// BinInfoFamilySize is the BinInfo response data size when the
	// device also reports its family ID (5 x uint32)
	BinInfoFamilySize = 20
)
