package protocol

import "fmt"

// PacketKind identifies the stream a packet belongs to.
// Stored in the top two bits of the packet header byte.
type PacketKind byte

// Packet kind tags per the HF2 spec.
const (
	// KindCommandInner is a non-final fragment of a command buffer
	KindCommandInner PacketKind = 0x00

	// KindCommandFinal is the last (or only) fragment of a command buffer
	KindCommandFinal PacketKind = 0x40

	// KindStdOut carries raw stdout stream bytes from the device
	KindStdOut PacketKind = 0x80

	// KindStdErr carries raw stderr stream bytes from the device
	KindStdErr PacketKind = 0xC0
)

// KindOf extracts the packet kind from a header byte.
// The mapping is total: masking the top two bits yields exactly one
// of the four kinds for any input.
func KindOf(header byte) PacketKind {
	return PacketKind(header & kindMask)
}

// String returns a human-readable name for the packet kind.
func (k PacketKind) String() string {
	switch k {
	case KindCommandInner:
		return "command-inner"
	case KindCommandFinal:
		return "command-final"
	case KindStdOut:
		return "stdout"
	case KindStdErr:
		return "stderr"
	default:
		return fmt.Sprintf("invalid kind 0x%02X", byte(k))
	}
}

// Packet is a view into a single transport frame. It does not own or
// copy the underlying buffer; it remains valid only as long as the
// frame bytes passed to ParsePacket.
//
// Frame structure:
//
//	byte 0:       bits 7-6 = kind tag, bits 5-0 = payload length L
//	bytes 1..1+L: payload
type Packet struct {
	buf []byte
}

// ParsePacket creates a packet view over one transport frame.
// The frame must be 1 to MaxFrameSize bytes long and must actually
// contain the payload its header byte declares. Trailing frame bytes
// beyond the declared payload (transport padding) are ignored.
func ParsePacket(frame []byte) (*Packet, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("empty frame")
	}
	if len(frame) > MaxFrameSize {
		return nil, fmt.Errorf("frame too long: got %d bytes, maximum is %d", len(frame), MaxFrameSize)
	}

	payloadLen := int(frame[0] & lengthMask)
	if payloadLen+1 > len(frame) {
		return nil, fmt.Errorf("truncated frame: header declares %d payload bytes, frame carries %d", payloadLen, len(frame)-1)
	}

	return &Packet{buf: frame[:payloadLen+1]}, nil
}

// Kind returns the packet kind from the header byte.
func (p *Packet) Kind() PacketKind {
	return KindOf(p.buf[0])
}

// Len returns the payload length of the packet, excluding the header
// byte. The total packet length on the wire is Len()+1.
func (p *Packet) Len() int {
	return int(p.buf[0] & lengthMask)
}

// Data returns the packet payload. The returned slice aliases the
// frame buffer passed to ParsePacket.
func (p *Packet) Data() []byte {
	return p.buf[1 : p.Len()+1]
}

// EncodePacket writes a packet for the given kind and payload into
// dst and returns the number of bytes written (len(payload)+1).
//
// The payload must fit in a single frame (at most MaxPayloadSize
// bytes) and dst must have room for the payload plus the header byte.
func EncodePacket(dst []byte, kind PacketKind, payload []byte) (int, error) {
	if len(payload) > MaxPayloadSize {
		return 0, fmt.Errorf("payload too long: got %d bytes, maximum is %d", len(payload), MaxPayloadSize)
	}
	if len(dst) < len(payload)+1 {
		return 0, fmt.Errorf("destination too short: got %d bytes, packet needs %d", len(dst), len(payload)+1)
	}

	dst[0] = byte(kind) | byte(len(payload))
	copy(dst[1:], payload)

	return len(payload) + 1, nil
}
