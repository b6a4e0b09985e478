// Package protocol implements the HF2 packet framing and command codec.
//
// HF2 is a request/response protocol between a host and an embedded
// device bootloader, carried over fixed-size transport frames of at
// most 64 bytes (typically USB HID reports).
//
// # Protocol Overview
//
// Each transport frame carries one packet:
//
//	byte 0:       bits 7-6 = kind tag, bits 5-0 = payload length L
//	bytes 1..1+L: payload
//
// The kind tag multiplexes four streams over one channel:
//
//	0x00 = command-inner  non-final fragment of a command buffer
//	0x40 = command-final  last fragment of a command buffer
//	0x80 = stdout         raw stdout stream bytes
//	0xC0 = stderr         raw stderr stream bytes
//
// Command-inner payloads followed by one command-final payload
// concatenate into a command buffer. Stdout and stderr payloads are
// raw stream data and are never reassembled.
//
// A reassembled command buffer is a Request (host to device) or a
// Response (device to host):
//
//	Request:  [CMD(4, LE)][TAG(2, LE)][RESERVED(2)][DATA...]
//	Response: [TAG(2, LE)][STATUS(1)][STATUS_INFO(1)][DATA...]
//
// The tag is a host-chosen correlation id echoed by the device.
//
// # Framing
//
// Use ParsePacket to view a received frame and EncodePacket to build
// one:
//
//	pkt, err := protocol.ParsePacket(frame)
//	if err != nil {
//	    return err
//	}
//	switch pkt.Kind() {
//	case protocol.KindStdOut:
//	    os.Stdout.Write(pkt.Data())
//	case protocol.KindCommandInner, protocol.KindCommandFinal:
//	    buf = append(buf, pkt.Data()...)
//	}
//
// Packets, requests and responses are zero-copy views: they alias the
// buffer they were parsed from and perform no allocation beyond the
// view struct itself.
//
// # Command Codec
//
// Encode destinations are strictly sized: the buffer must be exactly
// header size + data length, so callers precompute sizes with Size():
//
//	req := &protocol.Request{Command: protocol.CmdBinInfo, Tag: tag}
//	buf := make([]byte, req.Size())
//	if err := protocol.EncodeRequest(buf, req); err != nil {
//	    return err
//	}
//
// Decoding mirrors this:
//
//	resp, err := protocol.ParseResponse(buf)
//	if err != nil {
//	    return err
//	}
//	if !resp.Status.Ok() {
//	    return &protocol.CommandError{
//	        Command:    protocol.CmdBinInfo,
//	        Status:     resp.Status,
//	        StatusInfo: resp.StatusInfo,
//	    }
//	}
//	info, err := protocol.ParseBinInfo(resp.Data)
//
// # Extensibility
//
// Command ids 0x0001-0x0010 and status codes 0x00-0x02 are fixed by
// the spec; every other value is vendor-defined and passes through
// the codec unchanged. Unknown codes are values, not errors.
//
// # Scope
//
// This package performs no I/O. Sending and receiving frames,
// grouping command fragments into a buffer, and retry or timeout
// policy belong to the caller.
package protocol
