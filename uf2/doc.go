// Package uf2 provides parsing for UF2 firmware files.
//
// # UF2 File Format
//
// The UF2 format stores firmware as a sequence of self-describing
// 512-byte blocks, designed so that a file can be written to a device
// one block at a time in fixed-size transfers. It is the container
// format commonly flashed over HF2.
//
// Block format (all multi-byte fields little-endian):
//
//	bytes 0-3:    first magic word (0x0A324655, "UF2\n")
//	bytes 4-7:    second magic word (0x9E5D5157)
//	bytes 8-11:   flags
//	bytes 12-15:  target address in flash
//	bytes 16-19:  payload size (at most 476)
//	bytes 20-23:  block sequence number (starting at zero)
//	bytes 24-27:  total number of blocks
//	bytes 28-31:  file size, or family id when flagged
//	bytes 32-507: data area
//	bytes 508-511: final magic word (0x0AB16F30)
//
// # Usage
//
// Parse a .uf2 file from disk:
//
//	fw, err := uf2.Parse("firmware.uf2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, block := range fw.Blocks {
//	    if block.NotMainFlash() {
//	        continue
//	    }
//	    flash(block.TargetAddr, block.Data)
//	}
//
// ParseReader accepts any io.Reader for non-file sources. Structural
// validation (magics, payload bounds, sequence numbering, block
// count) happens during parsing; a file is either fully valid or
// rejected.
package uf2
