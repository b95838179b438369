// Package region reads Minecraft region container files (.mca).
//
// A region file starts with a 4KB location table of 1024 big-endian
// words, one per chunk slot. Each nonzero word addresses a chunk
// record: bits 8-31 give a sector offset (sectors are 4096 bytes), the
// low 8 bits a sector count. The record itself is a 4-byte length, a
// 1-byte compression tag and length-1 payload bytes.
package region

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/minescan/headscan/debug"
)

const (
	slots      = 1024
	sectorSize = 4096
)

// Entry is one decoded slot of the location table.
type Entry struct {
	SectorOffset uint32
	// SectorCount is informational only; payload length comes from the
	// chunk record's own length word.
	SectorCount uint8
	Present     bool
}

// Chunk is one decompressed chunk payload, ready for tag decoding.
type Chunk struct {
	Slot        int
	Compression CompressionTag
	Data        []byte
}

// Decoder yields the occupied chunks of one region buffer in slot
// order. It holds no state beyond the next slot index; create a new
// Decoder over the same buffer to restart.
type Decoder struct {
	buf  []byte
	slot int
}

// NewDecoder returns a Decoder over buf. The buffer must at least hold
// the location table.
func NewDecoder(buf []byte) (*Decoder, error) {
	if len(buf) < slots*4 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a location table", ErrFrame, len(buf))
	}
	return &Decoder{buf: buf}, nil
}

// Entry decodes the location table slot i.
func (d *Decoder) Entry(i int) Entry {
	word := binary.BigEndian.Uint32(d.buf[4*i:])
	if word == 0 {
		return Entry{}
	}
	return Entry{
		SectorOffset: word >> 8,
		SectorCount:  uint8(word),
		Present:      true,
	}
}

// ReadChunk returns the next occupied chunk, decompressed. It returns
// io.EOF after the last slot. A framing error aborts the remaining
// slots of this decoder; chunks returned earlier stay valid.
func (d *Decoder) ReadChunk() (*Chunk, error) {
	for d.slot < slots {
		i := d.slot
		d.slot++
		entry := d.Entry(i)
		if !entry.Present {
			continue
		}
		chunk, err := d.readAt(i, entry)
		if err != nil {
			d.slot = slots
			return nil, err
		}
		if debug.Region() {
			debug.Logf("region: slot %d: %d bytes (%s, %d sectors)",
				i, len(chunk.Data), chunk.Compression, entry.SectorCount)
		}
		return chunk, nil
	}
	return nil, io.EOF
}

func (d *Decoder) readAt(slot int, entry Entry) (*Chunk, error) {
	off := int64(entry.SectorOffset) * sectorSize
	if off+5 > int64(len(d.buf)) {
		return nil, fmt.Errorf("%w: slot %d: sector offset %d out of bounds", ErrFrame, slot, entry.SectorOffset)
	}
	length := int64(binary.BigEndian.Uint32(d.buf[off:])) - 1
	if length < 0 {
		return nil, fmt.Errorf("%w: slot %d: impossible chunk length", ErrFrame, slot)
	}
	tag := CompressionTag(d.buf[off+4])
	if off+5+length > int64(len(d.buf)) {
		return nil, fmt.Errorf("%w: slot %d: chunk length %d runs past the buffer", ErrFrame, slot, length)
	}
	payload := d.buf[off+5 : off+5+length]
	data, err := decompress(tag, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: slot %d: %s payload: %v", ErrFrame, slot, tag, err)
	}
	return &Chunk{Slot: slot, Compression: tag, Data: data}, nil
}
