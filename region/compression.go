package region

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/minescan/headscan/debug"
)

// CompressionTag is the 1-byte compression scheme id stored in a chunk
// header. The values are format constants of the region container.
type CompressionTag uint8

const (
	CompressionGZip CompressionTag = 1
	CompressionZlib CompressionTag = 2
	CompressionNone CompressionTag = 3
)

func (t CompressionTag) String() string {
	switch t {
	case CompressionGZip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// decompress expands a chunk payload according to its compression tag.
// Any tag other than gzip or zlib returns the payload untouched: the
// container format treats unknown schemes as already-decoded bytes, and
// aborting the whole file over one odd tag would lose its other chunks.
func decompress(tag CompressionTag, payload []byte) ([]byte, error) {
	switch tag {
	case CompressionGZip:
		zr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		if tag != CompressionNone && debug.Region() {
			debug.Logf("region: passing through payload with compression tag %s", tag)
		}
		return payload, nil
	}
}
