package extract

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// dataReader returns a reader over the decoded bytes of a whole-file
// tag stream. Player data and level.dat are normally gzip-framed; the
// magic is sniffed so an uncompressed stream also decodes.
func dataReader(buf []byte) (io.Reader, error) {
	if len(buf) >= 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		return gzip.NewReader(bytes.NewReader(buf))
	}
	return bytes.NewReader(buf), nil
}
