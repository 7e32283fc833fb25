package statline

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF-16 byte order marks.
var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewOutputReader wraps build tool output, transcoding UTF-16 to UTF-8 when
// a byte order mark is present. Some Windows build tools emit UTF-16, which
// otherwise reaches the retained-output path as NUL-riddled bytes. BOM-less
// input passes through unchanged, embedded NUL bytes included: the raw
// print paths stay byte-faithful.
func NewOutputReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil || (!bytes.Equal(head, bomUTF16LE) && !bytes.Equal(head, bomUTF16BE)) {
		return br
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	return transform.NewReader(br, dec)
}

// NormalizeOutput is NewOutputReader for byte slices already in memory.
func NormalizeOutput(data []byte) string {
	if !bytes.HasPrefix(data, bomUTF16LE) && !bytes.HasPrefix(data, bomUTF16BE) {
		return string(data)
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(dec, data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
