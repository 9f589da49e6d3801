package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how much of the input is inspected for BOMs and charset heuristics.
const sniffSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts a carrier statement to UTF-8 text.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Valid UTF-8 is returned as-is
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252, a superset of Latin-1
//
// UTF-8 validity is judged on the whole input, not the sniffed prefix, so a statement whose
// first accented name appears deep in the file is still decoded as a whole.
func Decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return string(data[len(bomUTF8):]), nil
	}

	sample := data
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}

	dec := decoderFor(sample, utf8.Valid(data))
	if dec == nil {
		return string(data), nil
	}

	out, _, err := transform.Bytes(dec.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode statement: %w", err)
	}

	return string(out), nil
}

// decoderFor picks the decoder for a sample. A nil result means the input is already UTF-8.
func decoderFor(sample []byte, validUTF8 bool) encoding.Encoding {
	if bytes.HasPrefix(sample, bomUTF16LE) {
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	}

	if bytes.HasPrefix(sample, bomUTF16BE) {
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	}

	if validUTF8 {
		return nil
	}

	// The input is known not to be UTF-8 here, so a "UTF-8" guess from an ASCII sample
	// falls through to Windows-1252.
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err == nil {
		switch result.Charset {
		case "ISO-8859-1", "windows-1252":
			return charmap.Windows1252
		case "ISO-8859-9":
			return charmap.ISO8859_9
		}
	}

	return charmap.Windows1252
}
