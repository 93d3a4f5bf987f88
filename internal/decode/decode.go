// Package decode turns the raw bytes of a ripper log into text plus an
// encoding label, transparently un-gzipping archived logs first.
package decode

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// gzipMagic is the two-byte RFC 1952 header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// Result is the decoder's output: decoded text plus the encoding label it
// was decoded from.
type Result struct {
	Text     string
	Encoding string
}

// Decode detects the charset of raw and decodes it to text. Gzip-compressed
// input is transparently inflated first. Detection order: UTF-8 with BOM,
// UTF-16 LE then BE (by BOM, or by zero bytes when there is none), UTF-8
// without BOM, Windows-1252, Shift-JIS; on failure it falls back to lossy
// UTF-8 with encoding label "unknown".
func Decode(raw []byte) Result {
	raw = maybeGunzip(raw)

	if text, ok := decodeUTF8BOM(raw); ok {
		return Result{Text: text, Encoding: "UTF-8 (BOM)"}
	}
	if text, ok := decodeUTF16(raw, unicode.LittleEndian); ok {
		return Result{Text: text, Encoding: "UTF-16LE"}
	}
	if text, ok := decodeUTF16(raw, unicode.BigEndian); ok {
		return Result{Text: text, Encoding: "UTF-16BE"}
	}
	if isValidUTF8(raw) {
		return Result{Text: string(raw), Encoding: "UTF-8"}
	}
	if !hasUndefinedWindows1252Byte(raw) {
		if text, ok := decodeWith(raw, charmap.Windows1252); ok {
			return Result{Text: text, Encoding: "Windows-1252"}
		}
	}
	if text, ok := decodeWith(raw, japanese.ShiftJIS); ok {
		return Result{Text: text, Encoding: "Shift-JIS"}
	}

	return Result{Text: lossyUTF8(raw), Encoding: "unknown"}
}

// maybeGunzip inflates raw if it starts with the gzip magic, returning raw
// unchanged (and ignoring any error) otherwise. A log that merely looks
// gzip-like but fails to inflate is passed through for charset detection to
// fail more informatively than a silent decompression error would.
func maybeGunzip(raw []byte) []byte {
	if len(raw) < 2 || raw[0] != gzipMagic[0] || raw[1] != gzipMagic[1] {
		return raw
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return raw
	}
	defer zr.Close()

	inflated, err := io.ReadAll(zr)
	if err != nil || len(inflated) == 0 {
		return raw
	}

	return inflated
}

func decodeUTF8BOM(raw []byte) (string, bool) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(raw) >= 3 && bytes.Equal(raw[:3], bom) {
		return string(raw[3:]), true
	}
	return "", false
}

func decodeUTF16(raw []byte, endian unicode.Endianness) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}

	bomPolicy := unicode.ExpectBOM
	if endian == unicode.LittleEndian && !(raw[0] == 0xFF && raw[1] == 0xFE) {
		bomPolicy = unicode.IgnoreBOM
	}
	if endian == unicode.BigEndian && !(raw[0] == 0xFE && raw[1] == 0xFF) {
		bomPolicy = unicode.IgnoreBOM
	}
	if bomPolicy == unicode.IgnoreBOM {
		// Without a BOM we only trust UTF-16 when it looks plausible: CD
		// ripper logs are ASCII-heavy, so every other byte should be zero.
		if !looksLikeUTF16(raw, endian) {
			return "", false
		}
	}

	enc := unicode.UTF16(endian, bomPolicy)
	return decodeWith(raw, enc)
}

func looksLikeUTF16(raw []byte, endian unicode.Endianness) bool {
	zeroIdx := 1
	if endian == unicode.BigEndian {
		zeroIdx = 0
	}

	n := len(raw) - (len(raw) % 2)
	if n < 16 {
		return false
	}

	zeros := 0
	pairs := n / 2
	for i := 0; i < pairs; i++ {
		if raw[i*2+zeroIdx] == 0 {
			zeros++
		}
	}
	return zeros*2 >= pairs // at least half the high/low bytes are zero
}

// decodeWith decodes raw with enc, treating any replacement rune in the
// output as a detection failure: x/text decoders substitute U+FFFD for bytes
// the charset leaves undefined rather than erroring, so its presence is the
// signal that raw was not in this encoding.
func decodeWith(raw []byte, enc encoding.Encoding) (string, bool) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

// hasUndefinedWindows1252Byte reports whether raw holds any of the five bytes
// Windows-1252 leaves undefined; such input is never taken as Windows-1252.
func hasUndefinedWindows1252Byte(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return true
		}
	}
	return false
}

func isValidUTF8(raw []byte) bool {
	return utf8.Valid(raw)
}

func lossyUTF8(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}
