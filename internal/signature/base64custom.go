package signature

// xldAlphabet is the 64-character alphabet the XLD signature engine uses in
// place of standard base64's, with standard base64 bit-grouping and '='
// padding.
const xldAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz._"

var xldDecodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i, c := range []byte(xldAlphabet) {
		t[c] = int8(i)
	}
	return t
}

// EncodeCustomBase64 encodes data with the XLD alphabet and standard
// base64 grouping, then strips the trailing '=' padding.
func EncodeCustomBase64(data []byte) string {
	var out []byte

	for i := 0; i < len(data); i += 3 {
		chunk := data[i:min(i+3, len(data))]
		var b [3]byte
		copy(b[:], chunk)

		out = append(out,
			xldAlphabet[b[0]>>2],
			xldAlphabet[(b[0]&0x03)<<4|(b[1]>>4)],
		)

		switch len(chunk) {
		case 1:
			out = append(out, '=', '=')
		case 2:
			out = append(out, xldAlphabet[(b[1]&0x0F)<<2], '=')
		default:
			out = append(out,
				xldAlphabet[(b[1]&0x0F)<<2|(b[2]>>6)],
				xldAlphabet[b[2]&0x3F],
			)
		}
	}

	// The authenticity string never carries padding.
	for len(out) > 0 && out[len(out)-1] == '=' {
		out = out[:len(out)-1]
	}

	return string(out)
}

// DecodeCustomBase64 inverts EncodeCustomBase64, re-adding '=' padding as
// needed before decoding: decode(encode(B)) == B for any byte string B.
func DecodeCustomBase64(s string) ([]byte, error) {
	for len(s)%4 != 0 {
		s += "="
	}

	var out []byte
	for i := 0; i < len(s); i += 4 {
		group := s[i : i+4]

		n := 4
		for n > 0 && group[n-1] == '=' {
			n--
		}

		vals := [4]int8{}
		for j := 0; j < n; j++ {
			v := xldDecodeTable[group[j]]
			if v < 0 {
				return nil, errInvalidBase64(group[j])
			}
			vals[j] = v
		}

		b0 := byte(vals[0])<<2 | byte(vals[1])>>4
		out = append(out, b0)
		if n >= 3 {
			b1 := byte(vals[1])<<4 | byte(vals[2])>>2
			out = append(out, b1)
		}
		if n >= 4 {
			b2 := byte(vals[2])<<6 | byte(vals[3])
			out = append(out, b2)
		}
	}

	return out, nil
}

type errInvalidBase64 byte

func (e errInvalidBase64) Error() string {
	return "signature: invalid custom base64 byte " + string(rune(e))
}
