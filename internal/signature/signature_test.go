package signature

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestSum256StandardMatchesCryptoSHA256(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"XLD extraction logfile from 2024-01-01 12:00:00\n\nUsed drive : FOO\n",
	}

	for _, in := range inputs {
		got := Sum256Standard([]byte(in))
		want := sha256.Sum256([]byte(in))
		if got != want {
			t.Errorf("Sum256Standard(%q) = %x, want %x", in, got, want)
		}
	}
}

func TestSum256CustomDiffersFromStandard(t *testing.T) {
	in := []byte("some log body")
	custom := Sum256Custom(in)
	standard := Sum256Standard(in)
	if custom == standard {
		t.Fatalf("custom IV digest should not equal standard IV digest")
	}
}

func TestSum256CustomDeterministic(t *testing.T) {
	in := []byte("deterministic input")
	a := Sum256Custom(in)
	b := Sum256Custom(in)
	if a != b {
		t.Fatalf("Sum256Custom is not deterministic: %x != %x", a, b)
	}
}

func TestScrambleRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("exactly64bytesxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"),
		bytes.Repeat([]byte{0x42}, 200),
	}

	for _, c := range cases {
		scrambled := Scramble(c)
		if len(scrambled) != len(c) {
			t.Fatalf("Scramble changed length: %d -> %d", len(c), len(scrambled))
		}
		back := Unscramble(scrambled)
		if !bytes.Equal(back, c) {
			t.Errorf("Unscramble(Scramble(%x)) = %x, want %x", c, back, c)
		}
	}
}

func TestCustomBase64RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
		bytes.Repeat([]byte{0xAB, 0xCD, 0xEF}, 37),
	}

	for _, c := range cases {
		encoded := EncodeCustomBase64(c)
		decoded, err := DecodeCustomBase64(encoded)
		if err != nil {
			t.Fatalf("DecodeCustomBase64(%q) error: %v", encoded, err)
		}
		if !bytes.Equal(decoded, c) {
			t.Errorf("round trip mismatch: got %x, want %x (via %q)", decoded, c, encoded)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	body := "XLD extraction logfile from 2024-01-01\n\nUsed drive : FOO\n"
	if Compute(body) != Compute(body) {
		t.Fatalf("Compute is not deterministic")
	}
}

func TestStripRemovesSignatureBlock(t *testing.T) {
	raw := "line one\nline two\n\n-----BEGIN XLD SIGNATURE-----\nAbCdEf123\n-----END XLD SIGNATURE-----"
	ext := Strip(raw)
	if !ext.Found {
		t.Fatalf("expected signature block to be found")
	}
	if ext.Embedded != "AbCdEf123" {
		t.Errorf("Embedded = %q, want %q", ext.Embedded, "AbCdEf123")
	}
	if want := "line one\nline two\n"; ext.Stripped != want {
		t.Errorf("Stripped = %q, want %q", ext.Stripped, want)
	}
}

func TestStripKeepsTextAfterEndMarker(t *testing.T) {
	raw := "body\n\n-----BEGIN XLD SIGNATURE-----\nSIG\n-----END XLD SIGNATURE-----\n"
	ext := Strip(raw)
	if !ext.Found {
		t.Fatalf("expected signature block to be found")
	}
	// Only the block itself and its leading newline are removed; a trailing
	// newline after the END marker belongs to the body.
	if want := "body\n\n"; ext.Stripped != want {
		t.Errorf("Stripped = %q, want %q", ext.Stripped, want)
	}
}

func TestStripNoSignatureBlock(t *testing.T) {
	raw := "line one\nline two\n"
	ext := Strip(raw)
	if ext.Found {
		t.Fatalf("expected no signature block to be found")
	}
	if ext.Stripped != raw {
		t.Errorf("Stripped = %q, want unchanged %q", ext.Stripped, raw)
	}
}

func TestVerifyMatchAndMismatch(t *testing.T) {
	body := "some stripped body\n"
	calc := Compute(body)

	if got, ok := Verify(body, calc); !ok || got != calc {
		t.Errorf("Verify with correct signature: ok=%v got=%q want=%q", ok, got, calc)
	}
	if _, ok := Verify(body, "not-the-real-signature"); ok {
		t.Errorf("Verify should reject a tampered signature")
	}
}
