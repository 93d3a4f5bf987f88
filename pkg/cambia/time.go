package cambia

import (
	"fmt"
	"strconv"
	"strings"
)

// framesPerSecond is the CD-DA sector rate (75 sectors/frames per second of audio).
const framesPerSecond = 75.0

// Time is a non-negative duration held internally as float64 seconds and
// exposed as fractional seconds, matching how XLD-family logs print
// timestamps in either "mm:ss.ff" (CD frames) or "mm:ss:cs" (centiseconds) form.
type Time struct {
	seconds float64
}

// ZeroTime is the additive identity.
var ZeroTime = Time{}

// Seconds returns the duration as fractional seconds.
func (t Time) Seconds() float64 {
	return t.seconds
}

// MarshalJSON serializes Time as fractional seconds, per the response contract.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(t.seconds, 'f', -1, 64)), nil
}

// FromSeconds builds a Time directly from a count of seconds.
func FromSeconds(s float64) Time {
	return Time{seconds: s}
}

// ParseMMSSFrames parses the "m:ss.ff" form used by TOC rows, where ff is a
// count of CD frames (0-74) rather than centiseconds.
func ParseMMSSFrames(raw string) (Time, error) {
	minutes, seconds, frac, err := splitTimeParts(raw, '.')
	if err != nil {
		return ZeroTime, err
	}
	return Time{seconds: float64(minutes)*60 + float64(seconds) + float64(frac)/framesPerSecond}, nil
}

// ParseMMSSCentiseconds parses the "mm:ss:cs" form used by pre-gap lengths and
// error-position lists, where cs is already in hundredths of a second.
func ParseMMSSCentiseconds(raw string) (Time, error) {
	minutes, seconds, frac, err := splitTimeParts(raw, ':')
	if err != nil {
		return ZeroTime, err
	}
	return Time{seconds: float64(minutes)*60 + float64(seconds) + float64(frac)/100}, nil
}

// splitTimeParts parses "mm<sep>ss<finalSep>ff" where finalSep is either '.' or ':'
// and returns the three integer components.
func splitTimeParts(raw string, finalSep byte) (minutes, seconds, frac int, err error) {
	raw = strings.TrimSpace(raw)

	firstColon := strings.IndexByte(raw, ':')
	if firstColon < 0 {
		return 0, 0, 0, fmt.Errorf("cambia: malformed time %q", raw)
	}

	rest := raw[firstColon+1:]
	sepIdx := strings.IndexByte(rest, finalSep)
	if sepIdx < 0 {
		return 0, 0, 0, fmt.Errorf("cambia: malformed time %q", raw)
	}

	minutes, err = strconv.Atoi(raw[:firstColon])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cambia: malformed time %q: %w", raw, err)
	}
	seconds, err = strconv.Atoi(rest[:sepIdx])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cambia: malformed time %q: %w", raw, err)
	}
	frac, err = strconv.Atoi(rest[sepIdx+1:])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cambia: malformed time %q: %w", raw, err)
	}

	return minutes, seconds, frac, nil
}
