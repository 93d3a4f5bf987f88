package cambia

import "fmt"

// Quartet distinguishes "set to No" from "not mentioned" for every on/off
// header setting a ripper log may or may not report.
type Quartet int

const (
	QuartetUnknown Quartet = iota
	QuartetTrue
	QuartetFalse
	QuartetUnsupported
)

func (q Quartet) String() string {
	switch q {
	case QuartetTrue:
		return "True"
	case QuartetFalse:
		return "False"
	case QuartetUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// MarshalJSON serializes Quartet as its bare variant name.
func (q Quartet) MarshalJSON() ([]byte, error) {
	return quoted(q.String()), nil
}

// RipperTag identifies the ripping tool that produced a log.
type RipperTag int

const (
	RipperOther RipperTag = iota
	RipperEAC
	RipperXLD
	RipperWhipper
	RipperCueRipper
	RipperDBpoweramp
	RipperCyanRip
	RipperEZCD
	RipperMorituri
	RipperRip
	RipperFreAc
)

func (r RipperTag) String() string {
	switch r {
	case RipperEAC:
		return "EAC"
	case RipperXLD:
		return "XLD"
	case RipperWhipper:
		return "Whipper"
	case RipperCueRipper:
		return "CueRipper"
	case RipperDBpoweramp:
		return "dBpoweramp"
	case RipperCyanRip:
		return "CyanRip"
	case RipperEZCD:
		return "EZ CD"
	case RipperMorituri:
		return "morituri"
	case RipperRip:
		return "Rip"
	case RipperFreAc:
		return "fre:ac"
	default:
		return "Other"
	}
}

func (r RipperTag) MarshalJSON() ([]byte, error) {
	return quoted(r.String()), nil
}

// MediaType is the physical medium a disc was read from.
type MediaType int

const (
	MediaUnknown MediaType = iota
	MediaPressed
	MediaCDR
	MediaOther
)

func (m MediaType) String() string {
	switch m {
	case MediaPressed:
		return "Pressed"
	case MediaCDR:
		return "CD-R"
	case MediaOther:
		return "Other"
	default:
		return "Unknown"
	}
}

func (m MediaType) MarshalJSON() ([]byte, error) {
	return quoted(m.String()), nil
}

// ReadMode is the ripper's error-tolerance strategy.
type ReadMode int

const (
	ReadModeUnknown ReadMode = iota
	ReadModeSecure
	ReadModeParanoid
	ReadModeFast
	ReadModeBurst
)

func (m ReadMode) String() string {
	switch m {
	case ReadModeSecure:
		return "Secure"
	case ReadModeParanoid:
		return "Paranoid"
	case ReadModeFast:
		return "Fast"
	case ReadModeBurst:
		return "Burst"
	default:
		return "Unknown"
	}
}

func (m ReadMode) MarshalJSON() ([]byte, error) {
	return quoted(m.String()), nil
}

// Gap is the pre-gap handling strategy reported by the ripper.
type Gap int

const (
	GapUnknown Gap = iota
	GapAppend
	GapAppendNoHtoa
	GapAppendUndetected
	GapPrepend
	GapDiscard
	GapInapplicable
)

func (g Gap) String() string {
	switch g {
	case GapAppend:
		return "Append"
	case GapAppendNoHtoa:
		return "AppendNoHtoa"
	case GapAppendUndetected:
		return "AppendUndetected"
	case GapPrepend:
		return "Prepend"
	case GapDiscard:
		return "Discard"
	case GapInapplicable:
		return "Inapplicable"
	default:
		return "Unknown"
	}
}

func (g Gap) MarshalJSON() ([]byte, error) {
	return quoted(g.String()), nil
}

// Integrity is the verdict for a hash/signature comparison.
type Integrity int

const (
	IntegrityUnknown Integrity = iota
	IntegrityMatch
	IntegrityMismatch
)

func (i Integrity) String() string {
	switch i {
	case IntegrityMatch:
		return "Match"
	case IntegrityMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

func (i Integrity) MarshalJSON() ([]byte, error) {
	return quoted(i.String()), nil
}

func quoted(s string) []byte {
	return []byte(fmt.Sprintf("%q", s))
}
