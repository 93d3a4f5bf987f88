// Package extractor defines the capability set the dispatcher drives to turn
// one sub-log into a cambia.ParsedLog: header fields, TOC, tracks, the
// checksum verdict, and translation. Each ripper variant implements Set
// independently; there is no shared base behavior across variants.
package extractor

import "github.com/cambia-project/cambia-go/pkg/cambia"

// Header is every field extracted once per sub-log, outside of the TOC and
// track list.
type Header struct {
	RipperVersion    string
	Language         string
	ReleaseInfo      cambia.ReleaseInfo
	Drive            string
	MediaType        cambia.MediaType
	ReadMode         cambia.ReadMode
	AccurateStream   cambia.Quartet
	DefeatAudioCache cambia.Quartet
	UseC2            cambia.Quartet
	UseNullSamples   cambia.Quartet
	TestAndCopy      cambia.Quartet
	ReadOffset       *int16
	GapHandling      cambia.Gap
	AudioEncoder     []string
}

// Set is the capability set a ripper variant implements: header fields, the
// TOC, the track list, the checksum verdict, and translation. dispatch.Select
// returns the Set appropriate for a detected cambia.RipperTag.
type Set interface {
	// Translate returns the language label and the canonicalized log text.
	// For an English-only variant this is the identity map.
	Translate(raw string) (language, canonical string)

	// ExtractHeader reads every header field from the canonicalized log.
	ExtractHeader(canonical string) Header

	// ExtractToc reads the table-of-contents rows from the canonicalized log.
	ExtractToc(canonical string) cambia.Toc

	// ExtractTracks splits the canonicalized log into track segments and
	// extracts every per-track field.
	ExtractTracks(canonical string) []cambia.TrackEntry

	// ExtractChecksum computes and verifies the authenticity signature
	// against the raw, untranslated log text.
	ExtractChecksum(raw string) cambia.Checksum
}
