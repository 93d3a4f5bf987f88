// Package xld implements extractor.Set for X Lossless Decoder logs: one
// compiled pattern per field, applied over the segmented log text.
package xld

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cambia-project/cambia-go/internal/extractor"
	"github.com/cambia-project/cambia-go/internal/segment"
	"github.com/cambia-project/cambia-go/internal/signature"
	"github.com/cambia-project/cambia-go/pkg/cambia"
)

var (
	ripperVersionRe = regexp.MustCompile(`X Lossless Decoder version (.+)`)
	releaseInfoRe   = regexp.MustCompile(`XLD extraction logfile from .+[\r\n]+(.+)`)
	usedDriveRe     = regexp.MustCompile(`Used drive\s*: (.+)`)
	mediaTypeRe     = regexp.MustCompile(`Media type\s*: (.+)`)

	readModeRe       = regexp.MustCompile(`Ripper mode\s*: (.+)`)
	readModeLegacyRe = regexp.MustCompile(`Use cdparanoia mode\s*: (.+)`)
	accurateStreamRe = regexp.MustCompile(`AccurateRip(?: v\d)? signature\s*: [0-9A-F]{8}`)

	defeatAudioCacheRe = regexp.MustCompile(`Disable audio cache\s*: (OK|YES|NO)`)
	useC2Re            = regexp.MustCompile(`Make use of C2 pointers\s*: (YES|NO)`)

	readOffsetRe  = regexp.MustCompile(`Read offset correction\s*: ([+-]?[0-9]+)`)
	gapHandlingRe = regexp.MustCompile(`Gap status\s*: (.+)`)

	testAndCopyHeaderRe = regexp.MustCompile(`CRC32 hash \(test run\)\s*: [0-9A-F]{8}`)

	filenameRe      = regexp.MustCompile(`(?i)Filename\s*:\s*(.+?\.(?:flac|wav|mp3|m4a|ape|tta|ogg))`)
	filenameMultiRe = regexp.MustCompile(`(?is)Filename\s*:\s*((?:.+?\.(?:flac|wav|mp3|m4a|ape|tta|ogg)(?:\r\n|\r|\n))+)`)
)

// Extractor implements extractor.Set for XLD logs.
type Extractor struct{}

// Translate is the identity map: XLD logs are English-only.
func (Extractor) Translate(raw string) (language, canonical string) {
	return "English", raw
}

// ExtractHeader reads every header field from the canonicalized log text.
func (Extractor) ExtractHeader(canonical string) extractor.Header {
	var h extractor.Header
	h.Language = "English"
	h.RipperVersion = extractRipperVersion(canonical)
	h.ReleaseInfo = extractReleaseInfo(canonical)
	h.Drive = extractDrive(canonical)
	h.MediaType = extractMediaType(canonical)
	h.ReadMode = extractReadMode(canonical)
	h.AccurateStream = boolToQuartet(accurateStreamRe.MatchString(canonical))
	h.DefeatAudioCache = matchBoolean(defeatAudioCacheRe, canonical)
	h.UseC2 = matchYesNo(useC2Re, canonical)
	h.UseNullSamples = cambia.QuartetTrue
	h.TestAndCopy = boolToQuartet(testAndCopyHeaderRe.MatchString(canonical))
	h.ReadOffset = extractReadOffset(canonical)
	h.GapHandling = extractGapHandling(canonical)
	h.AudioEncoder = extractAudioEncoder(canonical)
	return h
}

func extractRipperVersion(text string) string {
	m := ripperVersionRe.FindStringSubmatch(text)
	if m == nil {
		return "Unknown"
	}
	return strings.TrimSpace(m[1])
}

func extractReleaseInfo(text string) cambia.ReleaseInfo {
	m := releaseInfoRe.FindStringSubmatch(text)
	if m == nil {
		return cambia.ReleaseInfo{}
	}
	artist, title, ok := strings.Cut(strings.TrimSpace(m[1]), " / ")
	if !ok {
		return cambia.ReleaseInfo{}
	}
	return cambia.ReleaseInfo{Artist: strings.TrimSpace(artist), Title: strings.TrimSpace(title)}
}

func extractDrive(text string) string {
	m := usedDriveRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractMediaType(text string) cambia.MediaType {
	m := mediaTypeRe.FindStringSubmatch(text)
	if m == nil {
		return cambia.MediaUnknown
	}
	switch strings.TrimSpace(m[1]) {
	case "Pressed CD":
		return cambia.MediaPressed
	case "CD-Recordable":
		return cambia.MediaCDR
	default:
		return cambia.MediaOther
	}
}

func extractReadMode(text string) cambia.ReadMode {
	if m := readModeRe.FindStringSubmatch(text); m != nil {
		value := strings.TrimSpace(m[1])
		switch {
		case value == "XLD Secure Ripper":
			return cambia.ReadModeSecure
		case value == "Burst":
			return cambia.ReadModeBurst
		case strings.Contains(value, "CDParanoia"):
			return cambia.ReadModeParanoid
		default:
			return cambia.ReadModeUnknown
		}
	}

	if m := readModeLegacyRe.FindStringSubmatch(text); m != nil {
		if strings.Contains(m[1], "YES") {
			return cambia.ReadModeParanoid
		}
		return cambia.ReadModeBurst
	}

	return cambia.ReadModeUnknown
}

func extractReadOffset(text string) *int16 {
	m := readOffsetRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.ParseInt(m[1], 10, 16)
	if err != nil {
		return nil
	}
	v := int16(n)
	return &v
}

func extractGapHandling(text string) cambia.Gap {
	m := gapHandlingRe.FindStringSubmatch(text)
	if m == nil {
		return cambia.GapUnknown
	}
	switch strings.TrimSpace(m[1]) {
	case "Analyzed, Appended (except HTOA)":
		return cambia.GapAppendNoHtoa
	case "Analyzed, Appended":
		return cambia.GapAppend
	default:
		return cambia.GapUnknown
	}
}

// extractAudioEncoder unions file extensions across every "Filename: ..."
// occurrence in the whole log; the encoder setting is global, so per-track
// checking would add nothing.
func extractAudioEncoder(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range filenameRe.FindAllStringSubmatch(text, -1) {
		ext := strings.ToLower(fileExt(strings.TrimSpace(m[1])))
		if ext != "" && !seen[ext] {
			seen[ext] = true
			out = append(out, ext)
		}
	}
	return out
}

func fileExt(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return ""
	}
	return name[dot+1:]
}

func matchBoolean(re *regexp.Regexp, text string) cambia.Quartet {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return cambia.QuartetUnknown
	}
	switch m[1] {
	case "YES", "OK":
		return cambia.QuartetTrue
	case "NO":
		return cambia.QuartetFalse
	default:
		return cambia.QuartetUnknown
	}
}

func matchYesNo(re *regexp.Regexp, text string) cambia.Quartet {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return cambia.QuartetUnknown
	}
	if m[1] == "YES" {
		return cambia.QuartetTrue
	}
	return cambia.QuartetFalse
}

func boolToQuartet(b bool) cambia.Quartet {
	if b {
		return cambia.QuartetTrue
	}
	return cambia.QuartetFalse
}

// ExtractToc reads the TOC table rows, parsing start/length in the CD
// frame-based time form (mm:ss.ff).
func (Extractor) ExtractToc(canonical string) cambia.Toc {
	rows := segment.TocRows(canonical)
	entries := make([]cambia.TocEntry, 0, len(rows))

	for _, row := range rows {
		track, err := strconv.Atoi(row.Track)
		if err != nil {
			continue
		}
		start, err := cambia.ParseMMSSFrames(row.Start)
		if err != nil {
			continue
		}
		length, err := cambia.ParseMMSSFrames(row.Length)
		if err != nil {
			continue
		}
		startSector, err := strconv.Atoi(row.StartSector)
		if err != nil {
			continue
		}
		endSector, err := strconv.Atoi(row.EndSector)
		if err != nil {
			continue
		}

		entries = append(entries, cambia.TocEntry{
			Track:       track,
			Start:       start,
			Length:      length,
			StartSector: startSector,
			EndSector:   endSector,
		})
	}

	return cambia.Toc{Raw: entries}
}

// ExtractChecksum verifies the authenticity signature against the raw,
// untranslated log text with its native line endings, minus the signature
// block itself.
func (Extractor) ExtractChecksum(raw string) cambia.Checksum {
	extracted := signature.Strip(raw)
	if !extracted.Found {
		return cambia.Checksum{Integrity: cambia.IntegrityUnknown}
	}

	calculated, ok := signature.Verify(extracted.Stripped, extracted.Embedded)
	integrity := cambia.IntegrityMismatch
	if ok {
		integrity = cambia.IntegrityMatch
	}

	return cambia.Checksum{
		Calculated: calculated,
		Embedded:   extracted.Embedded,
		Integrity:  integrity,
	}
}
