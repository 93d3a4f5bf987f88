package xld

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cambia-project/cambia-go/internal/segment"
	"github.com/cambia-project/cambia-go/pkg/cambia"
)

var (
	trackNumberRe = regexp.MustCompile(`Track\s*(\d+)`)
	peakLevelRe   = regexp.MustCompile(`Peak\s*:\s*(\d+\.\d+)`)
	pregapRe      = regexp.MustCompile(`Pre-gap length\s*:\s*(\d{2}:\d{2}:\d{2})`)
	testCrcRe     = regexp.MustCompile(`CRC32 hash \(test run\)\s*:\s*([A-F0-9]{8})`)
	copyCrcRe     = regexp.MustCompile(`CRC32 hash\s*:\s*([A-F0-9]{8})`)

	errorRe = regexp.MustCompile(`(Read error|Skipped \(treated as error\)|Damaged sector count|Inconsistency in error sectors|Missing samples|(?:Jitter error|Edge jitter error|Atom jitter error|Drift error|Dropped bytes error|Duplicated bytes error) \(maybe fixed\))(?:\s*:\s*(\d+))?`)

	damagedSectorsRe    = regexp.MustCompile(`List of damaged sector positions\s*:(?:\s*\(\d+\)\s*\d+:\d+:\d+)+`)
	suspiciousSectorsRe = regexp.MustCompile(`List of suspicious positions\s*:(?:\s*\(\d+\)\s*\d+:\d+:\d+)+`)
	errorTimeRe         = regexp.MustCompile(`\(\d+\)\s*(\d+:\d+:\d+)`)

	arBlockRe = regexp.MustCompile(`(?s)(AccurateRip(?: v\d+)? signature.+)Statistics`)
	arSignsRe = regexp.MustCompile(`AccurateRip(?: v(\d))? signature\s*:\s*([A-F0-9]{8})(?: \(([A-F0-9]{8}) w/correction\))?`)
	arFoundRe = regexp.MustCompile(`Accurately ripped.+\((AR\d+|v\d+(?:\+v\d+)*), confidence (\d+(?:\+\d+)*)(?:/(\d+))?(?:, offset (-?\d+))?\)`)
)

// ExtractTracks splits canonical into its track blocks and extracts every
// per-track field from each.
func (Extractor) ExtractTracks(canonical string) []cambia.TrackEntry {
	blocks := segment.TrackBlocks(canonical)
	entries := make([]cambia.TrackEntry, 0, len(blocks))

	for _, b := range blocks {
		entries = append(entries, parseTrackBlock(b))
	}

	return entries
}

func parseTrackBlock(b segment.TrackBlock) cambia.TrackEntry {
	entry := cambia.TrackEntry{
		IsRange:     b.IsRange,
		Num:         extractTrackNum(b.Raw),
		Filenames:   extractFilenames(b.Raw),
		PeakLevel:   matchFloat(peakLevelRe, b.Raw),
		TestAndCopy: extractTestAndCopy(b.Raw),
		Errors:      extractErrors(b.Raw),
		ARInfo:      extractARInfo(b.Raw),
	}

	if m := pregapRe.FindStringSubmatch(b.Raw); m != nil {
		if t, err := cambia.ParseMMSSCentiseconds(m[1]); err == nil {
			entry.PregapLength = &t
		}
	}

	return entry
}

func extractTrackNum(raw string) int {
	m := trackNumberRe.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// extractFilenames returns the first "Filename: ..." match plus any
// additional filename lines from a following multi-line block.
// FIXME: assumes filenames contain no embedded line breaks.
func extractFilenames(raw string) []string {
	first := filenameRe.FindStringSubmatch(raw)
	if first == nil {
		return nil
	}

	filenames := []string{strings.TrimSpace(first[1])}

	m := filenameMultiRe.FindStringSubmatch(raw)
	if m == nil {
		return filenames
	}

	lines := strings.FieldsFunc(m[1], func(r rune) bool { return r == '\n' || r == '\r' })
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line != "" {
			filenames = append(filenames, line)
		}
	}

	return filenames
}

func matchFloat(re *regexp.Regexp, raw string) *float64 {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

func extractTestAndCopy(raw string) cambia.TestAndCopy {
	test := matchHex(testCrcRe, raw)
	copyCrc := matchHex(copyCrcRe, raw)
	return cambia.NewTestAndCopy(test, copyCrc)
}

func matchHex(re *regexp.Regexp, raw string) string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

func extractErrors(raw string) cambia.TrackError {
	var e cambia.TrackError

	for _, m := range errorRe.FindAllStringSubmatch(raw, -1) {
		kind := m[1]
		count := 0
		if m[2] != "" {
			count, _ = strconv.Atoi(m[2])
		}

		switch kind {
		case "Read error":
			e.Read.Count = count
		case "Skipped (treated as error)":
			e.Skip.Count = count
		case "Damaged sector count":
			e.DamagedSectors.Count = count
		case "Jitter error (maybe fixed)":
			e.JitterGeneric.Count = count
		case "Edge jitter error (maybe fixed)":
			e.JitterEdge.Count = count
		case "Atom jitter error (maybe fixed)":
			e.JitterAtom.Count = count
		case "Drift error (maybe fixed)":
			e.Drift.Count = count
		case "Dropped bytes error (maybe fixed)":
			e.Dropped.Count = count
		case "Duplicated bytes error (maybe fixed)":
			e.Duplicated.Count = count
		case "Inconsistency in error sectors":
			e.InconsistentErrSector.Count = count
		case "Missing samples":
			e.MissingSamples.Count = 1
		}
	}

	e.DamagedSectors.Ranges = extractErrorRanges(damagedSectorsRe, raw)
	e.InconsistentErrSector.Ranges = extractErrorRanges(suspiciousSectorsRe, raw)

	return e
}

func extractErrorRanges(blockRe *regexp.Regexp, raw string) []cambia.TrackErrorRange {
	block := blockRe.FindString(raw)
	if block == "" {
		return nil
	}

	var ranges []cambia.TrackErrorRange
	for _, m := range errorTimeRe.FindAllStringSubmatch(block, -1) {
		t, err := cambia.ParseMMSSCentiseconds(m[1])
		if err != nil {
			continue
		}
		ranges = append(ranges, cambia.TrackErrorRange{Start: t, Length: cambia.ZeroTime})
	}
	return ranges
}

// extractARInfo extracts the AccurateRip block for one track: the signature
// lines, the optional confidence summary, and the derived status for each
// resulting unit.
func extractARInfo(raw string) []cambia.AccurateRipUnit {
	block := arBlockRe.FindStringSubmatch(raw)
	if block == nil {
		return []cambia.AccurateRipUnit{cambia.NewDisabledAccurateRipUnit()}
	}
	arRaw := block[1]

	found := arFoundRe.MatchString(arRaw)
	confByVersion := map[int]cambia.AccurateRipConfidence{}

	if fm := arFoundRe.FindStringSubmatch(arRaw); fm != nil {
		versions := parseVersionList(fm[1])
		matches := parseIntList(fm[2])

		var total *cambia.AccurateRipConfidenceTotal
		if fm[3] != "" {
			if n, err := strconv.Atoi(fm[3]); err == nil {
				t := cambia.AllTotal(n)
				total = &t
			}
		}

		offset := cambia.AccurateRipOffset{Same: true}
		if fm[4] != "" {
			if n, err := strconv.Atoi(fm[4]); err == nil {
				offset = cambia.AccurateRipOffset{Same: false, Different: &n}
			}
		}

		for i := 0; i < len(versions) && i < len(matches); i++ {
			m := matches[i]
			confByVersion[versions[i]] = cambia.AccurateRipConfidence{
				Matching: &m,
				Total:    total,
				Offset:   offset,
			}
		}
	}

	var units []cambia.AccurateRipUnit
	for _, sm := range arSignsRe.FindAllStringSubmatch(arRaw, -1) {
		var version *int
		if sm[1] != "" {
			if n, err := strconv.Atoi(sm[1]); err == nil {
				version = &n
			}
		}

		sign := sm[2]
		offsetSign := sm[3]
		if offsetSign == "" && found {
			offsetSign = sign
		}

		// Legacy logging: an unversioned signature line paired with a found
		// summary inherits the confidence table's sole key.
		if version == nil && found && len(confByVersion) == 1 {
			for v := range confByVersion {
				version = &v
			}
		}

		var confidence *cambia.AccurateRipConfidence
		if version != nil {
			if c, ok := confByVersion[*version]; ok {
				confidence = &c
				delete(confByVersion, *version)
			}
		}

		unit := cambia.AccurateRipUnit{
			Signature:           sign,
			Version:             version,
			OffsetCorrectedSign: offsetSign,
			Confidence:          confidence,
		}
		unit.DeriveStatus()
		units = append(units, unit)
	}

	if len(units) == 0 {
		return []cambia.AccurateRipUnit{cambia.NewDisabledAccurateRipUnit()}
	}

	return units
}

func parseVersionList(s string) []int {
	parts := strings.Split(s, "+")
	versions := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimLeft(p, "ARv")
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		versions = append(versions, n)
	}
	return versions
}

func parseIntList(s string) []int {
	parts := strings.Split(s, "+")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}
