// Package segment splits a canonicalized XLD-family log into the regions the
// field extractors operate on: the track blocks, the TOC table, and the
// trailer that marks where track content ends.
package segment

import (
	"regexp"
	"strings"
)

var (
	trailerRe = regexp.MustCompile(`(?:(?:No|Some) (?:errors|inconsistencies) (?:occurred|found)\s+)?End of status report`)

	trackHeaderRe = regexp.MustCompile(`(?m)^Track \d+\s+(Filename|Pre-gap length)`)

	tocRowRe = regexp.MustCompile(`\s+(?P<track>\d+)\s+\|\s+(?P<start>[0-9:.]+)\s+\|\s+(?P<length>[0-9:.]+)\s+\|\s+(?P<start_sector>\d+)\s+\|\s+(?P<end_sector>\d+)`)
)

// TrailerIndex returns the byte offset of the trailer anchor ("End of status
// report", optionally preceded by "No/Some errors/inconsistencies
// occurred/found") within text, and whether one was found at all. The offset
// points at "End of status report" itself, also when the optional line
// precedes it. Content at or after this offset belongs to no track.
func TrailerIndex(text string) (idx int, found bool) {
	loc := trailerRe.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	return loc[1] - len("End of status report"), true
}

// TrackBlock is one "Track <n> ..." section of the log, bounded by the next
// track header or the trailer anchor.
type TrackBlock struct {
	Raw     string
	IsRange bool
}

// TrackBlocks splits text into its track blocks: a block begins at each
// "^Track <n>" line immediately followed by either "Filename" or "Pre-gap
// length", and runs to the next such header or the trailer anchor. Once any
// opening line reads "Pre-gap length" rather than "Filename", every block
// in the log (not just that one) is marked IsRange; a range export and
// per-track files are never mixed in one log.
func TrackBlocks(text string) []TrackBlock {
	trailer, found := TrailerIndex(text)
	if !found {
		return nil
	}

	starts := trackHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}

	isRange := false
	for _, m := range starts {
		opener := text[m[2]:m[3]]
		if opener != "Filename" {
			isRange = true
			break
		}
	}

	var blocks []TrackBlock
	for i, m := range starts {
		start := m[0]
		end := trailer
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, TrackBlock{
			Raw:     strings.TrimSpace(text[start:end]),
			IsRange: isRange,
		})
	}

	return blocks
}

// TocRow is one matched row of the TOC table, still in string form; the
// caller parses the time columns and integers.
type TocRow struct {
	Track       string
	Start       string
	Length      string
	StartSector string
	EndSector   string
}

// TocRows extracts every row of the tabular TOC region: "<track> | <start
// mm:ss.ff> | <length mm:ss.ff> | <start_sector> | <end_sector>".
func TocRows(text string) []TocRow {
	matches := tocRowRe.FindAllStringSubmatch(text, -1)
	rows := make([]TocRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, TocRow{
			Track:       m[1],
			Start:       m[2],
			Length:      m[3],
			StartSector: m[4],
			EndSector:   m[5],
		})
	}
	return rows
}
