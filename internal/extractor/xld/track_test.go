package xld

import (
	"math"
	"testing"
)

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

const arTrackLog = `Track 1
		Filename : 01.foo.flac

		Peak : 1.000000
		CRC32 hash (test run) : DEADBEEF
		CRC32 hash            : DEADBEEF
		Damaged sector count : 2
		List of damaged sector positions : (1) 0:01:23 (2) 0:04:56

		AccurateRip v1 signature : AAAAAAAA (BBBBBBBB w/correction)
		AccurateRip v2 signature : CCCCCCCC
		Accurately ripped (v1+v2, confidence 3+5/200, offset 667)
Statistics

End of status report
`

func TestExtractTracksAccurateRipTwoVersionsWithOffset(t *testing.T) {
	tracks := Extractor{}.ExtractTracks(arTrackLog)
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}

	units := tracks[0].ARInfo
	if len(units) != 2 {
		t.Fatalf("got %d AR units, want 2", len(units))
	}

	u0, u1 := units[0], units[1]
	if u0.Version == nil || *u0.Version != 1 {
		t.Errorf("unit[0].Version = %v, want 1", u0.Version)
	}
	if u0.Signature != "AAAAAAAA" {
		t.Errorf("unit[0].Signature = %q, want AAAAAAAA", u0.Signature)
	}
	if u0.OffsetCorrectedSign != "BBBBBBBB" {
		t.Errorf("unit[0].OffsetCorrectedSign = %q, want BBBBBBBB", u0.OffsetCorrectedSign)
	}
	if u0.Confidence == nil || u0.Confidence.Matching == nil || *u0.Confidence.Matching != 3 {
		t.Errorf("unit[0].Confidence.Matching = %v, want 3", u0.Confidence)
	}
	if u0.Confidence.Total == nil || u0.Confidence.Total.Value != 200 {
		t.Errorf("unit[0].Confidence.Total = %v, want All(200)", u0.Confidence.Total)
	}
	if u0.Confidence.Offset.Same || u0.Confidence.Offset.Different == nil || *u0.Confidence.Offset.Different != 667 {
		t.Errorf("unit[0].Confidence.Offset = %+v, want Different(667)", u0.Confidence.Offset)
	}

	if u1.Version == nil || *u1.Version != 2 {
		t.Errorf("unit[1].Version = %v, want 2", u1.Version)
	}
	if u1.Signature != "CCCCCCCC" {
		t.Errorf("unit[1].Signature = %q, want CCCCCCCC", u1.Signature)
	}
	if u1.OffsetCorrectedSign != "CCCCCCCC" {
		t.Errorf("unit[1].OffsetCorrectedSign = %q, want CCCCCCCC (inherits sign, no correction suffix)", u1.OffsetCorrectedSign)
	}
	if u1.Confidence == nil || u1.Confidence.Matching == nil || *u1.Confidence.Matching != 5 {
		t.Errorf("unit[1].Confidence.Matching = %v, want 5", u1.Confidence)
	}
}

func TestExtractTracksDamagedSectorList(t *testing.T) {
	tracks := Extractor{}.ExtractTracks(arTrackLog)
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}

	errs := tracks[0].Errors
	if errs.DamagedSectors.Count != 2 {
		t.Errorf("DamagedSectors.Count = %d, want 2", errs.DamagedSectors.Count)
	}
	if len(errs.DamagedSectors.Ranges) != 2 {
		t.Fatalf("got %d damaged sector ranges, want 2", len(errs.DamagedSectors.Ranges))
	}
	if got := errs.DamagedSectors.Ranges[0].Start.Seconds(); !nearlyEqual(got, 1.23) {
		t.Errorf("range[0].Start = %v, want 1.23s", got)
	}
	if got := errs.DamagedSectors.Ranges[1].Start.Seconds(); !nearlyEqual(got, 4.56) {
		t.Errorf("range[1].Start = %v, want 4.56s", got)
	}
}

func TestExtractTracksNoARBlockIsDisabled(t *testing.T) {
	const log = `Track 1
		Filename : 01.foo.flac

End of status report
`
	tracks := Extractor{}.ExtractTracks(log)
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	units := tracks[0].ARInfo
	if len(units) != 1 || units[0].Status.String() != "Disabled" {
		t.Errorf("ARInfo = %+v, want single Disabled unit", units)
	}
}

func TestExtractHeaderMediaAndGap(t *testing.T) {
	const header = `X Lossless Decoder version 20230413 (127.4.2)

Media type                     : CD-Recordable
Gap status                                  : Analyzed, Appended (except HTOA)
Read offset correction                      : -12
`
	h := Extractor{}.ExtractHeader(header)
	if h.MediaType.String() != "CD-R" {
		t.Errorf("MediaType = %v, want CD-R", h.MediaType)
	}
	if h.GapHandling.String() != "AppendNoHtoa" {
		t.Errorf("GapHandling = %v, want AppendNoHtoa", h.GapHandling)
	}
	if h.ReadOffset == nil || *h.ReadOffset != -12 {
		t.Errorf("ReadOffset = %v, want -12", h.ReadOffset)
	}
}
