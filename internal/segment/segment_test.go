package segment

import "testing"

const sampleLog = `XLD extraction logfile from 2024-01-01 12:00:00

Foo Bar / Baz Album

Used drive : FOO

TOC of the extracted CDDA

     1  |  0:00.00 |  3:50.42 |      0  |  17291
     2  |  3:50.42 |  4:12.33 |  17291  |  36219

Track 1
		Filename : 01.foo.flac

		CRC32 hash (test run) : DEADBEEF
		CRC32 hash            : DEADBEEF

Track 2
		Filename : 02.bar.flac

		CRC32 hash (test run) : CAFEBABE
		CRC32 hash            : CAFEBABE

No errors occurred
End of status report
`

func TestTrailerIndex(t *testing.T) {
	idx, found := TrailerIndex(sampleLog)
	if !found {
		t.Fatalf("expected trailer to be found")
	}
	if sampleLog[idx:idx+len("End of status report")] != "End of status report" {
		t.Errorf("trailer index %d does not point at the anchor", idx)
	}
}

func TestTrailerIndexMissing(t *testing.T) {
	if _, found := TrailerIndex("no trailer here\n"); found {
		t.Errorf("expected no trailer to be found")
	}
}

func TestTrackBlocksSplitsOnFilenameOpeners(t *testing.T) {
	blocks := TrackBlocks(sampleLog)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for _, b := range blocks {
		if b.IsRange {
			t.Errorf("expected IsRange = false for an all-Filename log")
		}
	}
	if got := blocks[0].Raw; got == "" {
		t.Errorf("first block is empty")
	}
}

func TestTrackBlocksPregapOpenerMarksWholeLogAsRange(t *testing.T) {
	const rangeLog = `Track 1
		Pre-gap length : 00:02:00

Track 2
		Filename : 02.bar.flac

End of status report
`
	blocks := TrackBlocks(rangeLog)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for i, b := range blocks {
		if !b.IsRange {
			t.Errorf("block %d: expected IsRange = true once any opener is Pre-gap length", i)
		}
	}
}

func TestTrackBlocksNoTrailerReturnsNil(t *testing.T) {
	if blocks := TrackBlocks("Track 1\n\tFilename : 01.flac\n"); blocks != nil {
		t.Errorf("expected nil blocks without a trailer anchor, got %v", blocks)
	}
}

func TestTocRows(t *testing.T) {
	rows := TocRows(sampleLog)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Track != "1" || rows[0].StartSector != "0" || rows[0].EndSector != "17291" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Track != "2" || rows[1].Start != "3:50.42" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}
