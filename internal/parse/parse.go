// Package parse wires the decoder, dispatcher, per-variant extractor sets,
// and signature engine into a single entry point: raw bytes in, a
// CambiaResponse out. It holds no state of its own; every call is an
// independent, single-threaded parse.
package parse

import (
	"encoding/hex"
	"errors"

	"github.com/cambia-project/cambia-go/internal/decode"
	"github.com/cambia-project/cambia-go/internal/dispatch"
	"github.com/cambia-project/cambia-go/internal/evaluate"
	"github.com/cambia-project/cambia-go/internal/segment"
	"github.com/cambia-project/cambia-go/internal/signature"
	"github.com/cambia-project/cambia-go/pkg/cambia"
)

// ErrCouldNotParse is the pipeline's only error: returned when the
// dispatcher found no ripper signature, no authenticity signature block,
// and no track or TOC content anywhere in the input. Every other anomaly
// is encoded in the returned record instead.
var ErrCouldNotParse = errors.New("cambia: could not parse log: no ripper signature, signature block, or track/TOC content found")

// Parse runs the full pipeline over raw and returns a CambiaResponse. The
// only error it returns is ErrCouldNotParse; every other parse anomaly is
// tolerated and recorded in the response. eval may be nil, in which case
// CambiaResponse.Evaluation is left absent.
func Parse(raw []byte, eval evaluate.Evaluator) (cambia.CambiaResponse, error) {
	decoded := decode.Decode(raw)
	subs := dispatch.Split(decoded.Text)

	if len(subs) == 1 && subs[0].Tag == cambia.RipperOther {
		sig := signature.Strip(subs[0].Raw)
		tocRows := segment.TocRows(subs[0].Raw)
		trackBlocks := segment.TrackBlocks(subs[0].Raw)
		if !sig.Found && len(tocRows) == 0 && len(trackBlocks) == 0 {
			return cambia.CambiaResponse{}, ErrCouldNotParse
		}
	}

	logs := make([]cambia.ParsedLog, 0, len(subs))
	for _, sub := range subs {
		logs = append(logs, parseSub(sub))
	}

	combined := cambia.ParsedLogCombined{Encoding: decoded.Encoding, ParsedLogs: logs}

	resp := cambia.CambiaResponse{
		ID:     hex.EncodeToString(cambia.ResponseID(raw)),
		Parsed: combined,
	}

	if eval != nil {
		if result, err := eval.Evaluate(&combined); err == nil {
			resp.Evaluation = result
		}
	}

	return resp, nil
}

// parseSub drives the extractor.Set for one classified sub-log. EAC and
// Whipper have no extractor set here, so they record the tag with every
// other field at its zero/Unknown value.
func parseSub(sub dispatch.Sub) cambia.ParsedLog {
	set, ok := dispatch.Select(sub.Tag)
	if !ok {
		return cambia.ParsedLog{
			Ripper:   sub.Tag,
			Language: "Unknown",
			Checksum: cambia.Checksum{Integrity: cambia.IntegrityUnknown},
		}
	}

	language, canonical := set.Translate(sub.Raw)
	header := set.ExtractHeader(canonical)

	return cambia.ParsedLog{
		Ripper:           sub.Tag,
		RipperVersion:    header.RipperVersion,
		Language:         language,
		ReleaseInfo:      header.ReleaseInfo,
		Drive:            header.Drive,
		MediaType:        header.MediaType,
		ReadMode:         header.ReadMode,
		AccurateStream:   header.AccurateStream,
		DefeatAudioCache: header.DefeatAudioCache,
		UseC2:            header.UseC2,
		UseNullSamples:   header.UseNullSamples,
		TestAndCopy:      header.TestAndCopy,
		ReadOffset:       header.ReadOffset,
		GapHandling:      header.GapHandling,
		AudioEncoder:     header.AudioEncoder,
		Checksum:         set.ExtractChecksum(sub.Raw),
		Toc:              set.ExtractToc(canonical),
		Tracks:           set.ExtractTracks(canonical),
	}
}
