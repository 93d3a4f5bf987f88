// Package dispatch identifies which ripper produced a log and splits a
// single input into its constituent sub-logs.
package dispatch

import (
	"regexp"
	"sort"

	"github.com/cambia-project/cambia-go/internal/extractor"
	"github.com/cambia-project/cambia-go/internal/extractor/xld"
	"github.com/cambia-project/cambia-go/pkg/cambia"
)

// variant pairs a ripper tag with its top-of-log identification pattern.
// variants below lists them as EAC -> XLD -> Whipper; Split keeps every match
// of every pattern and orders the resulting sub-logs by position in the text.
type variant struct {
	tag     cambia.RipperTag
	pattern *regexp.Regexp
}

var variants = []variant{
	{cambia.RipperEAC, regexp.MustCompile(`Exact Audio Copy (.+) from`)},
	{cambia.RipperXLD, regexp.MustCompile(`X Lossless Decoder version (.+)`)},
	{cambia.RipperWhipper, regexp.MustCompile(`whipper (.+) \(`)},
}

// Select returns the extractor.Set implementing tag's capability set.
// Only XLD performs field extraction; EAC and Whipper are recognized but
// tag-only, since their translation/extraction tables are not implemented.
func Select(tag cambia.RipperTag) (extractor.Set, bool) {
	if tag == cambia.RipperXLD {
		return xld.Extractor{}, true
	}
	return nil, false
}

// Sub is one classified slice of a (possibly concatenated) input.
type Sub struct {
	Tag cambia.RipperTag
	Raw string
}

// Split identifies the ripper variant for each sub-log within text,
// splitting on re-occurrences of a variant's signature line. Text with no
// recognized signature anywhere yields a single Sub tagged RipperOther
// covering the whole input.
func Split(text string) []Sub {
	type occurrence struct {
		tag variant
		loc []int
	}

	var occurrences []occurrence
	for _, v := range variants {
		for _, loc := range v.pattern.FindAllStringIndex(text, -1) {
			occurrences = append(occurrences, occurrence{tag: v, loc: loc})
		}
	}

	if len(occurrences) == 0 {
		return []Sub{{Tag: cambia.RipperOther, Raw: text}}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].loc[0] < occurrences[j].loc[0]
	})

	subs := make([]Sub, 0, len(occurrences))
	for i, occ := range occurrences {
		start := occ.loc[0]
		end := len(text)
		if i+1 < len(occurrences) {
			end = occurrences[i+1].loc[0]
		}
		subs = append(subs, Sub{Tag: occ.tag.tag, Raw: text[start:end]})
	}

	return subs
}
