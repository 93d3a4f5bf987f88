// Package localize picks a presentation locale for the CLI's human-readable
// output mode. It never influences parsing, only how numbers are printed.
package localize

import (
	"github.com/Xuanwo/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer returns a message.Printer for the host's detected locale, falling
// back to language.English when detection fails (headless CI, minimal
// containers, etc).
func Printer() *message.Printer {
	return message.NewPrinter(Tag())
}

// Tag returns the detected host language tag, defaulting to English.
func Tag() language.Tag {
	tag, err := locale.Detect()
	if err != nil {
		return language.English
	}
	return tag
}
