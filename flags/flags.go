// Package flags turns country codes from profile data into flag emoji.
package flags

import (
	"errors"
	"strings"
)

const (
	regionalIndicatorOffset = 0x1F1A5
	tagOffset               = 0xE0000
	blackFlag               = "\U0001F3F4"
	cancelTag               = "\U000E007F"
)

// ErrInvalidCode indicates a code too short to render as a flag.
var ErrInvalidCode = errors.New("flags: invalid flag code")

// Flag renders a flag emoji for a country code. Codes present in the
// override table are returned verbatim; two-letter codes become a
// regional-indicator pair; longer codes become a tag sequence. The
// override table handles codes with no meaningful flag and codes whose
// computed glyph renders badly on Discord.
func Flag(code string, overrides map[string]string) (string, error) {
	if glyph, ok := overrides[code]; ok {
		return glyph, nil
	}
	if len(code) == 2 {
		return regionalIndicator(code), nil
	}
	if len(code) > 2 {
		return tag(code), nil
	}
	return "", ErrInvalidCode
}

func regionalIndicator(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String()
}

func tag(code string) string {
	var b strings.Builder
	b.WriteString(blackFlag)
	for _, r := range strings.ToUpper(code) {
		b.WriteRune(r + tagOffset)
	}
	b.WriteString(cancelTag)
	return b.String()
}
