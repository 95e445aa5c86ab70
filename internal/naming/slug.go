package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackName replaces any name that sanitizes to nothing.
const fallbackName = "item"

// SlugOptions controls the slug algorithm.
type SlugOptions struct {
	Lowercase          bool
	SpacesToUnderscore bool // spaces become "_" instead of "-"
	KeepDots           bool // allow "." in the result (full names, not stems)
}

var (
	reSlugDisallowed     = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	reSlugDisallowedDots = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	reUnderscoreRun      = regexp.MustCompile(`_{2,}`)
	reHyphenRun          = regexp.MustCompile(`-{2,}`)
)

// StripAccents decomposes s (NFKD) and drops the nonspacing marks, so
// "ação" becomes "acao". Runes without an ASCII base are kept as-is.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify reduces s to the [A-Za-z0-9_-] alphabet (plus "." with KeepDots).
// Accents are stripped, spaces become "_" or "-", runs of "_" and "-" are
// collapsed and leading/trailing "_"/"-" trimmed. An empty result becomes
// "item".
func Slugify(s string, opts SlugOptions) string {
	s = StripAccents(s)
	if opts.Lowercase {
		s = strings.ToLower(s)
	}
	if opts.SpacesToUnderscore {
		s = strings.ReplaceAll(s, " ", "_")
	} else {
		s = strings.ReplaceAll(s, " ", "-")
	}

	if opts.KeepDots {
		s = reSlugDisallowedDots.ReplaceAllString(s, "")
	} else {
		s = reSlugDisallowed.ReplaceAllString(s, "")
	}
	s = reUnderscoreRun.ReplaceAllString(s, "_")
	s = reHyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "_-")

	if s == "" {
		return fallbackName
	}
	return s
}
