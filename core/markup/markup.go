// Package markup reduces raw ThML/HTML fragments to clean prose.
// Normalization is a pure, total transform: it never fails and returns
// an empty string for empty input.
package markup

import (
	"regexp"
	"strings"
)

var (
	// Footnote blocks are removed entirely, content included.
	notePattern = regexp.MustCompile(`(?is)<note[^>]*>.*?</note>`)

	// Inline scripture references are unwrapped, keeping inner text.
	scripRefPattern = regexp.MustCompile(`(?is)<scripRef[^>]*>(.*?)</scripRef>`)

	// Any remaining tag is stripped.
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the fixed set of character entities that
// occur in the CCEL corpus. Anything outside this set is left alone.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&apos;", "'",
	"&#8220;", "“",
	"&#8221;", "”",
	"&#8216;", "‘",
	"&#8217;", "’",
	"&#8212;", "—",
	"&#8211;", "–",
)

// mojibakeReplacer repairs the UTF-8-as-Latin-1 double encoding found
// in some CCEL files. Each pattern is the cp1252 rendering of a UTF-8
// byte sequence: 0xE2 becomes U+00E2, 0x80 becomes U+20AC, and the
// final byte maps through cp1252 (0x9D has no cp1252 mapping and
// survives as the C1 control character).
var mojibakeReplacer = strings.NewReplacer(
	"â€œ", "“", // left double quote
	"â€", "”", // right double quote
	"â€™", "’", // right single quote
	"â€˜", "‘", // left single quote
	"â€”", "—", // em dash
	"â€“", "–", // en dash
)

// Normalize strips markup from a raw fragment and returns clean prose:
// footnotes removed, scripture-reference spans unwrapped, remaining
// tags stripped, known entities decoded, mojibake repaired, and all
// whitespace runs collapsed to single spaces.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := notePattern.ReplaceAllString(raw, "")
	s = scripRefPattern.ReplaceAllString(s, "$1")
	s = tagPattern.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = mojibakeReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
