package ref

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/edydex/bible-study-tool/core/books"
)

// citationGrammar matches the leading reference of free citation text:
// an optional digit, a book word, a chapter number, and an optional
// :verse[-verse] suffix. Trailing tokens (", 2", "and 3") are consumed
// into Rest and ignored, mirroring how the citation head is read out
// of prose.
type citationGrammar struct {
	BookNum  string   `parser:"@Number?"`
	BookName string   `parser:"@Word"`
	Chapter  int      `parser:"@Number"`
	Verse    *int     `parser:"( \":\" @Number"`
	VerseEnd *int     `parser:"  ( \"-\" @Number )? )?"`
	Rest     []string `parser:"( @Word | @Number | @Colon | @Dash | @Punct )*"`
}

// citationLexer tokenizes citation text. Punct is a catch-all for the
// commas and periods that follow the reference proper.
var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Punct", Pattern: `[^\sA-Za-z0-9]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var citationParser = participle.MustBuild[citationGrammar](
	participle.Lexer(citationLexer),
	participle.Elide("Whitespace"),
)

// parseCitation matches passage text of the form
// "<book> <chapter>[:<verse>[-<verse2>]]". The book token is
// normalized via the books table; unknown tokens pass through
// unchanged. Returns nil when the grammar does not match at all.
func parseCitation(passage string) *Reference {
	g, err := citationParser.ParseString("", passage)
	if err != nil {
		return nil
	}

	token := g.BookName
	if g.BookNum != "" {
		token = g.BookNum + " " + g.BookName
	}

	r := &Reference{
		Book:    books.NormalizeCitation(token),
		Chapter: g.Chapter,
	}
	if g.Verse != nil {
		r.VerseStart = *g.Verse
		r.VerseEnd = *g.Verse
		if g.VerseEnd != nil {
			r.VerseEnd = *g.VerseEnd
		}
	}
	return r
}
