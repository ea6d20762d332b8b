// Package search resolves free-text queries against the book alias
// table. A query like "1 cor 13:4" resolves to the canonical book plus
// the remainder to parse as a chapter:verse fragment; a query that
// matches no alias falls back to full-text search at the caller.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/edydex/bible-study-tool/core/books"
)

// Match is a resolved query: the alias that matched, the canonical
// book name it maps to, and the rest of the query after the alias.
type Match struct {
	Alias     string `json:"alias"`
	Book      string `json:"book"`
	Remainder string `json:"remainder"`
}

// Resolver matches query prefixes against known book aliases,
// longest alias first.
type Resolver struct {
	aliases []string
	books   map[string]string
}

// NewResolver builds a resolver over the full alias table.
func NewResolver() *Resolver {
	byAlias := books.Aliases()
	aliases := make([]string, 0, len(byAlias))
	for a := range byAlias {
		aliases = append(aliases, a)
	}
	// Longest first so "1 corinthians" beats "1 cor"; lexicographic
	// within a length to keep resolution deterministic.
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})
	return &Resolver{aliases: aliases, books: byAlias}
}

// Resolve matches the query against the alias table. The alias must
// sit at the start of the query and be followed by a boundary
// character, so an alias never matches inside a longer word. The
// second return is false when no alias matches.
func (r *Resolver) Resolve(query string) (*Match, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}
	for _, alias := range r.aliases {
		if !strings.HasPrefix(q, alias) {
			continue
		}
		rest := q[len(alias):]
		if !boundary(rest) {
			continue
		}
		return &Match{
			Alias:     alias,
			Book:      r.books[alias],
			Remainder: strings.TrimSpace(rest),
		}, true
	}
	return nil, false
}

// boundary reports whether rest begins at a legal alias boundary:
// end of query, whitespace, a digit, a colon, or a period.
func boundary(rest string) bool {
	if rest == "" {
		return true
	}
	c := rune(rest[0])
	return unicode.IsSpace(c) || unicode.IsDigit(c) || c == ':' || c == '.'
}
