// Package ref parses scripture passage references, either from the
// machine-readable "parsed" hint carried by CCEL ThML citation markers
// or from free citation text such as "Ro 1:1-7".
package ref

import (
	"fmt"
	"strconv"
	"strings"
)

// Reference is a resolved passage reference.
type Reference struct {
	// Book is the canonical CCEL abbreviation (e.g., "Rom"), or the
	// original token unchanged when no mapping is known.
	Book string `json:"book"`

	// Chapter is the 1-based chapter number.
	Chapter int `json:"chapter"`

	// VerseStart is the first verse. 0 is a sentinel meaning the
	// reference addresses the whole chapter (a chapter introduction).
	VerseStart int `json:"verse_start"`

	// VerseEnd is the last verse, >= VerseStart unless both are 0.
	VerseEnd int `json:"verse_end"`
}

// IsIntro reports whether the reference is a chapter introduction
// (verse 0 sentinel).
func (r *Reference) IsIntro() bool {
	return r.VerseStart == 0
}

// Label returns the human-readable chapter:verse form used in record
// references: "3 (Introduction)", "3:16", or "3:16-18".
func (r *Reference) Label() string {
	switch {
	case r.VerseStart == 0:
		return fmt.Sprintf("%d (Introduction)", r.Chapter)
	case r.VerseStart == r.VerseEnd:
		return fmt.Sprintf("%d:%d", r.Chapter, r.VerseStart)
	default:
		return fmt.Sprintf("%d:%d-%d", r.Chapter, r.VerseStart, r.VerseEnd)
	}
}

// Parse resolves a citation. The parsed hint, when present and usable,
// is authoritative; otherwise the passage text is matched against the
// citation grammar. Returns nil when the passage is empty or no form
// matches (e.g., no chapter number present).
func Parse(passage, parsed string) *Reference {
	if passage == "" {
		return nil
	}
	if parsed != "" {
		if r := parseHint(parsed); r != nil {
			return r
		}
	}
	return parseCitation(passage)
}

// parseHint decodes a pipe-delimited hint such as "|Rom|1|1|0|0".
// Empty segments are dropped; fewer than three remaining segments
// means the hint is unusable. The verse-end value is read from segment
// index 4, not 3 — the CCEL format populates index 3 inconsistently
// and all downstream data was generated against index 4.
func parseHint(parsed string) *Reference {
	var segs []string
	for _, s := range strings.Split(parsed, "|") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) < 3 {
		return nil
	}

	chapter, _ := strconv.Atoi(segs[1])
	verseStart, _ := strconv.Atoi(segs[2])
	verseEnd := verseStart
	if len(segs) > 4 {
		if v, _ := strconv.Atoi(segs[4]); v != 0 {
			verseEnd = v
		}
	}

	return &Reference{
		Book:       segs[0],
		Chapter:    chapter,
		VerseStart: verseStart,
		VerseEnd:   verseEnd,
	}
}
