// Package thml extracts commentary records from CCEL ThML documents.
//
// The corpus structure pairs each self-closing citation marker with
// the commentary container that follows it:
//
//	<p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
//	<div class="Commentary">
//	  <p>...commentary text...</p>
//	</div>
//
// Extraction is a single-book pass: markers resolving to any other
// book are dropped, and markers with no following container or no
// qualifying paragraphs are skipped without aborting the batch.
package thml

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/edydex/bible-study-tool/core/books"
	"github.com/edydex/bible-study-tool/core/commentary"
	"github.com/edydex/bible-study-tool/core/markup"
	"github.com/edydex/bible-study-tool/core/ref"
	"github.com/edydex/bible-study-tool/core/xml"
)

// minParagraphLen is the normalized length below which a paragraph is
// treated as a stray fragment (whitespace, punctuation) and dropped.
const minParagraphLen = 5

// Report summarizes an extraction pass for operator review.
type Report struct {
	// Markers is the number of citation markers found in the document.
	Markers int
	// Matched is how many markers resolved to the target book.
	Matched int
	// Skipped is how many matched markers produced no record (no
	// container, or no qualifying paragraphs).
	Skipped int
	// Records is the number of records emitted.
	Records int
	// ChapterTally counts emitted records per chapter.
	ChapterTally map[int]int
}

// docEvent is one element of interest in document order: either a
// citation marker or a commentary container.
type docEvent struct {
	marker    *markerInfo
	container *xml.Node
}

type markerInfo struct {
	passage string
	parsed  string
}

// Extract parses a ThML document and returns the commentary records
// for the given book, in document order. Malformed markers are
// silently skipped and tallied in the report; only a parse failure of
// the document itself is an error.
func Extract(data []byte, book books.Book, idPrefix string) ([]commentary.Record, *Report, error) {
	doc, err := xml.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse ThML: %w", err)
	}
	return extract(doc, book, idPrefix)
}

func extract(doc *xml.Document, book books.Book, idPrefix string) ([]commentary.Record, *Report, error) {
	events := collectEvents(doc)

	report := &Report{ChapterTally: make(map[int]int)}
	var records []commentary.Record

	for i, ev := range events {
		if ev.marker == nil {
			continue
		}
		report.Markers++

		r := ref.Parse(ev.marker.passage, ev.marker.parsed)
		if r == nil {
			continue
		}
		if r.Book != book.CCEL {
			continue
		}
		report.Matched++

		// The search window runs from this marker to the next one
		// (or document end); the first container inside it holds the
		// marker's commentary.
		container := nextContainer(events[i+1:])
		if container == nil {
			report.Skipped++
			continue
		}

		paragraphs := qualifyingParagraphs(container)
		if len(paragraphs) == 0 {
			report.Skipped++
			continue
		}

		rec := commentary.Record{
			ID:        recordID(idPrefix, book, r),
			Reference: book.Name + " " + r.Label(),
			Chapter:   r.Chapter,
			Verses:    commentary.VerseRange(r.Chapter, r.VerseStart, r.VerseEnd),
			Text:      strings.Join(paragraphs, "\n\n"),
			IsIntro:   r.IsIntro(),
		}
		records = append(records, rec)
		report.Records++
		report.ChapterTally[r.Chapter]++
	}

	return records, report, nil
}

// collectEvents walks the document once, recording citation markers
// and commentary containers in document order.
func collectEvents(doc *xml.Document) []docEvent {
	var events []docEvent
	doc.Walk(func(n *xml.Node) bool {
		switch {
		case n.Name() == "scripCom" && n.Attr("type") == "Commentary":
			events = append(events, docEvent{marker: &markerInfo{
				passage: n.Attr("passage"),
				parsed:  n.Attr("parsed"),
			}})
		case n.Name() == "div" && n.Attr("class") == "Commentary":
			events = append(events, docEvent{container: n})
		}
		return true
	})
	return events
}

// nextContainer returns the first container event before the next
// marker event, or nil if the window holds none.
func nextContainer(window []docEvent) *xml.Node {
	for _, ev := range window {
		if ev.marker != nil {
			return nil
		}
		if ev.container != nil {
			return ev.container
		}
	}
	return nil
}

// qualifyingParagraphs normalizes every paragraph block inside the
// container and drops fragments at or below the minimum length.
func qualifyingParagraphs(container *xml.Node) []string {
	nodes, err := container.XPath(".//p")
	if err != nil {
		return nil
	}
	var paragraphs []string
	for _, p := range nodes {
		text := markup.Normalize(p.InnerXML())
		if utf8.RuneCountInString(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// recordID derives the deterministic record id. Two markers at the
// same chapter and starting verse collide; last-extracted wins when
// indexed by id downstream.
func recordID(idPrefix string, book books.Book, r *ref.Reference) string {
	return fmt.Sprintf("%s_%s_%d_%d",
		idPrefix, strings.ToLower(book.CCEL), r.Chapter, r.VerseStart)
}
