package transcript

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/edydex/bible-study-tool/core/books"
	"github.com/edydex/bible-study-tool/core/commentary"
	"github.com/edydex/bible-study-tool/core/ref"
	"github.com/edydex/bible-study-tool/internal/logging"
)

// minOverviewLen is the combined length unclaimed paragraphs must
// exceed to be worth an overview record of their own.
const minOverviewLen = 100

// Segmenter turns a transcript into introduction sections and
// chapter/verse commentary records. Segmentation never fails; missing
// structure degrades to coarser records.
type Segmenter struct {
	// IDPrefix seeds the sequential record ids (prefix_0, prefix_1, ...).
	IDPrefix string
	// Book is the book the transcript covers.
	Book books.Book
	// Phrasings overrides the verse-citation table. Nil means
	// DefaultPhrasings.
	Phrasings []Phrasing
}

// Report summarizes a segmentation pass.
type Report struct {
	// Sections is the number of titled sections found.
	Sections int
	// Intro is how many sections classified as introduction content.
	Intro int
	// Records is the number of commentary records emitted.
	Records int
	// ChapterTally counts emitted records per chapter.
	ChapterTally map[int]int
	// Dropped lists section titles that classified as neither
	// introduction nor chapter content.
	Dropped []string
}

// Segment splits the transcript into introduction sections and
// commentary records. Unclassifiable section titles are logged and
// dropped.
func (s *Segmenter) Segment(content string) ([]commentary.Section, []commentary.Record, *Report) {
	phrasings := s.Phrasings
	if phrasings == nil {
		phrasings = DefaultPhrasings()
	}

	report := &Report{ChapterTally: make(map[int]int)}
	idCounter := 0
	nextID := func() string {
		id := fmt.Sprintf("%s_%d", s.IDPrefix, idCounter)
		idCounter++
		return id
	}

	var intro []commentary.Section
	var records []commentary.Record

	for _, sec := range SplitSections(content) {
		report.Sections++

		if sec.IsIntro() {
			intro = append(intro, commentary.Section{
				ID:        nextID(),
				Title:     sec.Title,
				Timestamp: sec.Timestamp,
				Text:      sec.Text,
			})
			report.Intro++
			continue
		}

		start, end, ok := sec.ChapterRange()
		if !ok {
			logging.Warn("unclassifiable transcript section", "title", sec.Title)
			report.Dropped = append(report.Dropped, sec.Title)
			continue
		}

		if start == end {
			records = append(records,
				s.segmentChapter(start, sec.Text, sec.Timestamp, "", nextID, phrasings)...)
		} else {
			split := splitChapters(sec.Text, s.Book.Name, start, end)
			origin := fmt.Sprintf("Chapters %d–%d", start, end)
			for ch := start; ch <= end; ch++ {
				records = append(records,
					s.segmentChapter(ch, split[ch], sec.Timestamp, origin, nextID, phrasings)...)
			}
		}
	}

	report.Records = len(records)
	for _, r := range records {
		report.ChapterTally[r.Chapter]++
	}
	return intro, records, report
}

// segmentChapter emits the records for one chapter's text: verse
// groups plus an optional overview of unclaimed paragraphs, or a
// single chapter-level record when no verse citation is found.
func (s *Segmenter) segmentChapter(chapter int, text, timestamp, origin string, nextID func() string, phrasings []Phrasing) []commentary.Record {
	paras := paragraphs(text)
	cited := scanVerses(chapter, paras, phrasings)

	if len(cited) == 0 {
		return []commentary.Record{{
			ID:              nextID(),
			Reference:       fmt.Sprintf("Chapter %d", chapter),
			Timestamp:       timestamp,
			Chapter:         chapter,
			Text:            text,
			OriginalSection: origin,
		}}
	}

	groups := groupVerses(cited)

	claimed := make(map[int]bool)
	for _, g := range groups {
		for p := range g.paras {
			claimed[p] = true
		}
	}
	var unclaimed []string
	for i, p := range paras {
		if !claimed[i] {
			unclaimed = append(unclaimed, p)
		}
	}

	var records []commentary.Record
	if overview := strings.Join(unclaimed, "\n\n"); utf8.RuneCountInString(overview) > minOverviewLen {
		records = append(records, commentary.Record{
			ID:              nextID(),
			Reference:       fmt.Sprintf("Chapter %d Overview", chapter),
			Timestamp:       timestamp,
			Chapter:         chapter,
			Text:            overview,
			OriginalSection: origin,
		})
	}

	for _, g := range groups {
		r := ref.Reference{
			Chapter:    chapter,
			VerseStart: g.verses[0],
			VerseEnd:   g.verses[len(g.verses)-1],
		}
		label := r.Label()

		verses := make([]commentary.VerseRef, len(g.verses))
		for i, v := range g.verses {
			verses[i] = commentary.VerseRef{Chapter: chapter, Verse: v}
		}

		indices := make([]int, 0, len(g.paras))
		for p := range g.paras {
			indices = append(indices, p)
		}
		sort.Ints(indices)
		body := make([]string, len(indices))
		for i, p := range indices {
			body[i] = paras[p]
		}

		records = append(records, commentary.Record{
			ID:              nextID(),
			Reference:       s.Book.Name + " " + label,
			Timestamp:       timestamp,
			Chapter:         chapter,
			Verses:          verses,
			Text:            strings.Join(body, "\n\n"),
			OriginalSection: origin,
		})
	}
	return records
}
