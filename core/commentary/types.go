// Package commentary defines the structured commentary data model and
// its JSON persistence. A Document is built once, in memory, by an
// extraction pass and written as a single JSON file per (author, book)
// work; consumers treat the file as immutable.
package commentary

import "fmt"

// VerseRef identifies a single verse covered by a record.
type VerseRef struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// Record is one unit of commentary: a verse, verse range, chapter
// introduction, or chapter overview, with normalized prose text.
type Record struct {
	// ID is unique within a work, derived from chapter and starting
	// verse. Two markers at the same position collide; when records
	// are indexed by ID downstream, the last one extracted wins.
	ID string `json:"id"`

	// Reference is the human-readable label (e.g., "Romans 1:1-7").
	Reference string `json:"reference"`

	// Timestamp is the section timestamp for video-transcript works.
	Timestamp string `json:"timestamp,omitempty"`

	Chapter int `json:"chapter"`

	// Verses enumerates every verse the record covers. Nil means the
	// record applies to the whole chapter with no verse granularity.
	Verses []VerseRef `json:"verses"`

	// Text is normalized prose; paragraphs are joined by a blank line.
	Text string `json:"text"`

	// IsIntro marks a chapter introduction (verse 0 sentinel).
	IsIntro bool `json:"isIntro,omitempty"`

	// OriginalSection names the source section when a multi-chapter
	// section was split across several records.
	OriginalSection string `json:"originalSection,omitempty"`
}

// Section is an introduction section of a work (material that belongs
// to no particular chapter).
type Section struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp,omitempty"`
	Text      string `json:"text"`
}

// Metadata describes the work a document was extracted from.
type Metadata struct {
	Author      string `json:"author"`
	AuthorID    string `json:"authorId,omitempty"`
	WorkID      string `json:"workId,omitempty"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Year        string `json:"year,omitempty"`
	Translation string `json:"translation,omitempty"`
	Source      string `json:"source,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	OriginalURL string `json:"originalUrl,omitempty"`
	License     string `json:"license,omitempty"`
	Book        string `json:"book,omitempty"`

	// SourceSHA256 and SourceBLAKE3 are hashes of the raw input
	// artifact, recorded so consumers can detect stale cached copies.
	SourceSHA256 string `json:"sourceSha256,omitempty"`
	SourceBLAKE3 string `json:"sourceBlake3,omitempty"`
}

// Document is the persisted JSON schema shared by both pipeline
// variants.
type Document struct {
	Metadata     Metadata  `json:"metadata"`
	Introduction []Section `json:"introduction"`
	Commentaries []Record  `json:"commentaries"`
}

// VerseRange enumerates the verses start..end of a chapter, or the
// single verse-0 entry when start is the chapter-introduction
// sentinel.
func VerseRange(chapter, start, end int) []VerseRef {
	if start == 0 {
		return []VerseRef{{Chapter: chapter, Verse: 0}}
	}
	verses := make([]VerseRef, 0, end-start+1)
	for v := start; v <= end; v++ {
		verses = append(verses, VerseRef{Chapter: chapter, Verse: v})
	}
	return verses
}

// ChapterTally counts records per chapter, for operator reports.
func (d *Document) ChapterTally() map[int]int {
	tally := make(map[int]int)
	for _, r := range d.Commentaries {
		tally[r.Chapter]++
	}
	return tally
}

// Sample returns a record suitable for a preview: the first
// non-introduction record, or the first record when only
// introductions exist.
func (d *Document) Sample() (Record, bool) {
	if len(d.Commentaries) == 0 {
		return Record{}, false
	}
	for _, r := range d.Commentaries {
		if !r.IsIntro {
			return r, true
		}
	}
	return d.Commentaries[0], true
}

// String implements fmt.Stringer for log output.
func (v VerseRef) String() string {
	return fmt.Sprintf("%d:%d", v.Chapter, v.Verse)
}
