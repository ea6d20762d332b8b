package thml

import (
	"strings"
	"testing"

	"github.com/edydex/bible-study-tool/core/books"
)

func romans(t *testing.T) books.Book {
	t.Helper()
	b, ok := books.ByName("Romans")
	if !ok {
		t.Fatal("Romans should be known")
	}
	return b
}

// TestExtractSingleRecord tests the basic marker-then-container case:
// two qualifying paragraphs joined by a blank line.
func TestExtractSingleRecord(t *testing.T) {
	doc := `<?xml version="1.0"?>
<ThML>
  <p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
  <div class="Commentary">
    <p>Paul, a servant of Jesus Christ.</p>
    <p>Called to be an apostle.</p>
  </div>
</ThML>`

	records, report, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.ID != "calvin_rom_1_1" {
		t.Errorf("id: got %q, want calvin_rom_1_1", rec.ID)
	}
	if rec.Reference != "Romans 1:1" {
		t.Errorf("reference: got %q, want Romans 1:1", rec.Reference)
	}
	if rec.Chapter != 1 {
		t.Errorf("chapter: got %d, want 1", rec.Chapter)
	}
	if len(rec.Verses) != 1 || rec.Verses[0].Chapter != 1 || rec.Verses[0].Verse != 1 {
		t.Errorf("verses: got %v, want [{1 1}]", rec.Verses)
	}
	want := "Paul, a servant of Jesus Christ.\n\nCalled to be an apostle."
	if rec.Text != want {
		t.Errorf("text: got %q, want %q", rec.Text, want)
	}
	if rec.IsIntro {
		t.Error("verse record should not be an introduction")
	}

	if report.Markers != 1 || report.Matched != 1 || report.Records != 1 || report.Skipped != 0 {
		t.Errorf("report: %+v", report)
	}
}

// TestExtractVerseRange tests that the hint's index-4 end verse
// expands the verse list.
func TestExtractVerseRange(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ro 5:3" parsed="|Rom|5|3|0|5"/></p>
  <div class="Commentary"><p>On tribulation and patience.</p></div>
</ThML>`

	records, _, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Reference != "Romans 5:3-5" {
		t.Errorf("reference: got %q, want Romans 5:3-5", rec.Reference)
	}
	if len(rec.Verses) != 3 {
		t.Errorf("verses: got %v, want 3 entries", rec.Verses)
	}
}

// TestExtractChapterIntro tests the verse-0 introduction sentinel.
func TestExtractChapterIntro(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ro 2" parsed="|Rom|2|0|0|0"/></p>
  <div class="Commentary"><p>The argument of the second chapter.</p></div>
</ThML>`

	records, _, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if !rec.IsIntro {
		t.Error("verse 0 should mark an introduction")
	}
	if !strings.Contains(rec.Reference, "(Introduction)") {
		t.Errorf("reference: got %q", rec.Reference)
	}
	if len(rec.Verses) != 1 || rec.Verses[0].Verse != 0 {
		t.Errorf("verses: got %v, want [{2 0}]", rec.Verses)
	}
}

// TestExtractFiltersOtherBooks tests that markers resolving to a
// different book are dropped without affecting the report's skip count.
func TestExtractFiltersOtherBooks(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ga 1:1" parsed="|Gal|1|1|0|0"/></p>
  <div class="Commentary"><p>Commentary on Galatians, not wanted here.</p></div>
  <p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
  <div class="Commentary"><p>Commentary on Romans, wanted.</p></div>
</ThML>`

	records, report, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Reference != "Romans 1:1" {
		t.Errorf("kept the wrong record: %q", records[0].Reference)
	}
	if report.Markers != 2 || report.Matched != 1 {
		t.Errorf("report: %+v", report)
	}
}

// TestExtractSkipsMarkerWithoutContainer tests that a marker followed
// by another marker (no container between) is skipped, not fatal.
func TestExtractSkipsMarkerWithoutContainer(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
  <p><scripCom type="Commentary" passage="Ro 1:2" parsed="|Rom|1|2|0|0"/></p>
  <div class="Commentary"><p>Only the second marker owns this.</p></div>
</ThML>`

	records, report, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ID != "calvin_rom_1_2" {
		t.Errorf("id: got %q, want calvin_rom_1_2", records[0].ID)
	}
	if report.Skipped != 1 {
		t.Errorf("skipped: got %d, want 1", report.Skipped)
	}
}

// TestExtractDropsShortParagraphs tests the stray-fragment filter: a
// container whose paragraphs are all five characters or fewer yields
// no record.
func TestExtractDropsShortParagraphs(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
  <div class="Commentary"><p>1.</p><p>  *  </p></div>
</ThML>`

	records, report, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if report.Skipped != 1 {
		t.Errorf("skipped: got %d, want 1", report.Skipped)
	}
}

// TestExtractNormalizesText tests that footnotes are removed and
// scripture references unwrapped inside container paragraphs.
func TestExtractNormalizesText(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
  <div class="Commentary">
    <p>He cites <scripRef passage="Ga 1:1">Galatians 1:1</scripRef><note>see the Latin edition</note> directly.</p>
  </div>
</ThML>`

	records, _, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := "He cites Galatians 1:1 directly."
	if records[0].Text != want {
		t.Errorf("text: got %q, want %q", records[0].Text, want)
	}
}

// TestExtractChapterTally tests the per-chapter report tally.
func TestExtractChapterTally(t *testing.T) {
	doc := `<ThML>
  <p><scripCom type="Commentary" passage="Ro 1:1" parsed="|Rom|1|1|0|0"/></p>
  <div class="Commentary"><p>First chapter, first verse.</p></div>
  <p><scripCom type="Commentary" passage="Ro 1:2" parsed="|Rom|1|2|0|0"/></p>
  <div class="Commentary"><p>First chapter, second verse.</p></div>
  <p><scripCom type="Commentary" passage="Ro 2:1" parsed="|Rom|2|1|0|0"/></p>
  <div class="Commentary"><p>Second chapter opens.</p></div>
</ThML>`

	_, report, err := Extract([]byte(doc), romans(t), "calvin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if report.ChapterTally[1] != 2 || report.ChapterTally[2] != 1 {
		t.Errorf("tally: got %v, want map[1:2 2:1]", report.ChapterTally)
	}
}
