package commentary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestVerseRange tests verse enumeration, including the chapter-intro
// sentinel.
func TestVerseRange(t *testing.T) {
	got := VerseRange(1, 2, 4)
	want := []VerseRef{{1, 2}, {1, 3}, {1, 4}}
	if len(got) != len(want) {
		t.Fatalf("got %d verses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("verse %d: got %v, want %v", i, got[i], want[i])
		}
	}

	intro := VerseRange(3, 0, 0)
	if len(intro) != 1 || intro[0] != (VerseRef{3, 0}) {
		t.Errorf("intro range: got %v, want [{3 0}]", intro)
	}
}

// TestChapterTally tests per-chapter record counting.
func TestChapterTally(t *testing.T) {
	doc := &Document{Commentaries: []Record{
		{Chapter: 1}, {Chapter: 1}, {Chapter: 2},
	}}
	tally := doc.ChapterTally()
	if tally[1] != 2 || tally[2] != 1 {
		t.Errorf("tally: got %v, want map[1:2 2:1]", tally)
	}
}

// TestSample tests that the preview skips introduction records.
func TestSample(t *testing.T) {
	doc := &Document{Commentaries: []Record{
		{ID: "a", IsIntro: true},
		{ID: "b"},
	}}
	sample, ok := doc.Sample()
	if !ok || sample.ID != "b" {
		t.Errorf("sample: got %q, want b", sample.ID)
	}

	empty := &Document{}
	if _, ok := empty.Sample(); ok {
		t.Error("empty document should have no sample")
	}
}

// TestWriteReadFile tests the JSON round trip through the filesystem,
// including directory creation and the nil-slice normalization.
func TestWriteReadFile(t *testing.T) {
	doc := &Document{
		Metadata: Metadata{
			Author: "John Calvin",
			Book:   "Romans",
		},
		Commentaries: []Record{
			{
				ID:        "calvin_rom_1_1",
				Reference: "Romans 1:1",
				Chapter:   1,
				Verses:    VerseRange(1, 1, 1),
				Text:      "Paul, a servant of Jesus Christ.",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "romans.json")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	// Nil introduction serializes as an empty array, not null.
	if strings.Contains(string(data), `"introduction": null`) {
		t.Error("introduction should serialize as [], not null")
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Metadata.Author != "John Calvin" {
		t.Errorf("author: got %q", got.Metadata.Author)
	}
	if len(got.Commentaries) != 1 || got.Commentaries[0].ID != "calvin_rom_1_1" {
		t.Errorf("records did not survive the round trip: %+v", got.Commentaries)
	}
}

// TestDecodeRejectsGarbage tests the decode error path.
func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("expected a decode error")
	}
}
