package search

import "testing"

// TestResolveLongestMatch tests that the longest alias wins when a
// shorter alias is also a prefix of the query.
func TestResolveLongestMatch(t *testing.T) {
	r := NewResolver()

	m, ok := r.Resolve("1 corinthians 13:4")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Alias != "1 corinthians" {
		t.Errorf("alias: got %q, want 1 corinthians", m.Alias)
	}
	if m.Book != "1 Corinthians" {
		t.Errorf("book: got %q, want 1 Corinthians", m.Book)
	}
	if m.Remainder != "13:4" {
		t.Errorf("remainder: got %q, want 13:4", m.Remainder)
	}
}

// TestResolveBoundary tests the boundary rule: the character after the
// alias must be whitespace, a digit, a colon, or a period.
func TestResolveBoundary(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		query    string
		wantBook string
		wantOK   bool
	}{
		{"judges 3", "Judges", true},
		{"judges3", "Judges", true},   // digit boundary
		{"judg:2", "Judges", true},    // colon boundary
		{"heb. 11", "Hebrews", true},  // period boundary
		{"hebrews", "Hebrews", true},  // end of query
		{"hebrewsx 1", "", false},     // letter after alias is no boundary
		{"judgesx", "", false},
		{"nonsense query", "", false},
	}
	for _, tt := range tests {
		m, ok := r.Resolve(tt.query)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q): ok=%v, want %v", tt.query, ok, tt.wantOK)
			continue
		}
		if ok && m.Book != tt.wantBook {
			t.Errorf("Resolve(%q): book %q, want %q", tt.query, m.Book, tt.wantBook)
		}
	}
}

// TestResolveSynonyms tests the curated synonym aliases.
func TestResolveSynonyms(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		query string
		want  string
	}{
		{"he 11:1", "Hebrews"},
		{"re 21", "Revelation"},
		{"jdg 4", "Judges"},
	}
	for _, tt := range tests {
		m, ok := r.Resolve(tt.query)
		if !ok {
			t.Errorf("Resolve(%q): no match", tt.query)
			continue
		}
		if m.Book != tt.want {
			t.Errorf("Resolve(%q): got %q, want %q", tt.query, m.Book, tt.want)
		}
	}
}

// TestResolveNormalizesQuery tests lower-casing and trimming.
func TestResolveNormalizesQuery(t *testing.T) {
	r := NewResolver()
	m, ok := r.Resolve("  Romans 8:28  ")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Book != "Romans" || m.Remainder != "8:28" {
		t.Errorf("got %+v", m)
	}
}

// TestResolveEmpty tests that blank queries never match.
func TestResolveEmpty(t *testing.T) {
	r := NewResolver()
	if _, ok := r.Resolve("   "); ok {
		t.Error("blank query should not match")
	}
}
