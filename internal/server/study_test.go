package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/edydex/bible-study-tool/core/library"
	"github.com/edydex/bible-study-tool/core/search"
)

func newTestStudy(t *testing.T) (*Study, http.Handler) {
	t.Helper()
	s := NewStudy(StudyConfig{DataDir: t.TempDir()})
	return s, s.Handler()
}

// TestStudySearchMatch tests that a recognized book alias resolves.
func TestStudySearchMatch(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/search?q=romans+8:28", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var resp struct {
		Query    string        `json:"query"`
		Match    *search.Match `json:"match"`
		Fallback bool          `json:"fallback"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Fallback {
		t.Error("expected a match, not a fallback")
	}
	if resp.Match == nil || resp.Match.Book != "Romans" {
		t.Errorf("match: %+v", resp.Match)
	}
	if resp.Match != nil && resp.Match.Remainder != "8:28" {
		t.Errorf("remainder: got %q, want 8:28", resp.Match.Remainder)
	}
}

// TestStudySearchFallback tests that an unrecognized query flags the
// full-text fallback with a null match.
func TestStudySearchFallback(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/search?q=love+your+neighbor", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var resp struct {
		Match    *search.Match `json:"match"`
		Fallback bool          `json:"fallback"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Fallback {
		t.Error("expected fallback for an unrecognized query")
	}
	if resp.Match != nil {
		t.Errorf("match should be null, got %+v", resp.Match)
	}
}

// TestStudySearchMissingQuery tests the 400 on a blank query.
func TestStudySearchMissingQuery(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/search", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

// TestStudySearchMethodNotAllowed tests that only GET is accepted.
func TestStudySearchMethodNotAllowed(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("POST", "/api/search?q=romans", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", w.Code)
	}
}

// TestStudyBooks tests the canonical book list endpoint.
func TestStudyBooks(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/books", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var names []string
	if err := json.NewDecoder(w.Body).Decode(&names); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(names) != 66 {
		t.Errorf("got %d books, want 66", len(names))
	}
	if names[0] != "Genesis" || names[65] != "Revelation" {
		t.Errorf("canon order: first %q, last %q", names[0], names[65])
	}
}

// TestStudyAuthors tests the unfiltered author registry endpoint.
func TestStudyAuthors(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/authors", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var authors []library.Author
	if err := json.NewDecoder(w.Body).Decode(&authors); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(authors) != 4 {
		t.Errorf("got %d authors, want 4", len(authors))
	}
}

// TestStudyAuthorsForBook tests the ?book= filter, including the lazy
// load of data files for that book.
func TestStudyAuthorsForBook(t *testing.T) {
	s := NewStudy(StudyConfig{DataDir: t.TempDir()})

	// Drop a loadable data file for the Ortlund Revelation work so the
	// handler's lazy load has something to pick up.
	dir := filepath.Join(s.cfg.DataDir, "commentary", "ortlund")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{"metadata":{"originalUrl":"https://example.com/rev"},"introduction":[],"commentaries":[{"id":"ortlund_0","reference":"Chapter 1","chapter":1,"text":"Opening."}]}`
	if err := os.WriteFile(filepath.Join(dir, "revelation.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	h := s.Handler()
	req := httptest.NewRequest("GET", "/api/authors?book=Revelation", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var authors []library.Author
	if err := json.NewDecoder(w.Body).Decode(&authors); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(authors) != 3 {
		t.Fatalf("got %d Revelation authors, want 3", len(authors))
	}

	var ortlund *library.Author
	for i := range authors {
		if authors[i].ID == "gavin-ortlund" {
			ortlund = &authors[i]
		}
	}
	if ortlund == nil {
		t.Fatal("Ortlund missing from Revelation authors")
	}
	if len(ortlund.Works) != 1 || !ortlund.Works[0].Loaded {
		t.Errorf("ortlund work should be loaded: %+v", ortlund.Works)
	}
	if ortlund.Works[0].OriginalURL != "https://example.com/rev" {
		t.Errorf("original url: %q", ortlund.Works[0].OriginalURL)
	}
}

// TestStudyAuthorsUnknownBook tests the 404 on a book outside the canon.
func TestStudyAuthorsUnknownBook(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/authors?book=Atlantis", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

// TestStudyServesDataFiles tests the /data/ static file tree.
func TestStudyServesDataFiles(t *testing.T) {
	s := NewStudy(StudyConfig{DataDir: t.TempDir()})
	if err := os.WriteFile(filepath.Join(s.cfg.DataDir, "probe.json"), []byte(`{"ok":true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	h := s.Handler()
	req := httptest.NewRequest("GET", "/data/probe.json", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if w.Body.String() != `{"ok":true}` {
		t.Errorf("body: %q", w.Body.String())
	}
}

// TestStudySecurityHeaders tests that the middleware chain sets the
// security headers on API responses.
func TestStudySecurityHeaders(t *testing.T) {
	_, h := newTestStudy(t)

	req := httptest.NewRequest("GET", "/api/books", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy should be set")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be set")
	}
}
