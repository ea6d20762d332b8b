package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/edydex/bible-study-tool/core/books"
	"github.com/edydex/bible-study-tool/core/library"
	"github.com/edydex/bible-study-tool/core/search"
	"github.com/edydex/bible-study-tool/internal/logging"
)

// maxQueryLen caps the search query length accepted by the API.
const maxQueryLen = 256

// StudyConfig configures the study data server.
type StudyConfig struct {
	// DataDir is the directory holding the generated JSON data tree
	// (served under /data/).
	DataDir string
	// AllowedOrigins restricts CORS; empty allows all.
	AllowedOrigins []string
}

// Study serves the generated commentary data and the search API. The
// author registry is loaded lazily per book from DataDir and cached.
type Study struct {
	cfg      StudyConfig
	resolver *search.Resolver

	mu      sync.Mutex
	authors []library.Author
}

// NewStudy builds the study server.
func NewStudy(cfg StudyConfig) *Study {
	return &Study{
		cfg:      cfg,
		resolver: search.NewResolver(),
		authors:  library.Builtin(),
	}
}

// Handler returns the full middleware-wrapped handler.
func (s *Study) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/data/", http.StripPrefix("/data/",
		http.FileServer(http.Dir(s.cfg.DataDir))))
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/books", s.handleBooks)
	mux.HandleFunc("/api/authors", s.handleAuthors)

	var h http.Handler = mux
	h = SecurityHeadersWithCSP(APICSPConfig(), h)
	h = CORSMiddlewareWithConfig(CORSConfig{AllowedOrigins: s.cfg.AllowedOrigins}, h)
	h = logging.CombinedMiddleware(h)
	return h
}

// searchResponse is the /api/search payload. Match is null when no
// alias matched; the client then falls back to full-text search.
type searchResponse struct {
	Query    string        `json:"query"`
	Match    *search.Match `json:"match"`
	Fallback bool          `json:"fallback"`
}

func (s *Study) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	query := LimitStringLength(SanitizeUserInput(r.URL.Query().Get("q")), maxQueryLen)
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}

	match, ok := s.resolver.Resolve(query)
	writeJSON(w, searchResponse{Query: query, Match: match, Fallback: !ok})
}

func (s *Study) handleBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, books.Names())
}

// handleAuthors returns the author registry. With ?book=, works
// covering that book are loaded from DataDir first and the result is
// filtered to authors covering it.
func (s *Study) handleAuthors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	book := strings.TrimSpace(r.URL.Query().Get("book"))
	if book == "" {
		s.mu.Lock()
		authors := s.authors
		s.mu.Unlock()
		writeJSON(w, authors)
		return
	}
	if _, ok := books.ByName(book); !ok {
		http.Error(w, "unknown book", http.StatusNotFound)
		return
	}

	fetcher := &library.FileFetcher{Root: s.cfg.DataDir}
	s.mu.Lock()
	s.authors = library.LoadBook(r.Context(), fetcher, s.authors, book)
	authors := library.AuthorsForBook(s.authors, book)
	s.mu.Unlock()
	writeJSON(w, authors)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}
