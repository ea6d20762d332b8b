package library

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/edydex/bible-study-tool/core/commentary"
	"github.com/edydex/bible-study-tool/internal/logging"
)

// Fetcher retrieves a work's JSON document by its registry data path
// (e.g. "/data/commentary/calvin/romans.json").
type Fetcher interface {
	Fetch(ctx context.Context, dataPath string) ([]byte, error)
}

// HTTPFetcher fetches data paths relative to a base URL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context, dataPath string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	url := strings.TrimSuffix(f.BaseURL, "/") + dataPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// FileFetcher resolves data paths under a local root directory. The
// leading "/data/" segment of a registry path names the root itself,
// so "/data/commentary/calvin/romans.json" reads
// Root/commentary/calvin/romans.json.
type FileFetcher struct {
	Root string
}

func (f *FileFetcher) Fetch(_ context.Context, dataPath string) ([]byte, error) {
	rel := strings.TrimPrefix(dataPath, "/data/")
	rel = strings.TrimPrefix(rel, "/")
	return os.ReadFile(filepath.Join(f.Root, filepath.FromSlash(rel)))
}

type loadResult struct {
	authorID string
	workID   string
	doc      *commentary.Document
}

// LoadBook fetches every unloaded work covering the book, all
// concurrently, and returns a new authors slice with the loaded data
// merged in. The input slice is never mutated. A work whose fetch or
// decode fails is logged and stays unloaded; other works are
// unaffected. Already-loaded works are never fetched again.
func LoadBook(ctx context.Context, fetcher Fetcher, authors []Author, book string) []Author {
	type target struct {
		authorID string
		workID   string
		dataPath string
	}
	var targets []target
	for _, a := range authors {
		for _, w := range a.Works {
			if w.Book == book && !w.Loaded && w.DataPath != "" {
				targets = append(targets, target{a.ID, w.ID, w.DataPath})
			}
		}
	}
	if len(targets) == 0 {
		return authors
	}

	var (
		mu      sync.Mutex
		results []loadResult
		wg      sync.WaitGroup
	)
	for _, t := range targets {
		wg.Add(1)
		go func(t target) {
			defer wg.Done()
			data, err := fetcher.Fetch(ctx, t.dataPath)
			if err != nil {
				logging.Warn("failed to load commentary",
					"dataPath", t.dataPath, "work", t.workID, "error", err)
				return
			}
			doc, err := commentary.Decode(data)
			if err != nil {
				logging.Warn("failed to decode commentary",
					"dataPath", t.dataPath, "work", t.workID, "error", err)
				return
			}
			mu.Lock()
			results = append(results, loadResult{t.authorID, t.workID, doc})
			mu.Unlock()
		}(t)
	}
	wg.Wait()

	return merge(authors, results)
}

// merge clones the authors slice, replacing each fetched work with a
// loaded copy.
func merge(authors []Author, results []loadResult) []Author {
	updated := make([]Author, len(authors))
	for i, a := range authors {
		works := make([]Work, len(a.Works))
		copy(works, a.Works)
		for j := range works {
			for _, r := range results {
				if r.authorID != a.ID || r.workID != works[j].ID {
					continue
				}
				works[j].Loaded = true
				works[j].Introduction = r.doc.Introduction
				works[j].Commentaries = r.doc.Commentaries
				if works[j].Introduction == nil {
					works[j].Introduction = []commentary.Section{}
				}
				if works[j].Commentaries == nil {
					works[j].Commentaries = []commentary.Record{}
				}
				if r.doc.Metadata.OriginalURL != "" {
					works[j].OriginalURL = r.doc.Metadata.OriginalURL
				}
			}
		}
		updated[i] = a
		updated[i].Works = works
	}
	return updated
}
