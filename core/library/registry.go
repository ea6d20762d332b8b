// Package library is the registry of commentary authors and works,
// with lazy loading of each work's JSON data the first time a book is
// opened.
package library

import (
	"fmt"

	"github.com/edydex/bible-study-tool/core/books"
	"github.com/edydex/bible-study-tool/core/commentary"
)

// Work is one commentary work by an author, covering a single book.
// Works with a DataPath start unloaded and are filled in by LoadBook;
// sample works ship with their records inline and Loaded set.
type Work struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Book      string `json:"book"`
	Type      string `json:"type"`
	Year      string `json:"year,omitempty"`
	DataPath  string `json:"dataPath,omitempty"`
	Source    string `json:"source,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
	// OriginalURL points at the work's original medium (a video, an
	// audio series) when the loaded metadata carries one.
	OriginalURL  string               `json:"originalUrl,omitempty"`
	Loaded       bool                 `json:"loaded"`
	Introduction []commentary.Section `json:"introduction"`
	Commentaries []commentary.Record  `json:"commentaries"`
}

// Author groups an author's works. Bundled marks authors whose full
// corpus ships with the application, as opposed to sample excerpts.
type Author struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Bio     string `json:"bio"`
	Bundled bool   `json:"bundled"`
	Works   []Work `json:"works"`
}

// calvinBooks are the books Calvin's commentaries cover. He wrote on
// nearly the whole canon; the historical books from Judges through
// Esther, the wisdom books other than Psalms, 2-3 John, and Revelation
// have no commentary of his.
var calvinBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Psalms", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos", "Obadiah", "Jonah",
	"Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai", "Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts", "Romans",
	"1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians",
	"1 Timothy", "2 Timothy", "Titus", "Philemon",
	"Hebrews", "James", "1 Peter", "2 Peter", "1 John", "Jude",
}

// Builtin returns a fresh copy of the built-in registry. Callers own
// the returned slice; loading never mutates it in place.
func Builtin() []Author {
	calvinWorks := make([]Work, len(calvinBooks))
	for i, book := range calvinBooks {
		slug := books.Slug(book)
		calvinWorks[i] = Work{
			ID:        "calvin-" + slug,
			Title:     "Commentary on " + book,
			Book:      book,
			Type:      "Written Commentary",
			Year:      "1540s-1560s",
			DataPath:  fmt.Sprintf("/data/commentary/calvin/%s.json", slug),
			Source:    "CCEL (Public Domain)",
			SourceURL: "https://ccel.org/ccel/calvin",
		}
	}

	return []Author{
		{
			ID:      "john-calvin",
			Name:    "John Calvin",
			Bio:     "French-Swiss Reformer (1509–1564). His verse-by-verse commentaries cover nearly every book of the Bible and remain foundational works of Protestant theology.",
			Bundled: true,
			Works:   calvinWorks,
		},
		{
			ID:      "gavin-ortlund",
			Name:    "Gavin Ortlund",
			Bio:     "Pastor and theologian, author of theological works and host of Truth Unites YouTube channel.",
			Bundled: true,
			Works: []Work{{
				ID:       "ortlund-every-chapter",
				Title:    "Explaining Every Chapter of Revelation",
				Book:     "Revelation",
				Type:     "Video Commentary",
				Year:     "2024",
				DataPath: "/data/commentary/ortlund/revelation.json",
				Source:   "YouTube",
			}},
		},
		{
			ID:      "john-macarthur",
			Name:    "John MacArthur",
			Bio:     "Pastor of Grace Community Church and author of the MacArthur Study Bible.",
			Bundled: false,
			Works:   macarthurSamples(),
		},
		{
			ID:      "rc-sproul",
			Name:    "R.C. Sproul",
			Bio:     "Founder of Ligonier Ministries and author of numerous theological works.",
			Bundled: false,
			Works:   sproulSamples(),
		},
	}
}

// AuthorsForBook returns the authors having at least one work
// covering the book.
func AuthorsForBook(authors []Author, book string) []Author {
	var out []Author
	for _, a := range authors {
		for _, w := range a.Works {
			if w.Book == book {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// WorksForBook returns an author's works covering the book.
func WorksForBook(authors []Author, authorID, book string) []Work {
	for _, a := range authors {
		if a.ID != authorID {
			continue
		}
		var out []Work
		for _, w := range a.Works {
			if w.Book == book {
				out = append(out, w)
			}
		}
		return out
	}
	return nil
}

// CommentariesForChapter returns a work's records for the chapter.
func CommentariesForChapter(authors []Author, authorID, workID string, chapter int) []commentary.Record {
	w := findWork(authors, authorID, workID)
	if w == nil {
		return nil
	}
	var out []commentary.Record
	for _, c := range w.Commentaries {
		if c.Chapter == chapter {
			out = append(out, c)
		}
	}
	return out
}

// HasAnyCommentary reports whether any loaded work covers the verse.
// A record with a nil verse list covers its whole chapter.
func HasAnyCommentary(authors []Author, book string, chapter, verse int) bool {
	for _, a := range authors {
		for _, w := range a.Works {
			if w.Book != book {
				continue
			}
			for _, c := range w.Commentaries {
				if c.Chapter != chapter {
					continue
				}
				if c.Verses == nil || coversVerse(c, chapter, verse) {
					return true
				}
			}
		}
	}
	return false
}

// CommentaryForVerse returns the first record in the work that names
// the verse explicitly, or nil.
func CommentaryForVerse(authors []Author, authorID, workID string, chapter, verse int) *commentary.Record {
	w := findWork(authors, authorID, workID)
	if w == nil {
		return nil
	}
	for i := range w.Commentaries {
		if w.Commentaries[i].Verses != nil && coversVerse(w.Commentaries[i], chapter, verse) {
			return &w.Commentaries[i]
		}
	}
	return nil
}

func findWork(authors []Author, authorID, workID string) *Work {
	for i := range authors {
		if authors[i].ID != authorID {
			continue
		}
		for j := range authors[i].Works {
			if authors[i].Works[j].ID == workID {
				return &authors[i].Works[j]
			}
		}
	}
	return nil
}

func coversVerse(c commentary.Record, chapter, verse int) bool {
	for _, v := range c.Verses {
		if v.Chapter == chapter && v.Verse == verse {
			return true
		}
	}
	return false
}
