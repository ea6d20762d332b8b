// Package books holds the canonical Bible book table used across the
// pipeline: canonical names, display abbreviations, and the CCEL
// abbreviations that appear in ThML "parsed" attributes.
package books

import (
	"errors"
	"strings"
)

// ErrUnknownBook indicates a book name that is not in the canonical table.
var ErrUnknownBook = errors.New("unknown book")

// Book describes one book of the Protestant 66-book canon.
type Book struct {
	// Name is the full canonical English name (e.g., "1 Corinthians").
	Name string
	// Abbr is the common display abbreviation (e.g., "1 Cor").
	Abbr string
	// CCEL is the abbreviation used by CCEL ThML parsed attributes
	// (e.g., "1Cor").
	CCEL string
	// Order is the 1-based canonical position.
	Order int
}

// canon lists all 66 books in canonical order.
var canon = []Book{
	{Name: "Genesis", Abbr: "Gen", CCEL: "Gen"},
	{Name: "Exodus", Abbr: "Exod", CCEL: "Exod"},
	{Name: "Leviticus", Abbr: "Lev", CCEL: "Lev"},
	{Name: "Numbers", Abbr: "Num", CCEL: "Num"},
	{Name: "Deuteronomy", Abbr: "Deut", CCEL: "Deut"},
	{Name: "Joshua", Abbr: "Josh", CCEL: "Josh"},
	{Name: "Judges", Abbr: "Judg", CCEL: "Judg"},
	{Name: "Ruth", Abbr: "Ruth", CCEL: "Ruth"},
	{Name: "1 Samuel", Abbr: "1 Sam", CCEL: "1Sam"},
	{Name: "2 Samuel", Abbr: "2 Sam", CCEL: "2Sam"},
	{Name: "1 Kings", Abbr: "1 Kgs", CCEL: "1Kgs"},
	{Name: "2 Kings", Abbr: "2 Kgs", CCEL: "2Kgs"},
	{Name: "1 Chronicles", Abbr: "1 Chr", CCEL: "1Chr"},
	{Name: "2 Chronicles", Abbr: "2 Chr", CCEL: "2Chr"},
	{Name: "Ezra", Abbr: "Ezra", CCEL: "Ezra"},
	{Name: "Nehemiah", Abbr: "Neh", CCEL: "Neh"},
	{Name: "Esther", Abbr: "Esth", CCEL: "Esther"},
	{Name: "Job", Abbr: "Job", CCEL: "Job"},
	{Name: "Psalms", Abbr: "Ps", CCEL: "Ps"},
	{Name: "Proverbs", Abbr: "Prov", CCEL: "Prov"},
	{Name: "Ecclesiastes", Abbr: "Eccl", CCEL: "Eccl"},
	{Name: "Song of Solomon", Abbr: "Song", CCEL: "Song"},
	{Name: "Isaiah", Abbr: "Isa", CCEL: "Isa"},
	{Name: "Jeremiah", Abbr: "Jer", CCEL: "Jer"},
	{Name: "Lamentations", Abbr: "Lam", CCEL: "Lam"},
	{Name: "Ezekiel", Abbr: "Ezek", CCEL: "Ezek"},
	{Name: "Daniel", Abbr: "Dan", CCEL: "Dan"},
	{Name: "Hosea", Abbr: "Hos", CCEL: "Hos"},
	{Name: "Joel", Abbr: "Joel", CCEL: "Joel"},
	{Name: "Amos", Abbr: "Amos", CCEL: "Amos"},
	{Name: "Obadiah", Abbr: "Obad", CCEL: "Obad"},
	{Name: "Jonah", Abbr: "Jonah", CCEL: "Jonah"},
	{Name: "Micah", Abbr: "Mic", CCEL: "Mic"},
	{Name: "Nahum", Abbr: "Nah", CCEL: "Nah"},
	{Name: "Habakkuk", Abbr: "Hab", CCEL: "Hab"},
	{Name: "Zephaniah", Abbr: "Zeph", CCEL: "Zeph"},
	{Name: "Haggai", Abbr: "Hag", CCEL: "Hag"},
	{Name: "Zechariah", Abbr: "Zech", CCEL: "Zech"},
	{Name: "Malachi", Abbr: "Mal", CCEL: "Mal"},
	{Name: "Matthew", Abbr: "Matt", CCEL: "Matt"},
	{Name: "Mark", Abbr: "Mark", CCEL: "Mark"},
	{Name: "Luke", Abbr: "Luke", CCEL: "Luke"},
	{Name: "John", Abbr: "John", CCEL: "John"},
	{Name: "Acts", Abbr: "Acts", CCEL: "Acts"},
	{Name: "Romans", Abbr: "Rom", CCEL: "Rom"},
	{Name: "1 Corinthians", Abbr: "1 Cor", CCEL: "1Cor"},
	{Name: "2 Corinthians", Abbr: "2 Cor", CCEL: "2Cor"},
	{Name: "Galatians", Abbr: "Gal", CCEL: "Gal"},
	{Name: "Ephesians", Abbr: "Eph", CCEL: "Eph"},
	{Name: "Philippians", Abbr: "Phil", CCEL: "Phil"},
	{Name: "Colossians", Abbr: "Col", CCEL: "Col"},
	{Name: "1 Thessalonians", Abbr: "1 Thess", CCEL: "1Thess"},
	{Name: "2 Thessalonians", Abbr: "2 Thess", CCEL: "2Thess"},
	{Name: "1 Timothy", Abbr: "1 Tim", CCEL: "1Tim"},
	{Name: "2 Timothy", Abbr: "2 Tim", CCEL: "2Tim"},
	{Name: "Titus", Abbr: "Titus", CCEL: "Titus"},
	{Name: "Philemon", Abbr: "Phlm", CCEL: "Phlm"},
	{Name: "Hebrews", Abbr: "Heb", CCEL: "Heb"},
	{Name: "James", Abbr: "Jas", CCEL: "Jas"},
	{Name: "1 Peter", Abbr: "1 Pet", CCEL: "1Pet"},
	{Name: "2 Peter", Abbr: "2 Pet", CCEL: "2Pet"},
	{Name: "1 John", Abbr: "1 John", CCEL: "1John"},
	{Name: "2 John", Abbr: "2 John", CCEL: "2John"},
	{Name: "3 John", Abbr: "3 John", CCEL: "3John"},
	{Name: "Jude", Abbr: "Jude", CCEL: "Jude"},
	{Name: "Revelation", Abbr: "Rev", CCEL: "Rev"},
}

// citationAbbrevs maps the short abbreviations CCEL uses inside scripCom
// passage text (e.g., "Ro 1:1") to the canonical CCEL abbreviation.
// These differ from the parsed-attribute abbreviations above.
var citationAbbrevs = map[string]string{
	"Ge": "Gen", "Ex": "Exod", "Le": "Lev", "Nu": "Num", "De": "Deut",
	"Jos": "Josh", "Jud": "Judg", "Ru": "Ruth",
	"1Sa": "1Sam", "2Sa": "2Sam", "1Ki": "1Kgs", "2Ki": "2Kgs",
	"1Ch": "1Chr", "2Ch": "2Chr", "Ezr": "Ezra", "Ne": "Neh",
	"Es": "Esther", "Ps": "Ps", "Pr": "Prov", "Ec": "Eccl",
	"So": "Song", "Isa": "Isa", "Jer": "Jer", "La": "Lam",
	"Eze": "Ezek", "Da": "Dan", "Ho": "Hos", "Joe": "Joel",
	"Am": "Amos", "Ob": "Obad", "Jon": "Jonah", "Mic": "Mic",
	"Na": "Nah", "Hab": "Hab", "Zep": "Zeph", "Hag": "Hag",
	"Zec": "Zech", "Mal": "Mal",
	"Mt": "Matt", "Mr": "Mark", "Lu": "Luke", "Joh": "John",
	"Ac": "Acts", "Ro": "Rom", "1Co": "1Cor", "2Co": "2Cor",
	"Ga": "Gal", "Eph": "Eph", "Php": "Phil", "Col": "Col",
	"1Th": "1Thess", "2Th": "2Thess", "1Ti": "1Tim", "2Ti": "2Tim",
	"Tit": "Titus", "Phm": "Phlm", "Heb": "Heb",
	"Jam": "Jas", "1Pe": "1Pet", "2Pe": "2Pet", "1Jo": "1John",
	"2Jo": "2John", "3Jo": "3John", "Jude": "Jude", "Re": "Rev",
}

// searchSynonyms are hand-curated extra aliases accepted in search
// queries beyond full names and display abbreviations.
var searchSynonyms = map[string]string{
	"he": "Hebrews", "heb": "Hebrews", "hebrews": "Hebrews",
	"judges": "Judges", "judg": "Judges", "jdg": "Judges",
	"revelation": "Revelation", "rev": "Revelation", "re": "Revelation",
}

var (
	byName map[string]Book
	byCCEL map[string]Book
)

func init() {
	byName = make(map[string]Book, len(canon))
	byCCEL = make(map[string]Book, len(canon))
	for i := range canon {
		canon[i].Order = i + 1
		byName[canon[i].Name] = canon[i]
		byCCEL[canon[i].CCEL] = canon[i]
	}
}

// Canon returns the 66 books in canonical order.
func Canon() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}

// ByName looks up a book by its full canonical name.
func ByName(name string) (Book, bool) {
	b, ok := byName[name]
	return b, ok
}

// ByCCEL looks up a book by its CCEL parsed-attribute abbreviation.
func ByCCEL(abbrev string) (Book, bool) {
	b, ok := byCCEL[abbrev]
	return b, ok
}

// Names returns all canonical book names in order. Used to report the
// allow-list when a CLI is given an unrecognized book.
func Names() []string {
	out := make([]string, len(canon))
	for i, b := range canon {
		out[i] = b.Name
	}
	return out
}

// Slug converts a book name to its output-file slug:
// lowercased with whitespace runs replaced by dashes.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// NormalizeCitation maps a book token found in free citation text
// ("Ro", "1Co", "Romans") to its canonical CCEL abbreviation. Unknown
// tokens pass through unchanged; a missing mapping is a degraded
// identity mapping, never an error.
func NormalizeCitation(token string) string {
	token = strings.TrimSpace(token)
	if ccel, ok := citationAbbrevs[token]; ok {
		return ccel
	}
	compact := strings.Join(strings.Fields(token), "")
	if ccel, ok := citationAbbrevs[compact]; ok {
		return ccel
	}
	if b, ok := byName[token]; ok {
		return b.CCEL
	}
	return token
}

// Aliases returns the search alias table: every full name, display
// abbreviation, and CCEL abbreviation lowercased, plus the curated
// synonyms, each mapped to the canonical book name. The returned map
// is a fresh copy; the underlying tables are immutable.
func Aliases() map[string]string {
	out := make(map[string]string, 3*len(canon)+len(searchSynonyms))
	for _, b := range canon {
		out[strings.ToLower(b.Name)] = b.Name
		out[strings.ToLower(b.Abbr)] = b.Name
		out[strings.ToLower(b.CCEL)] = b.Name
	}
	for alias, name := range searchSynonyms {
		out[alias] = name
	}
	return out
}
