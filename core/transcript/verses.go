package transcript

import (
	"regexp"
	"sort"
	"strconv"
)

// maxVerse caps where a range phrasing may end. A chapter never runs
// hundreds of verses; an end past the cap is a false-positive match
// (a year, a timestamp) masquerading as a range.
const maxVerse = 50

// Phrasing recognizes one way a speaker cites verses in running text.
// Implementations are swappable per corpus.
type Phrasing interface {
	// Name identifies the phrasing in reports and logs.
	Name() string
	// Scan returns every verse number the paragraph cites in this
	// phrasing, given the chapter under discussion.
	Scan(chapter int, paragraph string) []int
}

// patternPhrasing is a regexp-backed Phrasing. Capture-group indices
// document what each group means; zero means the group is absent.
type patternPhrasing struct {
	name    string
	pattern *regexp.Regexp
	// chapterGroup, when set, must capture the current chapter number
	// for the match to count.
	chapterGroup int
	startGroup   int
	endGroup     int
	// extraGroup captures a trailing "and N" clause naming one more
	// verse beyond the range.
	extraGroup int
}

func (p *patternPhrasing) Name() string { return p.name }

func (p *patternPhrasing) Scan(chapter int, paragraph string) []int {
	var verses []int
	for _, m := range p.pattern.FindAllStringSubmatch(paragraph, -1) {
		if p.chapterGroup > 0 {
			ch, err := strconv.Atoi(m[p.chapterGroup])
			if err != nil || ch != chapter {
				continue
			}
		}
		start, err := strconv.Atoi(m[p.startGroup])
		if err != nil {
			continue
		}
		end := start
		if p.endGroup > 0 && m[p.endGroup] != "" {
			if v, err := strconv.Atoi(m[p.endGroup]); err == nil {
				end = v
			}
		}
		if end > maxVerse {
			end = maxVerse
		}
		for v := start; v <= end; v++ {
			verses = append(verses, v)
		}
		if p.extraGroup > 0 && m[p.extraGroup] != "" {
			if v, err := strconv.Atoi(m[p.extraGroup]); err == nil {
				verses = append(verses, v)
			}
		}
	}
	return verses
}

// DefaultPhrasings is the phrasing table tuned for conversational
// video commentary:
//
//	verse-word     "verse 5", "verses 2-4 and 7"
//	chapter-colon  "5:12", "5:12-14" (chapter part must match)
//	preposition    "in verse 3", "at verse 3", "from verse 3"
//	abbreviated    "v. 5", "vv. 2-4"
func DefaultPhrasings() []Phrasing {
	return []Phrasing{
		&patternPhrasing{
			name:       "verse-word",
			pattern:    regexp.MustCompile(`(?i)\bverses?\s+(\d+)(?:\s*[–-]\s*(\d+))?(?:\s+and\s+(\d+))?`),
			startGroup: 1, endGroup: 2, extraGroup: 3,
		},
		&patternPhrasing{
			name:         "chapter-colon",
			pattern:      regexp.MustCompile(`\b(\d+):(\d+)(?:\s*[–-]\s*(\d+))?`),
			chapterGroup: 1, startGroup: 2, endGroup: 3,
		},
		&patternPhrasing{
			name:       "preposition",
			pattern:    regexp.MustCompile(`(?i)\b(?:in|at|from)\s+verse\s+(\d+)`),
			startGroup: 1,
		},
		&patternPhrasing{
			name:       "abbreviated",
			pattern:    regexp.MustCompile(`(?i)\bvv?\.\s*(\d+)(?:\s*[–-]\s*(\d+))?(?:\s+and\s+(\d+))?`),
			startGroup: 1, endGroup: 2, extraGroup: 3,
		},
	}
}

// scanVerses maps each cited verse to the set of paragraph indices
// citing it.
func scanVerses(chapter int, paras []string, phrasings []Phrasing) map[int]map[int]bool {
	cited := make(map[int]map[int]bool)
	for i, para := range paras {
		for _, p := range phrasings {
			for _, v := range p.Scan(chapter, para) {
				if cited[v] == nil {
					cited[v] = make(map[int]bool)
				}
				cited[v][i] = true
			}
		}
	}
	return cited
}

// verseGroup is a run of verses discussed together: its verses in
// ascending order and the union of their paragraphs.
type verseGroup struct {
	verses []int
	paras  map[int]bool
}

// groupVerses clusters cited verses. Verses sharing a paragraph land
// in one group, and any verse between a group's min and max that has
// its own paragraph mapping is absorbed too, to fixpoint. Groups come
// back ordered by their first verse.
func groupVerses(cited map[int]map[int]bool) []verseGroup {
	order := make([]int, 0, len(cited))
	for v := range cited {
		order = append(order, v)
	}
	sort.Ints(order)

	visited := make(map[int]bool)
	var groups []verseGroup
	for _, seed := range order {
		if visited[seed] {
			continue
		}
		members := map[int]bool{seed: true}
		paras := make(map[int]bool)
		for p := range cited[seed] {
			paras[p] = true
		}

		for changed := true; changed; {
			changed = false
			for _, v := range order {
				if members[v] {
					continue
				}
				if sharesParagraph(cited[v], paras) {
					members[v] = true
					for p := range cited[v] {
						paras[p] = true
					}
					changed = true
				}
			}
			lo, hi := span(members)
			for v := lo + 1; v < hi; v++ {
				if !members[v] && cited[v] != nil {
					members[v] = true
					for p := range cited[v] {
						paras[p] = true
					}
					changed = true
				}
			}
		}

		group := verseGroup{paras: paras}
		for v := range members {
			visited[v] = true
			group.verses = append(group.verses, v)
		}
		sort.Ints(group.verses)
		groups = append(groups, group)
	}
	return groups
}

func sharesParagraph(a, b map[int]bool) bool {
	for p := range a {
		if b[p] {
			return true
		}
	}
	return false
}

func span(members map[int]bool) (lo, hi int) {
	first := true
	for v := range members {
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}
	return lo, hi
}
