package transcript

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// splitChapters assigns a multi-chapter section's text to each target
// chapter. Three strategies are attempted in order, first success
// wins:
//
//  1. explicit chapter-mention boundaries, when at least two distinct
//     target chapters are located in the paragraphs;
//  2. proportional contiguous paragraph groups, when there are at
//     least as many paragraphs as chapters;
//  3. full-text duplication to every chapter.
func splitChapters(text, book string, startChapter, endChapter int) map[int]string {
	paras := paragraphs(text)
	total := endChapter - startChapter + 1

	if result := splitByMentions(paras, book, startChapter, endChapter); result != nil {
		return result
	}

	if len(paras) >= total {
		result := make(map[int]string, total)
		for ch := startChapter; ch <= endChapter; ch++ {
			idx := ch - startChapter
			lo := idx * len(paras) / total
			hi := (idx + 1) * len(paras) / total
			result[ch] = strings.Join(paras[lo:hi], "\n\n")
		}
		return result
	}

	result := make(map[int]string, total)
	for ch := startChapter; ch <= endChapter; ch++ {
		result[ch] = text
	}
	return result
}

// chapterMentionPatterns are the phrasings a speaker uses when moving
// to a new chapter. %d is the chapter number; %s the book name.
func chapterMentionPatterns(book string, ch int) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(`(?i)chapter\s+%d\b`, ch)),
		regexp.MustCompile(fmt.Sprintf(`(?i)%s\s+%d\b`, regexp.QuoteMeta(book), ch)),
		regexp.MustCompile(fmt.Sprintf(`(?i)in\s+%d:`, ch)),
	}
}

type splitPoint struct {
	chapter int
	para    int
}

// splitByMentions scans paragraphs for explicit chapter mentions and
// uses their positions as boundaries. Each boundary's chapter owns the
// paragraphs up to the next boundary; target chapters with no
// boundary are filled from the nearest located neighbor. Returns nil
// unless at least two distinct chapters are located.
func splitByMentions(paras []string, book string, startChapter, endChapter int) map[int]string {
	var points []splitPoint
	for i, para := range paras {
		for ch := startChapter; ch <= endChapter; ch++ {
			if mentionsChapter(para, book, ch) {
				points = append(points, splitPoint{chapter: ch, para: i})
				break
			}
		}
	}

	distinct := make(map[int]bool)
	for _, p := range points {
		distinct[p.chapter] = true
	}
	if len(distinct) < 2 {
		return nil
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].para < points[j].para })

	result := make(map[int]string)
	for i, p := range points {
		lo := p.para
		if i == 0 {
			lo = 0
		}
		hi := len(paras)
		if i+1 < len(points) {
			hi = points[i+1].para
		}
		result[p.chapter] = strings.Join(paras[lo:hi], "\n\n")
	}

	// Fill chapters no boundary was found for.
	located := make([]int, 0, len(result))
	for ch := range result {
		located = append(located, ch)
	}
	sort.Ints(located)
	for ch := startChapter; ch <= endChapter; ch++ {
		if _, ok := result[ch]; ok {
			continue
		}
		nearest := located[0]
		for _, cand := range located[1:] {
			if abs(cand-ch) < abs(nearest-ch) {
				nearest = cand
			}
		}
		result[ch] = result[nearest]
	}
	return result
}

func mentionsChapter(para, book string, ch int) bool {
	for _, p := range chapterMentionPatterns(book, ch) {
		if p.MatchString(para) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
