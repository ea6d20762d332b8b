// Package transcript segments unstructured video-transcript markdown
// into titled sections and verse-level commentary records. There are
// no structured markers to anchor on, so every stage degrades
// gracefully: unclassifiable titles are dropped with a warning, and
// absent verse structure falls back to chapter-level records.
package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// headingPattern matches a section boundary: a markdown heading whose
// title ends with a parenthesized HH:MM:SS timestamp.
var headingPattern = regexp.MustCompile(`(?m)^# \*\*(.+?)\s*\((\d{2}:\d{2}:\d{2})\)\*\*`)

// introPatterns classify a section title as introduction content: a
// literal "introduction" heading, a numbered point ("1) ..."), or the
// book-recommendation heading.
var introPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^introduction$`),
	regexp.MustCompile(`^\d+\)\s+`),
	regexp.MustCompile(`(?i)^book recommendation$`),
}

// chapterPattern classifies a section title as chapter content for a
// single chapter or an inclusive range ("Chapter 5", "Chapters 2–3").
var chapterPattern = regexp.MustCompile(`(?i)^chapters?\s+(\d+)(?:[–-](\d+))?$`)

// Section is a raw titled span of the transcript.
type Section struct {
	Title     string
	Timestamp string
	Text      string
}

// SplitSections cuts the transcript at heading boundaries. Text
// between one heading and the next belongs to the first.
func SplitSections(content string) []Section {
	matches := headingPattern.FindAllStringSubmatchIndex(content, -1)
	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Title:     strings.TrimSpace(content[m[2]:m[3]]),
			Timestamp: content[m[4]:m[5]],
			Text:      strings.TrimSpace(content[m[1]:end]),
		})
	}
	return sections
}

// IsIntro reports whether the section title classifies as
// introduction content.
func (s Section) IsIntro() bool {
	for _, p := range introPatterns {
		if p.MatchString(s.Title) {
			return true
		}
	}
	return false
}

// ChapterRange returns the inclusive chapter range named by the
// section title, or ok=false when the title is not chapter content.
func (s Section) ChapterRange() (start, end int, ok bool) {
	m := chapterPattern.FindStringSubmatch(s.Title)
	if m == nil {
		return 0, 0, false
	}
	start, _ = strconv.Atoi(m[1])
	end = start
	if m[2] != "" {
		end, _ = strconv.Atoi(m[2])
	}
	return start, end, true
}

var paragraphBreak = regexp.MustCompile(`\r?\n(?:\r?\n)+`)

// paragraphs splits text into blank-line-separated paragraphs.
func paragraphs(text string) []string {
	return paragraphBreak.Split(text, -1)
}
