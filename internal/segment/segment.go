package segment

import (
	"regexp"
	"strings"
)

// SectionType classifies what a section contains, based on its heading.
type SectionType string

const (
	TypeChapter  SectionType = "chapter"
	TypeExercise SectionType = "exercise"
	TypeSummary  SectionType = "summary"
	TypeNote     SectionType = "note"
	TypeAnswers  SectionType = "answers"
	TypeSection  SectionType = "section"
)

// FrontMatterTitle is the sentinel title for text preceding the first
// detected heading.
const FrontMatterTitle = "front_matter"

// Section is a contiguous run of document text under one heading.
// Sections partition the normalized document: every line belongs to
// exactly one section, in original order.
type Section struct {
	Title string      `json:"title"`
	Type  SectionType `json:"type"`
	Text  string      `json:"text"`
}

// headingPatterns is the ordered table of heading shapes. A line is a
// heading if any pattern matches its trimmed form. New heading shapes
// are added here, not in the scan loop.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^CHAPTER\s+\d+\b`),
	regexp.MustCompile(`^\d+(\.\d+)+\s+\S+`), // dotted outline label, e.g. "1.2 Subsets"
	regexp.MustCompile(`(?i)^EXERCISE\s+\d+(\.\d+)?\b`),
	regexp.MustCompile(`(?i)^MISCELLANEOUS\s+EXERCISE\b`),
	regexp.MustCompile(`(?i)^SUMMARY\b`),
	regexp.MustCompile(`(?i)^HISTORICAL\s+NOTE\b`),
	regexp.MustCompile(`(?i)^ANSWERS?\b`),
}

// IsHeading reports whether a line introduces a new section.
func IsHeading(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	for _, pat := range headingPatterns {
		if pat.MatchString(s) {
			return true
		}
	}
	return false
}

// Classify maps a heading title to a section type. EXERCISE is checked
// before CHAPTER on purpose: the heading patterns never produce a title
// containing both, but if one occurred, exercise wins.
func Classify(title string) SectionType {
	t := strings.ToUpper(title)
	switch {
	case strings.Contains(t, "EXERCISE"):
		return TypeExercise
	case strings.HasPrefix(t, "CHAPTER"):
		return TypeChapter
	case strings.Contains(t, "SUMMARY"):
		return TypeSummary
	case strings.Contains(t, "HISTORICAL NOTE"):
		return TypeNote
	case strings.HasPrefix(t, "ANSWERS"):
		return TypeAnswers
	default:
		return TypeSection
	}
}

// Split walks normalized text line by line and cuts it into sections
// at heading lines. Text before the first heading lands in a
// front_matter section. Blank lines are kept inside section bodies so
// paragraph structure survives; the body is trimmed as a whole.
func Split(text string) []Section {
	if text == "" {
		return nil
	}
	var sections []Section
	currentTitle := FrontMatterTitle
	var currentLines []string

	for _, line := range strings.Split(text, "\n") {
		if IsHeading(line) {
			if len(currentLines) > 0 {
				sections = append(sections, makeSection(currentTitle, currentLines))
			}
			currentTitle = strings.TrimSpace(line)
			currentLines = nil
			continue
		}
		currentLines = append(currentLines, line)
	}
	if len(currentLines) > 0 {
		sections = append(sections, makeSection(currentTitle, currentLines))
	}
	return sections
}

func makeSection(title string, lines []string) Section {
	return Section{
		Title: title,
		Type:  Classify(title),
		Text:  strings.TrimSpace(strings.Join(lines, "\n")),
	}
}
