package extract

import (
	"testing"

	"github.com/dgallion1/textbank/internal/segment"
)

func TestParseAnswerKey_Basic(t *testing.T) {
	sections := []segment.Section{
		{Title: "EXERCISE 1.1", Type: segment.TypeExercise, Text: "1. ignored, not an answers section"},
		{Title: "ANSWERS", Type: segment.TypeAnswers, Text: "1. A collection\n2.  {1, 2, 3}  \nstray line without number\n3. x = 4"},
	}
	answers := ParseAnswerKey(sections)

	if len(answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(answers))
	}
	if answers["1"] != "A collection" {
		t.Errorf("answer 1: got %q", answers["1"])
	}
	if answers["2"] != "{1, 2, 3}" {
		t.Errorf("answer 2: expected trimmed value, got %q", answers["2"])
	}
	if answers["3"] != "x = 4" {
		t.Errorf("answer 3: got %q", answers["3"])
	}
}

func TestParseAnswerKey_LastWriteWins(t *testing.T) {
	sections := []segment.Section{
		{Title: "ANSWERS", Type: segment.TypeAnswers, Text: "1. first\n1. second"},
		{Title: "ANSWERS", Type: segment.TypeAnswers, Text: "1. third"},
	}
	answers := ParseAnswerKey(sections)
	if answers["1"] != "third" {
		t.Errorf("expected later duplicate to win, got %q", answers["1"])
	}
}

func TestParseAnswerKey_IgnoresNonAnswerSections(t *testing.T) {
	sections := []segment.Section{
		{Title: "EXERCISE 1.1", Type: segment.TypeExercise, Text: "1. looks like an answer"},
		{Title: "SUMMARY", Type: segment.TypeSummary, Text: "2. also numbered"},
	}
	if answers := ParseAnswerKey(sections); len(answers) != 0 {
		t.Errorf("expected no answers, got %v", answers)
	}
}

func TestParseAnswerKey_LeadingWhitespaceAllowed(t *testing.T) {
	sections := []segment.Section{
		{Title: "ANSWERS", Type: segment.TypeAnswers, Text: "  12. indented entry"},
	}
	answers := ParseAnswerKey(sections)
	if answers["12"] != "indented entry" {
		t.Errorf("expected indented entry parsed, got %v", answers)
	}
}
