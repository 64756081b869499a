package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/textbank/internal/normalize"
	"github.com/dgallion1/textbank/internal/segment"
)

// Answer provenance values.
const (
	AnswerFromKey = "answer_key"
	AnswerMissing = "missing"
)

// Metadata identifies the book a question or chunk came from. The
// values are free-form strings supplied by configuration.
type Metadata struct {
	Subject string `json:"subject"`
	Class   string `json:"class"`
	Chapter string `json:"chapter"`
	Book    string `json:"book"`
}

// BaseID is the deterministic id prefix shared by every question and
// chunk of one run: <subject-slug>_<class>_ch<chapter>.
func (m Metadata) BaseID() string {
	return fmt.Sprintf("%s_%s_ch%s", Slugify(m.Subject), m.Class, m.Chapter)
}

// Question is one extracted exercise question, with its answer-key
// entry attached when one exists.
type Question struct {
	ID             string   `json:"id"`
	Source         string   `json:"source"`
	SectionTitle   string   `json:"section_title"`
	QuestionNumber string   `json:"question_number"`
	Stem           string   `json:"stem"`
	Options        []string `json:"options"`
	Answer         *string  `json:"answer"`
	AnswerSource   string   `json:"answer_source"`
	Difficulty     int      `json:"difficulty"`
	Topics         []string `json:"topics"`
	Metadata       Metadata `json:"metadata"`
}

// Config controls question building. Zero-value rule tables fall back
// to the package defaults.
type Config struct {
	Meta             Metadata
	DifficultyLevels int
	TopicTable       []TopicEntry
	DifficultyRules  []DifficultyRule
}

// questionStartPatterns is the ordered table of shapes that open a new
// question. Each pattern captures (number, trailing text). First match
// wins; add new shapes here rather than in the scan loop.
var questionStartPatterns = []*regexp.Regexp{
	// "12. Solve ..."
	regexp.MustCompile(`^\s*(\d+)\.\s+(.*)$`),
	// "Q.3 - Solve ...", "Q12: Solve ..."
	regexp.MustCompile(`(?i)^\s*Q\.?\s*(\d+)\s*[-:.]?\s*(.*)$`),
}

func matchQuestionStart(line string) (number, rest string, ok bool) {
	for _, pat := range questionStartPatterns {
		if m := pat.FindStringSubmatch(line); m != nil {
			return m[1], strings.TrimSpace(m[2]), true
		}
	}
	return "", "", false
}

// rawQuestion is a question as scanned from section text, before
// enrichment.
type rawQuestion struct {
	Number string
	Text   string
}

// scanQuestions walks an exercise section's lines, opening a new
// question at each start pattern and appending non-blank continuation
// lines to the open one. Lines before the first start are discarded.
func scanQuestions(text string) []rawQuestion {
	var questions []rawQuestion
	var current []string
	var currentNum string
	open := false

	flush := func() {
		questions = append(questions, rawQuestion{
			Number: currentNum,
			Text:   strings.TrimSpace(strings.Join(current, "\n")),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if num, rest, ok := matchQuestionStart(line); ok {
			if open {
				flush()
			}
			currentNum = num
			current = nil
			if rest != "" {
				current = []string{rest}
			}
			open = true
			continue
		}
		if open {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				current = append(current, trimmed)
			}
		}
	}
	if open {
		flush()
	}
	return questions
}

var optionLine = regexp.MustCompile(`^\s*\(?([a-dA-D])\)\s*(.+)$`)

// extractOptions pulls multiple-choice option text from (a)-(d)
// prefixed lines. Returns nil when the stem has no such lines, so the
// options field serializes as null rather than [].
func extractOptions(stem string) []string {
	var options []string
	for _, line := range strings.Split(stem, "\n") {
		if m := optionLine.FindStringSubmatch(line); m != nil {
			options = append(options, strings.TrimSpace(m[2]))
		}
	}
	return options
}

// BuildQuestions scans every exercise section in order and produces
// enriched questions: answer lookup by exact number string, option
// extraction, difficulty scoring, and topic tagging, all over the
// ASCII form of the stem. A question with no parsed numeral takes its
// 1-based position in the section as its number.
func BuildQuestions(sections []segment.Section, answers map[string]string, cfg Config) []Question {
	topicTable := cfg.TopicTable
	if topicTable == nil {
		topicTable = DefaultTopicTable()
	}
	rules := cfg.DifficultyRules
	if rules == nil {
		rules = DefaultDifficultyRules()
	}

	baseID := cfg.Meta.BaseID()
	var questions []Question

	for _, section := range sections {
		if section.Type != segment.TypeExercise {
			continue
		}
		sectionSlug := Slugify(section.Title)
		if sectionSlug == "" {
			sectionSlug = "exercise"
		}

		for idx, raw := range scanQuestions(section.Text) {
			num := raw.Number
			if num == "" {
				num = strconv.Itoa(idx + 1)
			}

			stem, _ := normalize.ToASCII(strings.TrimSpace(raw.Text))

			var answer *string
			answerSource := AnswerMissing
			if a, ok := answers[num]; ok {
				ascii, _ := normalize.ToASCII(a)
				answer = &ascii
				answerSource = AnswerFromKey
			}

			questions = append(questions, Question{
				ID:             fmt.Sprintf("%s_%s_q%s", baseID, sectionSlug, num),
				Source:         "exercise",
				SectionTitle:   section.Title,
				QuestionNumber: num,
				Stem:           stem,
				Options:        extractOptions(stem),
				Answer:         answer,
				AnswerSource:   answerSource,
				Difficulty:     ScoreDifficulty(stem, rules, cfg.DifficultyLevels),
				Topics:         DetectTopics(stem, topicTable),
				Metadata:       cfg.Meta,
			})
		}
	}
	return questions
}
