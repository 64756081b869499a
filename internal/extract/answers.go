package extract

import (
	"regexp"
	"strings"

	"github.com/dgallion1/textbank/internal/segment"
)

var answerLine = regexp.MustCompile(`^\s*(\d+)\.\s*(.+)$`)

// ParseAnswerKey collects numbered answer entries from every
// answers-typed section. Keys are the literal number strings as they
// appear in the key. A number repeated in the same or a later answers
// section overwrites the earlier entry. Lines that do not look like
// "<n>. text" are ignored; multi-line answers are not supported.
func ParseAnswerKey(sections []segment.Section) map[string]string {
	answers := make(map[string]string)
	for _, section := range sections {
		if section.Type != segment.TypeAnswers {
			continue
		}
		for _, line := range strings.Split(section.Text, "\n") {
			m := answerLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			answers[m[1]] = strings.TrimSpace(m[2])
		}
	}
	return answers
}
