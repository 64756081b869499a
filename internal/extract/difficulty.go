package extract

import (
	"regexp"
	"strings"
)

// DifficultyRule is one additive scoring signal. Each matching rule
// adds a point on top of the base score of 1.
type DifficultyRule struct {
	Name    string
	Applies func(stem string) bool
}

var (
	proofVerbs  = regexp.MustCompile(`\bprove\b|\bshow that\b|\bderive\b|\bverify\b`)
	conditional = regexp.MustCompile(`\bif\b.*\bthen\b`)
	// The boundary anchors the whole alternation, so in practice this
	// fires on roman-numeral markers like "(i)" but not on "(a)"
	// option lines. Plain multiple-choice options must not inflate
	// difficulty.
	subParts = regexp.MustCompile(`\b(?:i\)|\(ii\)|\(a\)|\(b\))`)
	symbolic = regexp.MustCompile(`[=<>]|union|intersection|complement|subset`)
)

// DefaultDifficultyRules returns the ordered scoring rule list. Rules
// match against the lowercased stem except where noted.
func DefaultDifficultyRules() []DifficultyRule {
	return []DifficultyRule{
		{Name: "proof_verbs", Applies: func(s string) bool {
			return proofVerbs.MatchString(strings.ToLower(s))
		}},
		{Name: "conditional", Applies: func(s string) bool {
			return conditional.MatchString(strings.ToLower(s))
		}},
		{Name: "sub_parts", Applies: func(s string) bool {
			return subParts.MatchString(strings.ToLower(s))
		}},
		{Name: "long_stem", Applies: func(s string) bool {
			return len(strings.Fields(s)) > 80
		}},
		{Name: "symbolic", Applies: func(s string) bool {
			return symbolic.MatchString(strings.ToLower(s))
		}},
	}
}

// ScoreDifficulty starts at 1, adds a point per matching rule, and
// clamps the result to maxLevel. The score never drops below 1 even
// when maxLevel is misconfigured.
func ScoreDifficulty(stem string, rules []DifficultyRule, maxLevel int) int {
	score := 1
	for _, rule := range rules {
		if rule.Applies(stem) {
			score++
		}
	}
	if score > maxLevel {
		score = maxLevel
	}
	if score < 1 {
		score = 1
	}
	return score
}
