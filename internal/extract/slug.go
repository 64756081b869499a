package extract

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a string and collapses every run of characters
// outside [a-z0-9] into a single underscore. Used for the stable parts
// of question and chunk ids, so the result must be deterministic for
// a given input.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlugRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
