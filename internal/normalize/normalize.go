package normalize

import (
	"regexp"
	"strings"
)

var (
	hyphenBreak = regexp.MustCompile(`(\w)-\n(\w)`)
	hspaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun  = regexp.MustCompile(`\n{3,}`)
)

// Text cleans raw extracted text: unified line endings, repaired
// word-wrap hyphenation, collapsed horizontal whitespace, and at most
// one blank line between paragraphs. Applying it to its own output is
// a no-op.
func Text(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	text = hspaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ToASCII strips every character above code point 127 and returns the
// surviving text along with the number of characters dropped. Loss is
// silent by design; the caller decides whether the count is worth
// surfacing.
func ToASCII(text string) (string, int) {
	dropped := 0
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r > 127 {
			dropped++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), dropped
}

// CountNonASCII reports how many characters in text are above code
// point 127. The pipeline calls this on raw extracted text, before
// normalization, so the report reflects the source document's loss.
func CountNonASCII(text string) int {
	n := 0
	for _, r := range text {
		if r > 127 {
			n++
		}
	}
	return n
}
