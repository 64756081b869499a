package parser

import (
	"fmt"
	"os"
	"strings"
)

// TextExtractor handles plain text files. Form feeds act as page
// separators; a file without them is a single page.
type TextExtractor struct{}

func (e *TextExtractor) ExtractPages(path string) (Pages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pages{}, fmt.Errorf("read text file: %w", err)
	}
	return Pages{Text: strings.Split(string(data), "\f")}, nil
}
