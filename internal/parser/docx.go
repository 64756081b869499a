package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXExtractor handles .docx files. Paragraph text is flattened with
// blank-line separators; the whole document is one page.
type DOCXExtractor struct{}

func (e *DOCXExtractor) ExtractPages(path string) (Pages, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pages{}, fmt.Errorf("open docx file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Pages{}, fmt.Errorf("stat docx file: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return Pages{}, fmt.Errorf("parse docx: %w", err)
	}

	var blocks []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := paragraphText(para); text != "" {
			blocks = append(blocks, text)
		}
	}

	return Pages{Text: []string{strings.Join(blocks, "\n\n")}}, nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
