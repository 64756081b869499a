package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Pages is the extraction result: ordered per-page (or per-block) text
// and a count of pages whose extraction failed. A failed page keeps
// its slot as an empty string so page order is preserved.
type Pages struct {
	Text   []string
	Failed int
}

// Join concatenates the pages with blank-line separators, the form the
// normalizer expects.
func (p Pages) Join() string {
	return strings.Join(p.Text, "\n\n")
}

// Extractor produces ordered per-page text for a document at a path.
// Implementations degrade a single page's failure to an empty string
// rather than aborting the whole document.
type Extractor interface {
	ExtractPages(path string) (Pages, error)
}

// SupportedExtensions lists file extensions this pipeline can ingest.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".text": true,
	".md":   true,
	".html": true,
	".htm":  true,
	".docx": true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: true}, nil
	case ".txt", ".text":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
