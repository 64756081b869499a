package parser

import (
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles PDF files. It tries the Go library first, then
// falls back to pdftotext if available.
type PDFExtractor struct {
	FallbackPdftotext bool
}

func (p *PDFExtractor) ExtractPages(path string) (Pages, error) {
	pages, err := extractPDFPages(path)
	if err == nil {
		return pages, nil
	}
	if !p.FallbackPdftotext {
		return Pages{}, fmt.Errorf("extract pdf text: %w", err)
	}

	if _, lookErr := exec.LookPath("pdftotext"); lookErr != nil {
		return Pages{}, fmt.Errorf(
			"cannot extract text from %s (%v) and no pdftotext binary found; "+
				"install poppler-utils (e.g. apt-get install poppler-utils or brew install poppler) "+
				"to enable the fallback extractor", path, err)
	}
	return extractPdftotext(path)
}

// extractPDFPages reads per-page text with ledongthuc/pdf. A page that
// fails to decode contributes an empty string and bumps the failure
// count; extraction of the remaining pages continues.
func extractPDFPages(path string) (Pages, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return Pages{}, err
	}
	defer f.Close()

	var pages Pages
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		text, ok := extractOnePage(reader, i)
		if !ok {
			pages.Failed++
		}
		pages.Text = append(pages.Text, text)
	}
	return pages, nil
}

// extractOnePage isolates a single page so a decode panic in the pdf
// library cannot take down the whole document.
func extractOnePage(reader *pdflib.Reader, i int) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	page := reader.Page(i)
	if page.V.IsNull() {
		return "", false
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", false
	}
	return text, true
}

func extractPdftotext(path string) (Pages, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return Pages{}, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with form feeds.
	return Pages{Text: strings.Split(string(out), "\f")}, nil
}
