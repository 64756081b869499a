package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dgallion1/textbank/internal/chunker"
	"github.com/dgallion1/textbank/internal/config"
	"github.com/dgallion1/textbank/internal/extract"
	"github.com/dgallion1/textbank/internal/normalize"
	"github.com/dgallion1/textbank/internal/parser"
	"github.com/dgallion1/textbank/internal/segment"
)

// Summary is what a successful run reports to the caller for the
// human-readable printout.
type Summary struct {
	Sections     int
	Questions    int
	Chunks       int
	AnswersFound int
}

// Run executes the whole pipeline for one document: extract pages,
// normalize, segment, parse the answer key, build questions and
// chunks, and write the five artifacts under cfg.OutputDir. The run is
// strictly sequential; a fatal error aborts it, leaving whatever
// artifacts were already written on disk.
func Run(cfg config.Config, log *slog.Logger) (Summary, error) {
	ext, err := parser.ForFile(cfg.InputPDF)
	if err != nil {
		return Summary{}, err
	}
	if pdfExt, ok := ext.(*parser.PDFExtractor); ok {
		pdfExt.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	pages, err := ext.ExtractPages(cfg.InputPDF)
	if err != nil {
		return Summary{}, err
	}
	if pages.Failed > 0 {
		log.Warn("some pages yielded no text", "failed", pages.Failed, "total", len(pages.Text))
	}

	rawText := pages.Join()
	nonASCII := normalize.CountNonASCII(rawText)
	normalized := normalize.Text(rawText)
	ascii, _ := normalize.ToASCII(normalized)

	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "raw_text.txt"), []byte(ascii), 0o644); err != nil {
		return Summary{}, fmt.Errorf("write raw_text.txt: %w", err)
	}

	sections := segment.Split(normalized)
	for i := range sections {
		sections[i].Text, _ = normalize.ToASCII(sections[i].Text)
	}
	log.Info("segmented document", "sections", len(sections))

	meta := extract.Metadata{
		Subject: cfg.Subject,
		Class:   cfg.Class,
		Chapter: cfg.Chapter,
		Book:    cfg.Book,
	}

	answers := extract.ParseAnswerKey(sections)
	questions := extract.BuildQuestions(sections, answers, extract.Config{
		Meta:             meta,
		DifficultyLevels: cfg.DifficultyLevels,
	})
	chunks := chunker.BuildChunks(sections, meta, chunker.Config{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
	})
	log.Info("extracted artifacts", "questions", len(questions), "answers", len(answers), "chunks", len(chunks))

	if sections == nil {
		sections = []segment.Section{}
	}
	if questions == nil {
		questions = []extract.Question{}
	}
	if chunks == nil {
		chunks = []chunker.Chunk{}
	}

	report := Report{
		InputPDF:          cfg.InputPDF,
		OutputDir:         cfg.OutputDir,
		RawTextChars:      utf8.RuneCountInString(normalized),
		RawTextASCIIChars: utf8.RuneCountInString(ascii),
		NonASCIIRemoved:   nonASCII,
		SectionsCount:     len(sections),
		QuestionsCount:    len(questions),
		AnswersFound:      len(answers),
		NeedsOCR:          utf8.RuneCountInString(ascii) < ocrThresholdChars,
		GeneratedAt:       timestamp(),
	}

	outputs := []struct {
		name string
		data any
	}{
		{"sections.json", sections},
		{"questions.json", questions},
		{"chunks.json", chunks},
		{"report.json", report},
	}
	for _, out := range outputs {
		if err := writeJSON(filepath.Join(cfg.OutputDir, out.name), out.data); err != nil {
			return Summary{}, err
		}
	}

	return Summary{
		Sections:     len(sections),
		Questions:    len(questions),
		Chunks:       len(chunks),
		AnswersFound: len(answers),
	}, nil
}

// writeJSON marshals with two-space indentation. All text reaching
// this point is ASCII already, and the encoder escapes anything else,
// so the files stay ASCII-safe.
func writeJSON(path string, data any) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
