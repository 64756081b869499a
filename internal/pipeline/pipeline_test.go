package pipeline

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/textbank/internal/chunker"
	"github.com/dgallion1/textbank/internal/config"
	"github.com/dgallion1/textbank/internal/extract"
	"github.com/dgallion1/textbank/internal/segment"
)

const specimenDoc = "CHAPTER 1 SETS\n" +
	"1.1 Intro\n" +
	"Some text.\n" +
	"EXERCISE 1.1\n" +
	"1. What is a set?\n" +
	"(a) A collection\n" +
	"(b) A number\n" +
	"ANSWERS\n" +
	"1. A collection"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, doc string) config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "book.txt")
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o644))
	return config.Config{
		InputPDF:         input,
		OutputDir:        filepath.Join(dir, "out"),
		Subject:          "Mathematics",
		Class:            "11",
		Chapter:          "1",
		Book:             "NCERT Mathematics Textbook",
		DifficultyLevels: 5,
		ChunkSize:        200,
		ChunkOverlap:     40,
	}
}

func TestRun_SpecimenDocument(t *testing.T) {
	cfg := testConfig(t, specimenDoc)

	summary, err := Run(cfg, testLogger())
	require.NoError(t, err)

	// CHAPTER is immediately followed by another heading, so it
	// produces no section of its own.
	assert.Equal(t, 3, summary.Sections)
	assert.Equal(t, 1, summary.Questions)
	assert.Equal(t, 2, summary.Chunks)
	assert.Equal(t, 1, summary.AnswersFound)

	for _, name := range []string{"raw_text.txt", "sections.json", "questions.json", "chunks.json", "report.json"} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, name)
	}

	var sections []segment.Section
	readJSON(t, filepath.Join(cfg.OutputDir, "sections.json"), &sections)
	require.Len(t, sections, 3)
	assert.Equal(t, "1.1 Intro", sections[0].Title)
	assert.Equal(t, segment.TypeSection, sections[0].Type)
	assert.Equal(t, "EXERCISE 1.1", sections[1].Title)
	assert.Equal(t, segment.TypeExercise, sections[1].Type)
	assert.Equal(t, "ANSWERS", sections[2].Title)
	assert.Equal(t, segment.TypeAnswers, sections[2].Type)

	var questions []extract.Question
	readJSON(t, filepath.Join(cfg.OutputDir, "questions.json"), &questions)
	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, "mathematics_11_ch1_exercise_1_1_q1", q.ID)
	assert.Equal(t, "1", q.QuestionNumber)
	assert.Equal(t, []string{"A collection", "A number"}, q.Options)
	require.NotNil(t, q.Answer)
	assert.Equal(t, "A collection", *q.Answer)
	assert.Equal(t, extract.AnswerFromKey, q.AnswerSource)
	assert.Equal(t, 1, q.Difficulty)
	assert.Equal(t, []string{"set"}, q.Topics)
	assert.Equal(t, "Mathematics", q.Metadata.Subject)

	var chunks []chunker.Chunk
	readJSON(t, filepath.Join(cfg.OutputDir, "chunks.json"), &chunks)
	require.Len(t, chunks, 2)
	assert.Equal(t, "mathematics_11_ch1_chunk_1", chunks[0].ID)
	assert.Equal(t, "mathematics_11_ch1_chunk_2", chunks[1].ID)
	for _, c := range chunks {
		assert.NotEqual(t, segment.TypeAnswers, c.Metadata.SectionType)
	}
}

func TestRun_ReportFlagsShortDocuments(t *testing.T) {
	cfg := testConfig(t, specimenDoc)
	_, err := Run(cfg, testLogger())
	require.NoError(t, err)

	var report Report
	readJSON(t, filepath.Join(cfg.OutputDir, "report.json"), &report)

	assert.Equal(t, cfg.InputPDF, report.InputPDF)
	assert.Equal(t, 3, report.SectionsCount)
	assert.Equal(t, 1, report.QuestionsCount)
	assert.Equal(t, 1, report.AnswersFound)
	assert.True(t, report.NeedsOCR, "short ASCII text must set needs_ocr")
	assert.True(t, strings.HasSuffix(report.GeneratedAt, "Z"))
	assert.Equal(t, 0, report.NonASCIIRemoved)
	assert.Equal(t, report.RawTextChars, report.RawTextASCIIChars)
}

func TestRun_NonASCIIAccounting(t *testing.T) {
	cfg := testConfig(t, "EXERCISE 1.1\n1. Find A ∪ B where Δ is small.")
	_, err := Run(cfg, testLogger())
	require.NoError(t, err)

	var report Report
	readJSON(t, filepath.Join(cfg.OutputDir, "report.json"), &report)
	assert.Equal(t, 2, report.NonASCIIRemoved)
	assert.Equal(t, report.RawTextChars-2, report.RawTextASCIIChars)

	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "raw_text.txt"))
	require.NoError(t, err)
	for _, b := range raw {
		assert.LessOrEqual(t, b, byte(127))
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := testConfig(t, specimenDoc)
	_, err := Run(cfg, testLogger())
	require.NoError(t, err)

	first := map[string][]byte{}
	for _, name := range []string{"sections.json", "questions.json", "chunks.json"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err)
		first[name] = data
	}

	_, err = Run(cfg, testLogger())
	require.NoError(t, err)
	for name, want := range first {
		got, err := os.ReadFile(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "%s must be byte-identical across runs", name)
	}
}

func TestRun_UnsupportedInput(t *testing.T) {
	cfg := testConfig(t, specimenDoc)
	cfg.InputPDF = strings.TrimSuffix(cfg.InputPDF, ".txt") + ".epub"
	_, err := Run(cfg, testLogger())
	require.Error(t, err)
}

func TestRun_MissingInputFile(t *testing.T) {
	cfg := testConfig(t, specimenDoc)
	cfg.InputPDF = filepath.Join(filepath.Dir(cfg.InputPDF), "absent.txt")
	_, err := Run(cfg, testLogger())
	require.Error(t, err)
}

func TestRun_EmptyOutputsAreArrays(t *testing.T) {
	// A document with no headings and no questions still writes valid
	// JSON arrays, not null.
	cfg := testConfig(t, "Just prose, nothing structured.")
	_, err := Run(cfg, testLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "questions.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
