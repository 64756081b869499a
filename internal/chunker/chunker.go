package chunker

import (
	"fmt"
	"strings"

	"github.com/dgallion1/textbank/internal/extract"
	"github.com/dgallion1/textbank/internal/normalize"
	"github.com/dgallion1/textbank/internal/segment"
)

// Config controls chunking behavior. Sizes are in whitespace-separated
// words, not characters or tokens.
type Config struct {
	ChunkSize    int // Window size in words.
	ChunkOverlap int // Words shared between consecutive windows.
}

// DefaultConfig returns the standard retrieval window.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    200,
		ChunkOverlap: 40,
	}
}

// Metadata ties a chunk back to its section and source book.
type Metadata struct {
	SectionTitle string              `json:"section_title"`
	SectionType  segment.SectionType `json:"section_type"`
	Subject      string              `json:"subject"`
	Class        string              `json:"class"`
	Chapter      string              `json:"chapter"`
	Book         string              `json:"book"`
}

// Chunk is one overlapping text window ready for retrieval indexing.
type Chunk struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// SplitWords cuts text into windows of cfg.ChunkSize words, advancing
// cfg.ChunkSize-cfg.ChunkOverlap words per step. When the overlap is
// at least the window size the windows degrade to non-overlapping.
// The final window may be short; empty text yields no windows.
func SplitWords(text string, cfg Config) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := cfg.ChunkSize - cfg.ChunkOverlap
	if step <= 0 {
		step = cfg.ChunkSize
	}

	var chunks []string
	for idx := 0; idx < len(words); idx += step {
		end := idx + cfg.ChunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[idx:end], " "))
	}
	return chunks
}

// BuildChunks windows every section except the answer keys, in
// document order. The chunk counter is global across sections and
// starts at 1, so ids are stable for identical input but shift when
// sections reorder.
func BuildChunks(sections []segment.Section, meta extract.Metadata, cfg Config) []Chunk {
	if cfg.ChunkSize <= 0 {
		cfg = DefaultConfig()
	}

	baseID := meta.BaseID()
	var chunks []Chunk
	index := 1

	for _, section := range sections {
		if section.Type == segment.TypeAnswers {
			continue
		}
		for _, window := range SplitWords(section.Text, cfg) {
			text, _ := normalize.ToASCII(window)
			chunks = append(chunks, Chunk{
				ID:   fmt.Sprintf("%s_chunk_%d", baseID, index),
				Text: text,
				Metadata: Metadata{
					SectionTitle: section.Title,
					SectionType:  section.Type,
					Subject:      meta.Subject,
					Class:        meta.Class,
					Chapter:      meta.Chapter,
					Book:         meta.Book,
				},
			})
			index++
		}
	}
	return chunks
}
