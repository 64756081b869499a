package pipeline

import "time"

// ocrThresholdChars is the ASCII text length below which the source
// document is assumed to be image-based and in need of OCR.
const ocrThresholdChars = 2000

// Report aggregates run statistics. It is rebuilt from scratch on
// every run; only the timestamp varies for identical input.
type Report struct {
	InputPDF          string `json:"input_pdf"`
	OutputDir         string `json:"output_dir"`
	RawTextChars      int    `json:"raw_text_chars"`
	RawTextASCIIChars int    `json:"raw_text_ascii_chars"`
	NonASCIIRemoved   int    `json:"non_ascii_removed"`
	SectionsCount     int    `json:"sections_count"`
	QuestionsCount    int    `json:"questions_count"`
	AnswersFound      int    `json:"answers_found"`
	NeedsOCR          bool   `json:"needs_ocr"`
	GeneratedAt       string `json:"generated_at"`
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05") + "Z"
}
