package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config describes one pipeline run: the input document, where the
// artifacts go, the book identity stamped into every question and
// chunk, and the tunable knobs.
type Config struct {
	InputPDF  string `mapstructure:"input_pdf"`
	OutputDir string `mapstructure:"output_dir"`

	// Book identity, embedded into ids and metadata.
	Subject string `mapstructure:"subject"`
	Class   string `mapstructure:"class"`
	Chapter string `mapstructure:"chapter"`
	Book    string `mapstructure:"book"`

	// Difficulty scoring upper bound, inclusive.
	DifficultyLevels int `mapstructure:"difficulty_levels"`

	// Chunk window, in words.
	ChunkSize    int `mapstructure:"chunk_size"`
	ChunkOverlap int `mapstructure:"chunk_overlap"`

	// PDF extraction fallback.
	PDFFallbackPdftotext bool `mapstructure:"pdf_fallback_pdftotext"`
}

// Load reads a config file (JSON or YAML, by extension) with env-var
// overrides (TEXTBANK_OUTPUT_DIR and friends).
func Load(configPath string) (Config, error) {
	if configPath == "" {
		configPath = "config.json"
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	setDefaults(v)

	v.SetEnvPrefix("textbank")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	// Assemble through the Get accessors so numeric class/chapter
	// values in JSON still land in the string fields.
	cfg := Config{
		InputPDF:             v.GetString("input_pdf"),
		OutputDir:            v.GetString("output_dir"),
		Subject:              v.GetString("subject"),
		Class:                v.GetString("class"),
		Chapter:              v.GetString("chapter"),
		Book:                 v.GetString("book"),
		DifficultyLevels:     v.GetInt("difficulty_levels"),
		ChunkSize:            v.GetInt("chunk_size"),
		ChunkOverlap:         v.GetInt("chunk_overlap"),
		PDFFallbackPdftotext: v.GetBool("pdf_fallback_pdftotext"),
	}

	if cfg.DifficultyLevels <= 0 {
		cfg.DifficultyLevels = 5
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 200
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 40
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.InputPDF == "" {
		return fmt.Errorf("input_pdf is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("subject", "")
	v.SetDefault("class", "")
	v.SetDefault("chapter", "")
	v.SetDefault("book", "")
	v.SetDefault("difficulty_levels", 5)
	v.SetDefault("chunk_size", 200)
	v.SetDefault("chunk_overlap", 40)
	v.SetDefault("pdf_fallback_pdftotext", true)
}
