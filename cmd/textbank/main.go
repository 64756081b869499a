package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/textbank/internal/config"
	"github.com/dgallion1/textbank/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the run configuration file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("cannot load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}

	summary, err := pipeline.Run(cfg, log)
	if err != nil {
		log.Error("run failed", "input", cfg.InputPDF, "error", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
	fmt.Printf("Sections: %d\n", summary.Sections)
	fmt.Printf("Questions: %d\n", summary.Questions)
	fmt.Printf("Chunks: %d\n", summary.Chunks)
	fmt.Printf("Answers found: %d\n", summary.AnswersFound)
}
