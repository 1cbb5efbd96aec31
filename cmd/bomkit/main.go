package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/medtechmfg/bomkit/pkg/interfaces/cli/commands"
)

func main() {
	// .env is optional; it supplies defaults for the flags below
	_ = godotenv.Load()

	var (
		catalogDir = flag.String(
			"catalog",
			os.Getenv("BOMKIT_CATALOG_DIR"),
			"Directory containing assemblies.json and parts.json",
		)
		assembliesFile = flag.String("assemblies", "", "Path to assemblies JSON document")
		partsFile      = flag.String("parts", "", "Path to parts JSON document")
		selectionsFile = flag.String("selections", "", "Path to order selections CSV file")
		outputDir      = flag.String("output", "", "Output directory for results (optional)")
		format         = flag.String("format", envOr("BOMKIT_FORMAT", "text"), "Output format: text, json, csv")
		logLevel       = flag.String("log-level", envOr("BOMKIT_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
		verbose        = flag.Bool("verbose", false, "Enable verbose output")
		lint           = flag.Bool("lint", false, "Run offline catalog integrity checks")
		maxDepthOf     = flag.String("max-depth", "", "Report the deepest assembly chain under the given assembly id")
		help           = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		CatalogDir:     *catalogDir,
		AssembliesFile: *assembliesFile,
		PartsFile:      *partsFile,
		SelectionsFile: *selectionsFile,
		OutputDir:      *outputDir,
		Format:         *format,
		LogLevel:       *logLevel,
		Verbose:        *verbose,
		Lint:           *lint,
		MaxDepthOf:     *maxDepthOf,
		Help:           *help,
	}

	cmd := commands.NewBOMCommand(config)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
