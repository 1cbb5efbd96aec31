package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/medtechmfg/bomkit/pkg/application/dto"
	"github.com/medtechmfg/bomkit/pkg/application/services"
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	domainservices "github.com/medtechmfg/bomkit/pkg/domain/services"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/events"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/logging"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/repositories/catalogjson"
	selectioncsv "github.com/medtechmfg/bomkit/pkg/infrastructure/repositories/csv"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/repositories/memory"
	"github.com/medtechmfg/bomkit/pkg/interfaces/cli/output"
)

// Config holds configuration for the BOM command
type Config struct {
	CatalogDir     string
	AssembliesFile string
	PartsFile      string
	SelectionsFile string
	OutputDir      string
	Format         string
	LogLevel       string
	Verbose        bool
	Lint           bool
	MaxDepthOf     string
	Help           bool
}

// BOMCommand handles the main BOM generation logic
type BOMCommand struct {
	config Config
}

// NewBOMCommand creates a new BOM command with the given configuration
func NewBOMCommand(config Config) *BOMCommand {
	return &BOMCommand{config: config}
}

// Execute runs the BOM command
func (c *BOMCommand) Execute() error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	assembliesFile, partsFile, err := c.resolveCatalogFiles()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	logLevel := c.config.LogLevel
	if c.config.Verbose {
		logLevel = "debug"
	}
	logger, err := logging.NewLogger(logging.Config{Level: logLevel, Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()

	// A failed catalog load leaves the store in its degraded state instead
	// of exiting, so the tool can still report what went wrong and pass
	// selections through unexpanded.
	loader := catalogjson.NewLoader()
	store := memory.NewCatalogRepository()
	assemblies, parts, loadErr := loader.LoadCatalog(assembliesFile, partsFile)
	if loadErr != nil {
		store.MarkLoadFailed(loadErr)
		logger.Error("catalog load failed", zap.Error(loadErr))
	} else if err := store.Load(assemblies, parts); err != nil {
		logger.Error("catalog load failed", zap.Error(err))
	} else if c.config.Verbose {
		logger.Info("catalog loaded",
			zap.Int("assemblies", len(assemblies)),
			zap.Int("parts", len(parts)))
	}

	if c.config.Lint {
		if loadErr != nil {
			return fmt.Errorf("cannot lint an unparseable catalog: %w", loadErr)
		}
		return c.runLint(assemblies, parts)
	}

	if c.config.MaxDepthOf != "" {
		expander := services.NewExpansionServiceWithConfig(store, services.ExpansionConfig{Logger: logger})
		depth, err := expander.MaxDepth(entities.CatalogID(c.config.MaxDepthOf))
		if err != nil {
			return err
		}
		fmt.Printf("%s: max assembly depth %d\n", c.config.MaxDepthOf, depth)
		return nil
	}

	if c.config.SelectionsFile == "" {
		return fmt.Errorf("no selections file given (use -selections, -lint, or -max-depth)")
	}

	selections, err := selectioncsv.NewLoader().LoadSelections(c.config.SelectionsFile)
	if err != nil {
		return fmt.Errorf("error loading selections: %w", err)
	}

	var audit *events.InMemoryStore
	expansionConfig := services.ExpansionConfig{Logger: logger}
	if c.config.Verbose {
		audit = events.NewInMemoryStore()
		expansionConfig.Audit = audit
	}

	bomService := services.NewBOMServiceWithConfig(store, expansionConfig)
	result, err := bomService.GenerateBOM(selections)
	if err != nil {
		return fmt.Errorf("BOM generation failed: %w", err)
	}

	if audit != nil {
		trail, _ := audit.Read(result.RunID.String())
		for _, ev := range trail {
			logger.Debug("audit",
				zap.String("event", ev.Type()),
				zap.Int("version", ev.Version()),
				zap.Any("data", ev.Data()))
		}
	}

	aggregator := services.NewAggregationService()
	aggregated := aggregator.SortByCategoryPriority(aggregator.Aggregate(aggregator.FlattenResult(result)))

	return c.writeOutput(result, aggregated)
}

func (c *BOMCommand) resolveCatalogFiles() (string, string, error) {
	assembliesFile := c.config.AssembliesFile
	partsFile := c.config.PartsFile

	if c.config.CatalogDir != "" {
		if assembliesFile == "" {
			assembliesFile = filepath.Join(c.config.CatalogDir, "assemblies.json")
		}
		if partsFile == "" {
			partsFile = filepath.Join(c.config.CatalogDir, "parts.json")
		}
	}

	if assembliesFile == "" || partsFile == "" {
		return "", "", fmt.Errorf("catalog files not specified (use -catalog or -assemblies and -parts)")
	}
	return assembliesFile, partsFile, nil
}

func (c *BOMCommand) runLint(assemblies []*entities.Assembly, parts []*entities.Part) error {
	validator := domainservices.NewCatalogValidator()
	report := validator.ValidateCatalog(assemblies, parts)

	if len(report.Errors) == 0 {
		fmt.Printf("catalog OK: %d assemblies, %d parts\n", len(assemblies), len(parts))
		return nil
	}

	for _, msg := range report.Errors {
		fmt.Println(msg)
	}
	for asmID, refs := range report.DanglingRefs {
		fmt.Printf("  %s -> %v\n", asmID, refs)
	}
	return fmt.Errorf("catalog lint found %d problems", len(report.Errors))
}

func (c *BOMCommand) writeOutput(result *dto.BOMResult, aggregated []entities.AggregatedLineItem) error {
	format := c.config.Format
	if format == "" {
		format = "text"
	}

	var w io.Writer = os.Stdout
	if c.config.OutputDir != "" {
		if err := os.MkdirAll(c.config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(c.config.OutputDir, "bom."+extensionFor(format))
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", path, err)
		}
		defer file.Close()
		w = file
	}

	switch format {
	case "text":
		return output.WriteText(w, result, aggregated)
	case "json":
		return output.WriteJSON(w, result, aggregated)
	case "csv":
		return output.WriteCSV(w, aggregated)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func extensionFor(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}

func (c *BOMCommand) showHelp() {
	fmt.Println(`bomkit - hierarchical BOM expansion for sink manufacturing orders

Usage:
  bomkit -catalog <dir> -selections <file.csv> [-format text|json|csv] [-output <dir>]
  bomkit -catalog <dir> -lint
  bomkit -catalog <dir> -max-depth <assembly-id>

Flags:
  -catalog     directory containing assemblies.json and parts.json
  -assemblies  explicit path to the assemblies document
  -parts       explicit path to the parts document
  -selections  CSV of top-level order selections (identifier,quantity,source)
  -output      directory for result files (default: stdout)
  -format      output format: text, json, csv (default text)
  -lint        run offline catalog integrity checks and exit
  -max-depth   report the deepest assembly chain under the given assembly
  -verbose     debug logging

Environment (.env supported):
  BOMKIT_CATALOG_DIR, BOMKIT_FORMAT, BOMKIT_LOG_LEVEL`)
}
