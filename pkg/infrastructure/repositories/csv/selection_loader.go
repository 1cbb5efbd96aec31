package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// Loader handles loading order selection lists from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSelections loads an order's top-level selection list from a CSV file.
// Output order matches file order; the expansion forest preserves it.
func (l *Loader) LoadSelections(filename string) ([]*entities.Selection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open selections file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read selections CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("selections CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"identifier", "quantity", "source"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("selections CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var selections []*entities.Selection
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("selections CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		selection, err := parseSelection(record)
		if err != nil {
			return nil, fmt.Errorf("selections CSV row %d: %w", i+2, err)
		}

		selections = append(selections, selection)
	}

	return selections, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseSelection(record []string) (*entities.Selection, error) {
	identifier := strings.TrimSpace(record[0])

	quantity, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[1])
	}

	source := strings.TrimSpace(record[2])

	return entities.NewSelection(entities.CatalogID(identifier), entities.Quantity(quantity), source)
}
