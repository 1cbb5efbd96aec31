package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/medtechmfg/bomkit/pkg/application/dto"
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// WriteText writes a human-readable report: the expansion forest as an
// indented tree followed by the aggregated export table
func WriteText(w io.Writer, result *dto.BOMResult, aggregated []entities.AggregatedLineItem) error {
	fmt.Fprintf(w, "BOM run %s\n", result.RunID)
	if result.Degraded {
		fmt.Fprintln(w, "WARNING: catalog not loaded, selections passed through unexpanded")
	}
	fmt.Fprintln(w)

	for _, exp := range result.Expanded {
		fmt.Fprintf(w, "Selection: %s x%d", exp.Selection.ID, exp.Selection.Quantity)
		if exp.Selection.Source != "" {
			fmt.Fprintf(w, " (%s)", exp.Selection.Source)
		}
		fmt.Fprintln(w)
		writeTree(w, exp.Node)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "AGGREGATED LINE ITEMS")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, item := range aggregated {
		category := item.Category
		if category == "" {
			category = "UNCATEGORIZED"
		}
		fmt.Fprintf(w, "%-28s %8d  %-12s %s\n", item.ID, item.Quantity, category, strings.Join(item.Sources, ","))
	}
	return nil
}

func writeTree(w io.Writer, node *entities.ResolvedNode) {
	node.Walk(func(n *entities.ResolvedNode) {
		indent := strings.Repeat("  ", n.Level)
		label := n.Name
		if n.Kind == entities.KindUnknown {
			label = fmt.Sprintf("Unknown Item: %s", n.ID)
		}
		fmt.Fprintf(w, "%s- %s [%s] x%d\n", indent, label, n.Kind, n.Quantity)
	})
}

// jsonReport is the export document shape consumed by downstream renderers
type jsonReport struct {
	RunID    string                        `json:"run_id"`
	Degraded bool                          `json:"degraded,omitempty"`
	Forest   []*entities.ResolvedNode      `json:"forest"`
	Items    []entities.AggregatedLineItem `json:"items"`
}

// WriteJSON writes the forest and aggregated items as an indented JSON document
func WriteJSON(w io.Writer, result *dto.BOMResult, aggregated []entities.AggregatedLineItem) error {
	report := jsonReport{
		RunID:    result.RunID.String(),
		Degraded: result.Degraded,
		Forest:   result.Forest(),
		Items:    aggregated,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal BOM report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteCSV writes the aggregated items as CSV rows for spreadsheet import
func WriteCSV(w io.Writer, aggregated []entities.AggregatedLineItem) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"identifier", "description", "quantity", "category", "sources"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range aggregated {
		row := []string{
			string(item.ID),
			item.Description,
			strconv.FormatInt(int64(item.Quantity), 10),
			item.Category,
			strings.Join(item.Sources, ";"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", item.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
