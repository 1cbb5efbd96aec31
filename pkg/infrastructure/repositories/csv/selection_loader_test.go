package csv

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSelections(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "selections.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadSelections(t *testing.T) {
	path := writeSelections(t, "identifier,quantity,source\nSINK-1B,2,SINK_BODY\nFAUCET-ASM,1,FAUCET_KIT\n")

	selections, err := NewLoader().LoadSelections(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}

	if len(selections) != 2 {
		t.Fatalf("Expected 2 selections, got %d", len(selections))
	}
	if selections[0].ID != "SINK-1B" || selections[0].Quantity != 2 || selections[0].Source != "SINK_BODY" {
		t.Errorf("Unexpected first selection: %+v", selections[0])
	}
	if selections[1].ID != "FAUCET-ASM" {
		t.Errorf("Expected file order preserved, got %s second", selections[1].ID)
	}
}

func TestLoadSelections_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"header mismatch", "part,qty\nSINK-1B,2\n"},
		{"missing data rows", "identifier,quantity,source\n"},
		{"invalid quantity", "identifier,quantity,source\nSINK-1B,two,SINK_BODY\n"},
		{"zero quantity", "identifier,quantity,source\nSINK-1B,0,SINK_BODY\n"},
		{"empty identifier", "identifier,quantity,source\n,1,SINK_BODY\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSelections(t, tc.content)
			if _, err := NewLoader().LoadSelections(path); err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
		})
	}

	if _, err := NewLoader().LoadSelections(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("Expected error for a missing file")
	}
}
