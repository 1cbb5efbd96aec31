package catalogjson

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	assembliesFile := writeFile(t, dir, "assemblies.json", `{
		"SINK-1B": {
			"name": "Single Basin Sink",
			"type": "ASSEMBLY",
			"category_code": "SINK",
			"subcategory_code": "BODY",
			"status": "ACTIVE",
			"components": [
				{"part_id": "BASIN-X", "quantity": 1},
				{"part_id": "LEG-KIT", "quantity": 4, "notes": "height adjustable"}
			]
		},
		"LEG-KIT": {
			"name": "Leg Kit",
			"type": "KIT",
			"category_code": "LEGS",
			"components": []
		}
	}`)

	partsFile := writeFile(t, dir, "parts.json", `{
		"BASIN-X": {
			"name": "Basin X",
			"manufacturer_part_number": "MB-2410",
			"manufacturer_info": "Acme Basins",
			"type": "COMPONENT",
			"order_flag": true
		}
	}`)

	loader := NewLoader()
	assemblies, parts, err := loader.LoadCatalog(assembliesFile, partsFile)
	if err != nil {
		t.Fatalf("Expected catalog load to succeed: %v", err)
	}

	if len(assemblies) != 2 {
		t.Fatalf("Expected 2 assemblies, got %d", len(assemblies))
	}
	if len(parts) != 1 {
		t.Fatalf("Expected 1 part, got %d", len(parts))
	}

	// Output is sorted by id, so LEG-KIT comes first
	legKit := assemblies[0]
	if legKit.ID != "LEG-KIT" {
		t.Fatalf("Expected LEG-KIT first, got %s", legKit.ID)
	}
	if len(legKit.Components) != 0 {
		t.Errorf("Expected terminal composite, got %d components", len(legKit.Components))
	}
	if legKit.Type != "KIT" {
		t.Errorf("Expected type KIT, got %s", legKit.Type)
	}

	sink := assemblies[1]
	if sink.CategoryCode != "SINK" || sink.SubcategoryCode != "BODY" {
		t.Errorf("Expected category codes carried through, got %s/%s", sink.CategoryCode, sink.SubcategoryCode)
	}
	if len(sink.Components) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(sink.Components))
	}
	if sink.Components[1].Quantity != 4 || sink.Components[1].Notes != "height adjustable" {
		t.Errorf("Expected component quantity and notes preserved, got %+v", sink.Components[1])
	}

	basin := parts[0]
	if basin.ManufacturerPartNumber != "MB-2410" || basin.ManufacturerInfo != "Acme Basins" {
		t.Errorf("Expected manufacturer fields carried through, got %+v", basin)
	}
}

func TestLoadCatalog_Failures(t *testing.T) {
	dir := t.TempDir()

	valid := writeFile(t, dir, "valid_parts.json", `{"BASIN-X": {"name": "Basin X"}}`)

	testCases := []struct {
		name    string
		content string
	}{
		{"malformed JSON", `{"SINK-1B": `},
		{"wrong document shape", `["SINK-1B"]`},
		{"non-positive quantity", `{"SINK-1B": {"name": "Sink", "components": [{"part_id": "X", "quantity": 0}]}}`},
		{"empty component reference", `{"SINK-1B": {"name": "Sink", "components": [{"quantity": 1}]}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assembliesFile := writeFile(t, dir, "assemblies.json", tc.content)
			if _, _, err := NewLoader().LoadCatalog(assembliesFile, valid); err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
		})
	}

	if _, err := NewLoader().LoadAssemblies(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Expected error for a missing file")
	}
}
