package catalogjson

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// assemblyDoc mirrors one entry of the assemblies document. Fields the
// expansion core does not need (status flags, ordering flags) are ignored.
type assemblyDoc struct {
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	CategoryCode    string         `json:"category_code"`
	SubcategoryCode string         `json:"subcategory_code"`
	Components      []componentDoc `json:"components"`
}

type componentDoc struct {
	PartID   string `json:"part_id"`
	Quantity int64  `json:"quantity"`
	Notes    string `json:"notes"`
}

// partDoc mirrors one entry of the parts document
type partDoc struct {
	Name                   string `json:"name"`
	ManufacturerPartNumber string `json:"manufacturer_part_number"`
	ManufacturerInfo       string `json:"manufacturer_info"`
	Type                   string `json:"type"`
}

// Loader handles loading catalog data from JSON documents
type Loader struct{}

// NewLoader creates a new catalog JSON loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadAssemblies loads the assembly document: a JSON object mapping
// assembly id to its definition.
func (l *Loader) LoadAssemblies(filename string) ([]*entities.Assembly, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open assemblies file %s: %w", filename, err)
	}

	var docs map[string]assemblyDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse assemblies JSON: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	assemblies := make([]*entities.Assembly, 0, len(docs))
	for _, id := range ids {
		doc := docs[id]
		components := make([]entities.ComponentRef, 0, len(doc.Components))
		for i, comp := range doc.Components {
			ref, err := entities.NewComponentRef(entities.CatalogID(comp.PartID), entities.Quantity(comp.Quantity), comp.Notes)
			if err != nil {
				return nil, fmt.Errorf("assembly %s component %d: %w", id, i, err)
			}
			components = append(components, *ref)
		}

		asm, err := entities.NewAssembly(entities.CatalogID(id), doc.Name, components)
		if err != nil {
			return nil, fmt.Errorf("assembly %s: %w", id, err)
		}
		if doc.Type != "" {
			asm.Type = doc.Type
		}
		asm.CategoryCode = doc.CategoryCode
		asm.SubcategoryCode = doc.SubcategoryCode
		assemblies = append(assemblies, asm)
	}

	return assemblies, nil
}

// LoadParts loads the part document: a JSON object mapping part id to its
// definition.
func (l *Loader) LoadParts(filename string) ([]*entities.Part, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}

	var docs map[string]partDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse parts JSON: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]*entities.Part, 0, len(docs))
	for _, id := range ids {
		doc := docs[id]
		part, err := entities.NewPart(entities.CatalogID(id), doc.Name)
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", id, err)
		}
		part.ManufacturerPartNumber = doc.ManufacturerPartNumber
		part.ManufacturerInfo = doc.ManufacturerInfo
		if doc.Type != "" {
			part.Type = doc.Type
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// LoadCatalog loads both documents of a catalog source
func (l *Loader) LoadCatalog(assembliesFile, partsFile string) ([]*entities.Assembly, []*entities.Part, error) {
	assemblies, err := l.LoadAssemblies(assembliesFile)
	if err != nil {
		return nil, nil, err
	}

	parts, err := l.LoadParts(partsFile)
	if err != nil {
		return nil, nil, err
	}

	return assemblies, parts, nil
}
