package entities

import "fmt"

// CatalogID represents a unique catalog identifier for a part or assembly
type CatalogID string

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// Part represents a leaf catalog entity with no further decomposition
type Part struct {
	ID                     CatalogID
	Name                   string
	ManufacturerPartNumber string
	ManufacturerInfo       string
	Type                   string
}

// NewPart creates a validated Part
func NewPart(id CatalogID, name string) (*Part, error) {
	if id == "" {
		return nil, fmt.Errorf("part id cannot be empty")
	}

	return &Part{
		ID:   id,
		Name: name,
		Type: "COMPONENT",
	}, nil
}

// ComponentRef is a reference from an assembly to one of its components
type ComponentRef struct {
	ReferenceID CatalogID
	Quantity    Quantity
	Notes       string
}

// NewComponentRef creates a validated ComponentRef
func NewComponentRef(referenceID CatalogID, quantity Quantity, notes string) (*ComponentRef, error) {
	if referenceID == "" {
		return nil, fmt.Errorf("component reference id cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("component quantity must be positive, got %d", quantity)
	}

	return &ComponentRef{
		ReferenceID: referenceID,
		Quantity:    quantity,
		Notes:       notes,
	}, nil
}

// Assembly represents a composite catalog entity decomposable into further
// assemblies and parts. Components may be empty for a terminal composite.
type Assembly struct {
	ID              CatalogID
	Name            string
	Type            string
	CategoryCode    string
	SubcategoryCode string
	Components      []ComponentRef
}

// NewAssembly creates a validated Assembly
func NewAssembly(id CatalogID, name string, components []ComponentRef) (*Assembly, error) {
	if id == "" {
		return nil, fmt.Errorf("assembly id cannot be empty")
	}
	for i, comp := range components {
		if comp.ReferenceID == "" {
			return nil, fmt.Errorf("assembly %s component %d: reference id cannot be empty", id, i)
		}
		if comp.Quantity <= 0 {
			return nil, fmt.Errorf("assembly %s component %d: quantity must be positive, got %d", id, i, comp.Quantity)
		}
	}

	return &Assembly{
		ID:         id,
		Name:       name,
		Type:       "ASSEMBLY",
		Components: components,
	}, nil
}
