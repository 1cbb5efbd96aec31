package repositories

import (
	"errors"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// ErrCatalogNotLoaded is returned when the catalog is queried before a
// successful load, or after a load that failed.
var ErrCatalogNotLoaded = errors.New("catalog not loaded")

// CatalogRepository provides read access to the part and assembly catalog.
// Implementations must be safe for concurrent readers once loaded; a reload
// must swap in a complete snapshot rather than mutating maps in place.
type CatalogRepository interface {
	// Ready reports whether the catalog loaded successfully
	Ready() bool
	// LoadError returns the diagnostic from a failed load, ErrCatalogNotLoaded
	// before any load, or nil once loaded
	LoadError() error

	GetAssembly(id entities.CatalogID) (*entities.Assembly, bool)
	GetPart(id entities.CatalogID) (*entities.Part, bool)

	// IsAssembly and IsPart are mutually exclusive for well-formed catalogs.
	// When an id is registered as both, the assembly interpretation wins.
	IsAssembly(id entities.CatalogID) bool
	IsPart(id entities.CatalogID) bool
	Contains(id entities.CatalogID) bool

	AllAssemblies() []*entities.Assembly
	AllParts() []*entities.Part
}
