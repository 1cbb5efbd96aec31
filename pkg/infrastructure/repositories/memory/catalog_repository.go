package memory

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/domain/repositories"
)

// snapshot is one immutable generation of catalog data. A failed load
// produces a snapshot carrying only its error, which keeps the store usable
// for diagnosing why the load failed.
type snapshot struct {
	assemblies map[entities.CatalogID]*entities.Assembly
	parts      map[entities.CatalogID]*entities.Part
	err        error
}

// CatalogRepository is an in-memory catalog store. Reads are lock-free
// against an atomically swapped snapshot, so concurrent expansions never
// observe a half-updated catalog during a reload.
type CatalogRepository struct {
	snap   atomic.Pointer[snapshot]
	loadMu sync.Mutex
}

// NewCatalogRepository creates an empty, unloaded catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// Load ingests catalog data, replacing any previous snapshot. On validation
// failure the store enters a degraded state: Ready reports false and
// LoadError carries the diagnostic, but no query panics.
func (r *CatalogRepository) Load(assemblies []*entities.Assembly, parts []*entities.Part) error {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()

	next := &snapshot{
		assemblies: make(map[entities.CatalogID]*entities.Assembly, len(assemblies)),
		parts:      make(map[entities.CatalogID]*entities.Part, len(parts)),
	}

	for i, asm := range assemblies {
		if asm == nil {
			return r.fail(fmt.Errorf("assembly %d is nil", i))
		}
		if asm.ID == "" {
			return r.fail(fmt.Errorf("assembly %d has an empty id", i))
		}
		if _, exists := next.assemblies[asm.ID]; exists {
			return r.fail(fmt.Errorf("duplicate assembly id: %s", asm.ID))
		}
		for j, comp := range asm.Components {
			if comp.ReferenceID == "" {
				return r.fail(fmt.Errorf("assembly %s component %d has an empty reference id", asm.ID, j))
			}
			if comp.Quantity <= 0 {
				return r.fail(fmt.Errorf("assembly %s component %d has non-positive quantity %d", asm.ID, j, comp.Quantity))
			}
		}
		next.assemblies[asm.ID] = asm
	}

	for i, part := range parts {
		if part == nil {
			return r.fail(fmt.Errorf("part %d is nil", i))
		}
		if part.ID == "" {
			return r.fail(fmt.Errorf("part %d has an empty id", i))
		}
		if _, exists := next.parts[part.ID]; exists {
			return r.fail(fmt.Errorf("duplicate part id: %s", part.ID))
		}
		// An id present as both part and assembly is tolerated here; assembly
		// lookup takes precedence and the catalog lint pass flags it.
		next.parts[part.ID] = part
	}

	r.snap.Store(next)
	return nil
}

// MarkLoadFailed records an external load failure (e.g. unreadable or
// malformed source files) so queries report the diagnostic instead of
// an empty catalog.
func (r *CatalogRepository) MarkLoadFailed(err error) {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	r.fail(err)
}

func (r *CatalogRepository) fail(err error) error {
	r.snap.Store(&snapshot{err: err})
	return err
}

// Ready reports whether the catalog loaded successfully
func (r *CatalogRepository) Ready() bool {
	s := r.snap.Load()
	return s != nil && s.err == nil
}

// LoadError returns the diagnostic from a failed load, ErrCatalogNotLoaded
// before any load, or nil once loaded
func (r *CatalogRepository) LoadError() error {
	s := r.snap.Load()
	if s == nil {
		return repositories.ErrCatalogNotLoaded
	}
	return s.err
}

// GetAssembly returns the assembly registered under id
func (r *CatalogRepository) GetAssembly(id entities.CatalogID) (*entities.Assembly, bool) {
	s := r.snap.Load()
	if s == nil || s.err != nil {
		return nil, false
	}
	asm, ok := s.assemblies[id]
	return asm, ok
}

// GetPart returns the part registered under id
func (r *CatalogRepository) GetPart(id entities.CatalogID) (*entities.Part, bool) {
	s := r.snap.Load()
	if s == nil || s.err != nil {
		return nil, false
	}
	part, ok := s.parts[id]
	return part, ok
}

// IsAssembly reports whether id is registered as an assembly
func (r *CatalogRepository) IsAssembly(id entities.CatalogID) bool {
	_, ok := r.GetAssembly(id)
	return ok
}

// IsPart reports whether id resolves as a part. An id registered as both
// part and assembly resolves as an assembly, so IsPart reports false for it.
func (r *CatalogRepository) IsPart(id entities.CatalogID) bool {
	if r.IsAssembly(id) {
		return false
	}
	_, ok := r.GetPart(id)
	return ok
}

// Contains reports whether id resolves to any catalog entity
func (r *CatalogRepository) Contains(id entities.CatalogID) bool {
	s := r.snap.Load()
	if s == nil || s.err != nil {
		return false
	}
	if _, ok := s.assemblies[id]; ok {
		return true
	}
	_, ok := s.parts[id]
	return ok
}

// AllAssemblies returns every assembly in the current snapshot
func (r *CatalogRepository) AllAssemblies() []*entities.Assembly {
	s := r.snap.Load()
	if s == nil || s.err != nil {
		return nil
	}
	assemblies := make([]*entities.Assembly, 0, len(s.assemblies))
	for _, asm := range s.assemblies {
		assemblies = append(assemblies, asm)
	}
	return assemblies
}

// AllParts returns every part in the current snapshot
func (r *CatalogRepository) AllParts() []*entities.Part {
	s := r.snap.Load()
	if s == nil || s.err != nil {
		return nil
	}
	parts := make([]*entities.Part, 0, len(s.parts))
	for _, part := range s.parts {
		parts = append(parts, part)
	}
	return parts
}
