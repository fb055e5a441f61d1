package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/sweepscout/tracker/internal/domain"
)

//go:embed casinos.json
var casinosJSON []byte

// Catalog implements domain.CasinoCatalog over the embedded reference data.
// The data is immutable for the lifetime of the process.
type Catalog struct {
	entries []domain.CasinoEntry
	byID    map[string]*domain.CasinoEntry
	bySlug  map[string]*domain.CasinoEntry
}

// NewCatalog parses the embedded catalog and builds the lookup indexes
func NewCatalog() (*Catalog, error) {
	var entries []domain.CasinoEntry
	if err := json.Unmarshal(casinosJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	c := &Catalog{
		entries: entries,
		byID:    make(map[string]*domain.CasinoEntry, len(entries)),
		bySlug:  make(map[string]*domain.CasinoEntry, len(entries)),
	}
	for i := range c.entries {
		e := &c.entries[i]
		if _, exists := c.byID[e.ID]; exists {
			return nil, fmt.Errorf("duplicate casino id in catalog: %s", e.ID)
		}
		if _, exists := c.bySlug[e.Slug]; exists {
			return nil, fmt.Errorf("duplicate casino slug in catalog: %s", e.Slug)
		}
		c.byID[e.ID] = e
		c.bySlug[e.Slug] = e
	}
	return c, nil
}

// All returns every catalog entry
func (c *Catalog) All() []domain.CasinoEntry {
	out := make([]domain.CasinoEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByID looks up an entry by casino id
func (c *Catalog) ByID(id string) (*domain.CasinoEntry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// BySlug looks up an entry by slug
func (c *Catalog) BySlug(slug string) (*domain.CasinoEntry, bool) {
	e, ok := c.bySlug[slug]
	return e, ok
}
