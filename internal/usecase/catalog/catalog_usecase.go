package catalog

import (
	"sort"
	"strings"

	"github.com/sweepscout/tracker/internal/domain"
)

// tierOrder ranks the editorial tiers; lower is better. Tiers the map does
// not know sort last.
var tierOrder = map[domain.CasinoTier]int{
	domain.TierFantastic: 0,
	domain.TierExcellent: 1,
	domain.TierGreat:     2,
	domain.TierSolid:     3,
	domain.TierUnproven:  4,
}

const unknownTierRank = 99

// Filters holds the selected tag values per filter dimension. A casino
// passes a dimension when its tag array contains every selected value;
// an empty dimension passes everything.
type Filters struct {
	Features       []string
	PaymentMethods []string
	Games          []string
}

// SortField selects the catalog sort column
type SortField string

const (
	SortByTier SortField = "tier"
	SortByName SortField = "name"
)

// CatalogUseCase serves the filtered, sorted catalog view
type CatalogUseCase struct {
	catalog domain.CasinoCatalog
}

// NewCatalogUseCase creates a new catalog usecase
func NewCatalogUseCase(catalog domain.CasinoCatalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List returns the catalog entries passing the filters, sorted
func (uc *CatalogUseCase) List(filters Filters, field SortField, descending bool) []domain.CasinoEntry {
	entries := uc.catalog.All()

	filtered := entries[:0]
	for _, e := range entries {
		if matches(e, filters) {
			filtered = append(filtered, e)
		}
	}

	Sort(filtered, field, descending)
	return filtered
}

// BySlug looks up a single entry for the detail view
func (uc *CatalogUseCase) BySlug(slug string) (*domain.CasinoEntry, bool) {
	return uc.catalog.BySlug(slug)
}

// TierRank returns the sort ordinal for a tier
func TierRank(tier domain.CasinoTier) int {
	if rank, ok := tierOrder[tier]; ok {
		return rank
	}
	return unknownTierRank
}

// matches applies every dimension's superset test; dimensions AND together
func matches(e domain.CasinoEntry, f Filters) bool {
	return containsAll(e.Features, f.Features) &&
		containsAll(e.PaymentMethods, f.PaymentMethods) &&
		containsAll(e.Games, f.Games)
}

func containsAll(tags, selected []string) bool {
	for _, want := range selected {
		found := false
		for _, tag := range tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sort orders entries in place. Tier sorting ("descending" meaning best tier
// first) always falls back to name ascending on ties; name sorting is plain
// lexicographic in either direction.
func Sort(entries []domain.CasinoEntry, field SortField, descending bool) {
	switch field {
	case SortByName:
		sort.SliceStable(entries, func(i, j int) bool {
			if descending {
				return strings.Compare(entries[i].Name, entries[j].Name) > 0
			}
			return strings.Compare(entries[i].Name, entries[j].Name) < 0
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			ri, rj := TierRank(entries[i].Tier), TierRank(entries[j].Tier)
			if ri != rj {
				if descending {
					return ri < rj
				}
				return ri > rj
			}
			return strings.Compare(entries[i].Name, entries[j].Name) < 0
		})
	}
}
