package domain

// CasinoTier is the editorial ranking label on a catalog entry.
type CasinoTier string

const (
	TierFantastic CasinoTier = "Fantastic"
	TierExcellent CasinoTier = "Excellent"
	TierGreat     CasinoTier = "Great"
	TierSolid     CasinoTier = "Solid"
	TierUnproven  CasinoTier = "Unproven"
)

// WelcomeBonus describes a catalog entry's signup offer.
type WelcomeBonus struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// CasinoEntry is one read-only reference-catalog record. The catalog is
// loaded wholesale at startup and never mutated.
type CasinoEntry struct {
	ID             string       `json:"id"`
	Slug           string       `json:"slug"`
	Name           string       `json:"name"`
	Tier           CasinoTier   `json:"tier"`
	LogoURL        string       `json:"logo_url"`
	DailyMinSc     float64      `json:"daily_min_sc"`
	DailyMaxSc     float64      `json:"daily_max_sc"`
	WelcomeBonus   WelcomeBonus `json:"welcome_bonus"`
	Features       []string     `json:"features"`
	PaymentMethods []string     `json:"payment_methods"`
	Games          []string     `json:"games"`
	Pros           []string     `json:"pros"`
	Cons           []string     `json:"cons"`
	VisitURL       string       `json:"visit_url"`
}

// CasinoCatalog supplies catalog lookups. Both id and slug are unique within
// the catalog.
type CasinoCatalog interface {
	All() []CasinoEntry
	ByID(id string) (*CasinoEntry, bool)
	BySlug(slug string) (*CasinoEntry, bool)
}
