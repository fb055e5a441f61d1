package app

import (
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/catalog"
)

func (a *application) InitCatalog() (domain.CasinoCatalog, error) {
	return catalog.NewCatalog()
}
