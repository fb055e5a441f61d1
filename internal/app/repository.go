package app

import (
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.UserRepository, domain.SavedCasinoRepository) {
	return repository.NewUserRepository(db), repository.NewSavedCasinoRepository(db)
}
