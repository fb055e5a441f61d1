package repository

import (
	"errors"
	"time"

	"github.com/sweepscout/tracker/internal/domain"

	"gorm.io/gorm"
)

// SavedCasinoRepository implements domain.SavedCasinoRepository
type SavedCasinoRepository struct {
	db *gorm.DB
}

// NewSavedCasinoRepository creates a new saved-casino repository
func NewSavedCasinoRepository(db *gorm.DB) domain.SavedCasinoRepository {
	return &SavedCasinoRepository{db: db}
}

// Create creates a new saved-casino row. The unique index on
// (user_id, casino_id) rejects a second row for the same pair;
// that surfaces as gorm.ErrDuplicatedKey.
func (r *SavedCasinoRepository) Create(sc *domain.SavedCasino) error {
	sc.CreatedAt = time.Now()
	sc.UpdatedAt = time.Now()
	return r.db.Create(sc).Error
}

// GetByUserAndCasino retrieves the row for one (user, casino) pair
func (r *SavedCasinoRepository) GetByUserAndCasino(userID, casinoID string) (*domain.SavedCasino, error) {
	var sc domain.SavedCasino
	result := r.db.Where("user_id = ? AND casino_id = ?", userID, casinoID).First(&sc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &sc, nil
}

// ListByUserID retrieves all saved rows for a user
func (r *SavedCasinoRepository) ListByUserID(userID string) ([]*domain.SavedCasino, error) {
	var rows []*domain.SavedCasino
	result := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// Update updates an existing saved-casino row
func (r *SavedCasinoRepository) Update(sc *domain.SavedCasino) error {
	sc.UpdatedAt = time.Now()
	return r.db.Save(sc).Error
}

// Delete removes the row for one (user, casino) pair
func (r *SavedCasinoRepository) Delete(userID, casinoID string) error {
	result := r.db.Where("user_id = ? AND casino_id = ?", userID, casinoID).
		Delete(&domain.SavedCasino{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
