package repository

import (
	"errors"
	"time"

	"github.com/sweepscout/tracker/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// Upsert creates the user row on first sign-in and refreshes the profile
// fields on every subsequent one. The aggregate columns are left untouched.
func (r *UserRepository) Upsert(user *domain.User) error {
	now := time.Now()
	user.UpdatedAt = now
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "image", "updated_at"}),
	}).Create(user).Error
}

// UpdateAggregates overwrites the denormalized totals for a user
func (r *UserRepository) UpdateAggregates(userID string, agg domain.UserAggregate) error {
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_balance":      agg.TotalBalance,
			"total_deposits":     agg.TotalDeposits,
			"total_daily_sc_min": agg.TotalDailyScMin,
			"total_daily_sc_max": agg.TotalDailyScMax,
			"updated_at":         time.Now(),
		}).Error
}

// ListWithSavedCasinos retrieves every user together with their saved rows
func (r *UserRepository) ListWithSavedCasinos() ([]*domain.User, error) {
	var users []*domain.User
	result := r.db.Preload("SavedCasinos").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
