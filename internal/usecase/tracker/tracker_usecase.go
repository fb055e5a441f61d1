package tracker

import (
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
)

// TrackerUseCase implements domain.TrackerUseCase: the saved-casino record
// store plus the synchronous aggregate recomputation that follows every
// mutating operation except RecordVisit.
type TrackerUseCase struct {
	savedCasinoRepo domain.SavedCasinoRepository
	userRepo        domain.UserRepository
	catalog         domain.CasinoCatalog
	logger          *logger.Logger
}

// NewTrackerUseCase creates a new tracker usecase
func NewTrackerUseCase(
	savedCasinoRepo domain.SavedCasinoRepository,
	userRepo domain.UserRepository,
	catalog domain.CasinoCatalog,
	logger *logger.Logger,
) domain.TrackerUseCase {
	return &TrackerUseCase{
		savedCasinoRepo: savedCasinoRepo,
		userRepo:        userRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// Save creates a tracking record for one (user, casino) pair
func (uc *TrackerUseCase) Save(userID, casinoID string, dailyScMin, dailyScMax *float64) (*domain.SavedCasino, error) {
	return uc.save(userID, casinoID, dailyScMin, dailyScMax)
}

// Unsave removes a tracking record
func (uc *TrackerUseCase) Unsave(userID, casinoID string) error {
	return uc.unsave(userID, casinoID)
}

// UpdateAmounts overwrites the four user-entered numeric fields
func (uc *TrackerUseCase) UpdateAmounts(userID, casinoID string, balance, depositTotal, dailyScMin, dailyScMax float64) (*domain.SavedCasino, error) {
	return uc.updateAmounts(userID, casinoID, balance, depositTotal, dailyScMin, dailyScMax)
}

// RecordVisit stamps the visit time without touching the aggregate
func (uc *TrackerUseCase) RecordVisit(userID, casinoID string) (*domain.SavedCasino, error) {
	return uc.recordVisit(userID, casinoID)
}

// ListForUser returns the user's saved rows with their computed totals
func (uc *TrackerUseCase) ListForUser(userID string) ([]*domain.SavedCasino, domain.UserAggregate, error) {
	if userID == "" {
		return nil, domain.UserAggregate{}, domain.NewUnauthorizedError("")
	}

	rows, err := uc.savedCasinoRepo.ListByUserID(userID)
	if err != nil {
		return nil, domain.UserAggregate{}, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list saved casinos", 500, err)
	}

	return rows, ComputeAggregate(rows), nil
}
