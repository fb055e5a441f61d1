package tracker

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/sweepscout/tracker/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ratingMin = 4.4
	ratingMax = 4.9
)

// newRating picks the display rating assigned once at creation. It is never
// recomputed afterwards.
func newRating() float64 {
	r := ratingMin + rand.Float64()*(ratingMax-ratingMin)
	return math.Round(r*10) / 10
}

// resolveDailySc resolves the daily bonus range for a new record: client
// values win when both were supplied, then the catalog, then zero for
// casinos the catalog does not know.
func (uc *TrackerUseCase) resolveDailySc(casinoID string, clientMin, clientMax *float64) (float64, float64) {
	if clientMin != nil && clientMax != nil {
		return *clientMin, *clientMax
	}

	if entry, ok := uc.catalog.ByID(casinoID); ok {
		return entry.DailyMinSc, entry.DailyMaxSc
	}

	uc.logger.Warn("Casino missing from catalog, defaulting daily SC range to zero",
		zap.String("casino_id", casinoID))
	return 0, 0
}

// save creates the tracking record for one (user, casino) pair
func (uc *TrackerUseCase) save(userID, casinoID string, dailyScMin, dailyScMax *float64) (*domain.SavedCasino, error) {
	if err := uc.validateInput(userID, casinoID); err != nil {
		return nil, err
	}

	existing, err := uc.savedCasinoRepo.GetByUserAndCasino(userID, casinoID)
	if err != nil {
		uc.logger.Error("Failed to check for existing saved casino",
			zap.String("user_id", userID),
			zap.String("casino_id", casinoID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check saved casino", 500, err)
	}
	if existing != nil {
		return nil, domain.NewAppError(domain.ErrCodeCasinoAlreadySaved, "Casino already saved", 409, nil)
	}

	minSc, maxSc := uc.resolveDailySc(casinoID, dailyScMin, dailyScMax)

	sc := &domain.SavedCasino{
		UserID:       userID,
		CasinoID:     casinoID,
		Balance:      0,
		DepositTotal: 0,
		DailyScMin:   &minSc,
		DailyScMax:   &maxSc,
		Rating:       newRating(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.savedCasinoRepo.Create(sc); err != nil {
		// A concurrent save of the same pair loses the race against the
		// unique index rather than creating a second row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewAppError(domain.ErrCodeCasinoAlreadySaved, "Casino already saved", 409, err)
		}
		uc.logger.Error("Failed to create saved casino",
			zap.String("user_id", userID),
			zap.String("casino_id", casinoID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to save casino", 500, err)
	}

	uc.recomputeAggregates(userID)

	uc.logger.Info("Casino saved",
		zap.String("user_id", userID),
		zap.String("casino_id", casinoID),
		zap.Float64("rating", sc.Rating))
	return sc, nil
}
