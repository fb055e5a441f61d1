package tracker

import (
	"errors"
	"time"

	"github.com/sweepscout/tracker/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// unsave removes the tracking record for one (user, casino) pair
func (uc *TrackerUseCase) unsave(userID, casinoID string) error {
	if err := uc.validateInput(userID, casinoID); err != nil {
		return err
	}

	if err := uc.savedCasinoRepo.Delete(userID, casinoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewAppError(domain.ErrCodeSavedCasinoNotFound, "Saved casino not found", 404, nil)
		}
		uc.logger.Error("Failed to delete saved casino",
			zap.String("user_id", userID),
			zap.String("casino_id", casinoID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to unsave casino", 500, err)
	}

	uc.recomputeAggregates(userID)

	uc.logger.Info("Casino unsaved",
		zap.String("user_id", userID),
		zap.String("casino_id", casinoID))
	return nil
}

// updateAmounts overwrites all four numeric fields of an existing record.
// Inputs arrive already coerced by the transport layer; values are stored as
// given, including a max below the min.
func (uc *TrackerUseCase) updateAmounts(userID, casinoID string, balance, depositTotal, dailyScMin, dailyScMax float64) (*domain.SavedCasino, error) {
	sc, err := uc.getExisting(userID, casinoID)
	if err != nil {
		return nil, err
	}

	sc.Balance = balance
	sc.DepositTotal = depositTotal
	sc.DailyScMin = &dailyScMin
	sc.DailyScMax = &dailyScMax

	if err := uc.savedCasinoRepo.Update(sc); err != nil {
		uc.logger.Error("Failed to update saved casino amounts",
			zap.String("user_id", userID),
			zap.String("casino_id", casinoID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update amounts", 500, err)
	}

	uc.recomputeAggregates(userID)

	return sc, nil
}

// recordVisit stamps lastVisited and updatedAt. The visit time does not feed
// the aggregate, so no recomputation happens here.
func (uc *TrackerUseCase) recordVisit(userID, casinoID string) (*domain.SavedCasino, error) {
	sc, err := uc.getExisting(userID, casinoID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sc.LastVisited = &now

	if err := uc.savedCasinoRepo.Update(sc); err != nil {
		uc.logger.Error("Failed to record casino visit",
			zap.String("user_id", userID),
			zap.String("casino_id", casinoID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to record visit", 500, err)
	}

	return sc, nil
}
