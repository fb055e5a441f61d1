package tracker

import (
	"github.com/sweepscout/tracker/internal/domain"
	"go.uber.org/zap"
)

// validateInput enforces the auth and required-field preconditions shared by
// every tracker operation
func (uc *TrackerUseCase) validateInput(userID, casinoID string) error {
	if userID == "" {
		return domain.NewUnauthorizedError("")
	}
	if casinoID == "" {
		return domain.NewAppError(domain.ErrCodeCasinoRequired, "Casino ID is required", 400, nil)
	}
	return nil
}

// getExisting loads the row for one (user, casino) pair, mapping absence to
// a not-found error
func (uc *TrackerUseCase) getExisting(userID, casinoID string) (*domain.SavedCasino, error) {
	if err := uc.validateInput(userID, casinoID); err != nil {
		return nil, err
	}

	sc, err := uc.savedCasinoRepo.GetByUserAndCasino(userID, casinoID)
	if err != nil {
		uc.logger.Error("Failed to get saved casino",
			zap.String("user_id", userID),
			zap.String("casino_id", casinoID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get saved casino", 500, err)
	}
	if sc == nil {
		return nil, domain.NewAppError(domain.ErrCodeSavedCasinoNotFound, "Saved casino not found", 404, nil)
	}
	return sc, nil
}
