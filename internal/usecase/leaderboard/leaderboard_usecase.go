package leaderboard

import (
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LeaderboardUseCase implements domain.LeaderboardUseCase. The projection
// re-scans every user's live saved-casino rows at read time; it deliberately
// ignores the stored per-user aggregate.
type LeaderboardUseCase struct {
	userRepo domain.UserRepository
	logger   *logger.Logger
}

// NewLeaderboardUseCase creates a new leaderboard usecase
func NewLeaderboardUseCase(userRepo domain.UserRepository, logger *logger.Logger) domain.LeaderboardUseCase {
	return &LeaderboardUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetLeaderboard builds one entry per user from their current rows. The
// projection never fails its caller: any read error is logged and an empty
// list returned instead.
func (uc *LeaderboardUseCase) GetLeaderboard() []domain.LeaderboardEntry {
	users, err := uc.userRepo.ListWithSavedCasinos()
	if err != nil {
		uc.logger.Error("Failed to read users for leaderboard", zap.Error(err))
		return []domain.LeaderboardEntry{}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		var totalBalance, dailyBonus float64
		for _, row := range user.SavedCasinos {
			totalBalance += row.Balance
			if row.DailyScMin != nil {
				dailyBonus += *row.DailyScMin
			}
		}
		entries = append(entries, domain.LeaderboardEntry{
			UserID:       user.ID,
			Name:         user.Name,
			Image:        user.Image,
			TotalBalance: totalBalance,
			DailyBonus:   dailyBonus,
		})
	}
	return entries
}
