package tracker

import (
	"github.com/sweepscout/tracker/internal/domain"
	"go.uber.org/zap"
)

// ComputeAggregate derives the per-user totals from a set of saved-casino
// rows. A nil daily SC bound counts as zero.
func ComputeAggregate(rows []*domain.SavedCasino) domain.UserAggregate {
	var agg domain.UserAggregate
	for _, row := range rows {
		agg.TotalBalance += row.Balance
		agg.TotalDeposits += row.DepositTotal
		if row.DailyScMin != nil {
			agg.TotalDailyScMin += *row.DailyScMin
		}
		if row.DailyScMax != nil {
			agg.TotalDailyScMax += *row.DailyScMax
		}
	}
	return agg
}

// recomputeAggregates re-scans the user's rows and rewrites the denormalized
// totals on the user record. It runs synchronously after the triggering
// mutation has committed and must never fail that mutation: every error is
// logged and swallowed. A full re-scan self-heals any staleness left by an
// earlier failure here.
func (uc *TrackerUseCase) recomputeAggregates(userID string) {
	rows, err := uc.savedCasinoRepo.ListByUserID(userID)
	if err != nil {
		uc.logger.Error("Aggregate recomputation failed to read saved casinos",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}

	agg := ComputeAggregate(rows)

	if err := uc.userRepo.UpdateAggregates(userID, agg); err != nil {
		uc.logger.Error("Aggregate recomputation failed to persist totals",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}

	uc.logger.Debug("User aggregates recomputed",
		zap.String("user_id", userID),
		zap.Float64("total_balance", agg.TotalBalance),
		zap.Float64("total_deposits", agg.TotalDeposits))
}
