package domain

// LeaderboardEntry is one user's row in the public leaderboard. It is
// computed from the live saved-casino rows at read time, never from the
// stored per-user aggregate.
type LeaderboardEntry struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	TotalBalance float64 `json:"total_balance"`
	DailyBonus   float64 `json:"daily_bonus"`
}

// LeaderboardUseCase defines the interface for leaderboard reads. The
// projection never fails its caller: any read error yields an empty list.
type LeaderboardUseCase interface {
	GetLeaderboard() []LeaderboardEntry
}
