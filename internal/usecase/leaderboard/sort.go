package leaderboard

import (
	"sort"
	"strings"

	"github.com/sweepscout/tracker/internal/domain"
)

// SortKey selects the active leaderboard column
type SortKey string

const (
	SortByTotalBalance SortKey = "total_balance"
	SortByDailyBonus   SortKey = "daily_bonus"
	SortByName         SortKey = "name"
)

// topMarked is how many leading positions get the top-of-board marker,
// whichever column is active.
const topMarked = 3

// RankedEntry is a leaderboard entry with its 1-based position in the
// active sort order.
type RankedEntry struct {
	domain.LeaderboardEntry
	Rank int  `json:"rank"`
	Top  bool `json:"top"`
}

// ParseSortKey maps a query value onto a sort key, defaulting to total
// balance.
func ParseSortKey(v string) SortKey {
	switch SortKey(v) {
	case SortByDailyBonus:
		return SortByDailyBonus
	case SortByName:
		return SortByName
	default:
		return SortByTotalBalance
	}
}

// Rank sorts entries by the given key and direction and derives ranks from
// the resulting order. On the descending board, ties on the balance column
// break on daily bonus descending and ties on daily bonus break on balance
// descending; ascending sorts keep tied entries in their incoming order.
func Rank(entries []domain.LeaderboardEntry, key SortKey, descending bool) []RankedEntry {
	sorted := make([]domain.LeaderboardEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch key {
		case SortByDailyBonus:
			if a.DailyBonus != b.DailyBonus {
				if descending {
					return a.DailyBonus > b.DailyBonus
				}
				return a.DailyBonus < b.DailyBonus
			}
			return descending && a.TotalBalance > b.TotalBalance
		case SortByName:
			if descending {
				return strings.Compare(a.Name, b.Name) > 0
			}
			return strings.Compare(a.Name, b.Name) < 0
		default:
			if a.TotalBalance != b.TotalBalance {
				if descending {
					return a.TotalBalance > b.TotalBalance
				}
				return a.TotalBalance < b.TotalBalance
			}
			return descending && a.DailyBonus > b.DailyBonus
		}
	})

	ranked := make([]RankedEntry, len(sorted))
	for i, e := range sorted {
		ranked[i] = RankedEntry{
			LeaderboardEntry: e,
			Rank:             i + 1,
			Top:              i < topMarked,
		}
	}
	return ranked
}
