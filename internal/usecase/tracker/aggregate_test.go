package tracker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sweepscout/tracker/internal/domain"
)

func TestComputeAggregate(t *testing.T) {
	tests := []struct {
		name string
		rows []*domain.SavedCasino
		want domain.UserAggregate
	}{
		{
			name: "Empty",
			rows: nil,
			want: domain.UserAggregate{},
		},
		{
			name: "Single_Row",
			rows: []*domain.SavedCasino{
				{Balance: 10.5, DepositTotal: 20, DailyScMin: floatPtr(0.5), DailyScMax: floatPtr(1.5)},
			},
			want: domain.UserAggregate{TotalBalance: 10.5, TotalDeposits: 20, TotalDailyScMin: 0.5, TotalDailyScMax: 1.5},
		},
		{
			name: "Nil_Bounds_Count_As_Zero",
			rows: []*domain.SavedCasino{
				{Balance: 5, DepositTotal: 5, DailyScMin: nil, DailyScMax: nil},
				{Balance: 5, DepositTotal: 5, DailyScMin: floatPtr(1), DailyScMax: floatPtr(2)},
			},
			want: domain.UserAggregate{TotalBalance: 10, TotalDeposits: 10, TotalDailyScMin: 1, TotalDailyScMax: 2},
		},
		{
			name: "Negative_Balances_Sum",
			rows: []*domain.SavedCasino{
				{Balance: -25, DepositTotal: 0},
				{Balance: 100, DepositTotal: 50},
			},
			want: domain.UserAggregate{TotalBalance: 75, TotalDeposits: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeAggregate(tt.rows))
		})
	}
}

// TestComputeAggregateMatchesRowSums drives a random create/update/delete
// sequence against a plain in-memory row set and checks that the aggregate
// always equals a fresh sum over the surviving rows.
func TestComputeAggregateMatchesRowSums(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := map[string]*domain.SavedCasino{}
	casinos := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 500; i++ {
		id := casinos[rng.Intn(len(casinos))]
		switch rng.Intn(3) {
		case 0:
			if _, ok := rows[id]; !ok {
				rows[id] = &domain.SavedCasino{
					CasinoID:   id,
					DailyScMin: floatPtr(rng.Float64()),
					DailyScMax: floatPtr(rng.Float64() * 2),
				}
			}
		case 1:
			if row, ok := rows[id]; ok {
				row.Balance = rng.Float64() * 1000
				row.DepositTotal = rng.Float64() * 500
			}
		case 2:
			delete(rows, id)
		}

		var list []*domain.SavedCasino
		var wantBalance, wantDeposits, wantMin, wantMax float64
		for _, row := range rows {
			list = append(list, row)
			wantBalance += row.Balance
			wantDeposits += row.DepositTotal
			wantMin += *row.DailyScMin
			wantMax += *row.DailyScMax
		}

		agg := ComputeAggregate(list)
		assert.InDelta(t, wantBalance, agg.TotalBalance, 1e-9)
		assert.InDelta(t, wantDeposits, agg.TotalDeposits, 1e-9)
		assert.InDelta(t, wantMin, agg.TotalDailyScMin, 1e-9)
		assert.InDelta(t, wantMax, agg.TotalDailyScMax, 1e-9)
	}
}
