package seeder

import (
	"log"

	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/usecase/tracker"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo        domain.UserRepository
	savedCasinoRepo domain.SavedCasinoRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository, savedCasinoRepo domain.SavedCasinoRepository) *Seeder {
	return &Seeder{
		userRepo:        userRepo,
		savedCasinoRepo: savedCasinoRepo,
	}
}

func floatPtr(v float64) *float64 { return &v }

// SeedUsers seeds the database with demo users and their saved casinos
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	users := []*domain.User{
		{ID: "demo-user-1", Name: "High Roller Hank", Email: "hank@example.com"},
		{ID: "demo-user-2", Name: "Slot Machine Sue", Email: "sue@example.com"},
		{ID: "demo-user-3", Name: "Bonus Hunter Bea", Email: "bea@example.com"},
	}

	saved := map[string][]domain.SavedCasino{
		"demo-user-1": {
			{CasinoID: "crowncoins", Balance: 120.50, DepositTotal: 200, DailyScMin: floatPtr(0.5), DailyScMax: floatPtr(1), Rating: 4.7},
			{CasinoID: "realprize", Balance: 45.25, DepositTotal: 60, DailyScMin: floatPtr(0.3), DailyScMax: floatPtr(1), Rating: 4.5},
		},
		"demo-user-2": {
			{CasinoID: "zula", Balance: 310, DepositTotal: 150, DailyScMin: floatPtr(0.5), DailyScMax: floatPtr(1.5), Rating: 4.8},
		},
		"demo-user-3": {},
	}

	for _, u := range users {
		if err := s.userRepo.Upsert(u); err != nil {
			log.Printf("Error upserting user, aborting.")
			return err
		}

		for _, sc := range saved[u.ID] {
			existing, err := s.savedCasinoRepo.GetByUserAndCasino(u.ID, sc.CasinoID)
			if err != nil {
				log.Printf("Error checking existing saved casino, skipping.")
				continue
			}
			if existing != nil {
				log.Printf("Saved casino already exists, skipping.")
				continue
			}

			row := sc
			row.UserID = u.ID
			if err := s.savedCasinoRepo.Create(&row); err != nil {
				log.Printf("Error creating saved casino.")
				return err
			}
		}

		rows, err := s.savedCasinoRepo.ListByUserID(u.ID)
		if err != nil {
			log.Printf("Error listing saved casinos for aggregates.")
			return err
		}
		if err := s.userRepo.UpdateAggregates(u.ID, tracker.ComputeAggregate(rows)); err != nil {
			log.Printf("Error updating user aggregates.")
			return err
		}
	}

	log.Printf("User seeding completed successfully")
	return nil
}
