package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/sweepscout/tracker/internal/domain"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := applyMigrations(testDB); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
}

// applyMigrations executes the repo's up migrations in order
func applyMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	files, err := filepath.Glob(filepath.Join("..", "..", "..", "migrations", "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found")
	}
	sort.Strings(files)

	for _, file := range files {
		migrationSQL, err := os.ReadFile(file) //nolint:gosec,G304
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := sqlDB.Exec(string(migrationSQL)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// newTestRepos begins a transaction per test so each test sees a clean slate
func newTestRepos(t *testing.T) (domain.SavedCasinoRepository, domain.UserRepository) {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewSavedCasinoRepository(tx), NewUserRepository(tx)
}

func seedUser(t *testing.T, userRepo domain.UserRepository, id string) {
	t.Helper()
	require.NoError(t, userRepo.Upsert(&domain.User{ID: id, Name: "Test " + id, Email: id + "@example.com"}))
}

func floatPtr(v float64) *float64 { return &v }

func TestSavedCasinoCreateAndGet(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")

	sc := &domain.SavedCasino{
		UserID:     "u1",
		CasinoID:   "zula",
		Balance:    12.5,
		DailyScMin: floatPtr(0.5),
		DailyScMax: floatPtr(1.5),
		Rating:     4.6,
	}
	require.NoError(t, savedRepo.Create(sc))
	assert.NotZero(t, sc.ID)

	got, err := savedRepo.GetByUserAndCasino("u1", "zula")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12.5, got.Balance)
	assert.Equal(t, 0.5, *got.DailyScMin)
	assert.Equal(t, 4.6, got.Rating)
}

func TestSavedCasinoGetMissingReturnsNil(t *testing.T) {
	savedRepo, _ := newTestRepos(t)

	got, err := savedRepo.GetByUserAndCasino("nobody", "nothing")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSavedCasinoDuplicatePairRejected(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")

	require.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "zula"}))

	err := savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "zula"})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSavedCasinoSamePairDifferentUsers(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")
	seedUser(t, userRepo, "u2")

	assert.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "zula"}))
	assert.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u2", CasinoID: "zula"}))
}

func TestSavedCasinoDelete(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")

	require.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "zula"}))
	require.NoError(t, savedRepo.Delete("u1", "zula"))

	got, err := savedRepo.GetByUserAndCasino("u1", "zula")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSavedCasinoDeleteMissingReturnsNotFound(t *testing.T) {
	savedRepo, _ := newTestRepos(t)

	err := savedRepo.Delete("u1", "never-saved")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSavedCasinoListOrdersByCreation(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")

	require.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "first"}))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "second"}))

	rows, err := savedRepo.ListByUserID("u1")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].CasinoID)
	assert.Equal(t, "second", rows[1].CasinoID)
}

func TestSavedCasinoUpdate(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")

	sc := &domain.SavedCasino{UserID: "u1", CasinoID: "zula"}
	require.NoError(t, savedRepo.Create(sc))

	sc.Balance = 99.75
	sc.DailyScMin = floatPtr(2)
	require.NoError(t, savedRepo.Update(sc))

	got, err := savedRepo.GetByUserAndCasino("u1", "zula")
	require.NoError(t, err)
	assert.Equal(t, 99.75, got.Balance)
	assert.Equal(t, 2.0, *got.DailyScMin)
}

func TestUserUpsertPreservesAggregates(t *testing.T) {
	_, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")

	require.NoError(t, userRepo.UpdateAggregates("u1", domain.UserAggregate{TotalBalance: 500, TotalDeposits: 100}))

	// A later sign-in refreshes the profile but must not clobber totals.
	require.NoError(t, userRepo.Upsert(&domain.User{ID: "u1", Name: "New Name", Email: "u1@example.com"}))

	got, err := userRepo.GetByID("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, 500.0, got.TotalBalance)
	assert.Equal(t, 100.0, got.TotalDeposits)
}

func TestUserListWithSavedCasinos(t *testing.T) {
	savedRepo, userRepo := newTestRepos(t)
	seedUser(t, userRepo, "u1")
	seedUser(t, userRepo, "u2")

	require.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "zula", Balance: 10}))
	require.NoError(t, savedRepo.Create(&domain.SavedCasino{UserID: "u1", CasinoID: "realprize", Balance: 20}))

	users, err := userRepo.ListWithSavedCasinos()

	require.NoError(t, err)
	byID := map[string]*domain.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	require.Contains(t, byID, "u1")
	require.Contains(t, byID, "u2")
	assert.Len(t, byID["u1"].SavedCasinos, 2)
	assert.Empty(t, byID["u2"].SavedCasinos)
}
