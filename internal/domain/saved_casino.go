package domain

import (
	"time"
)

// SavedCasino is one user's tracking record for one catalog casino: the
// self-reported balance and deposit total plus the daily bonus range they
// collect there. At most one row exists per (user, casino) pair.
type SavedCasino struct {
	ID           int64      `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID       string     `json:"user_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_saved_casinos_user_casino"`
	CasinoID     string     `json:"casino_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_saved_casinos_user_casino"`
	Balance      float64    `json:"balance" gorm:"type:numeric(20,2);not null;default:0"`
	DepositTotal float64    `json:"deposit_total" gorm:"type:numeric(20,2);not null;default:0"`
	DailyScMin   *float64   `json:"daily_sc_min" gorm:"type:numeric(20,2)"`
	DailyScMax   *float64   `json:"daily_sc_max" gorm:"type:numeric(20,2)"`
	Rating       float64    `json:"rating" gorm:"type:numeric(3,1);not null"`
	LastVisited  *time.Time `json:"last_visited"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for SavedCasino
func (s SavedCasino) TableName() string {
	return "saved_casinos"
}

// SavedCasinoRepository defines the interface for saved-casino data
type SavedCasinoRepository interface {
	Create(sc *SavedCasino) error
	GetByUserAndCasino(userID, casinoID string) (*SavedCasino, error)
	ListByUserID(userID string) ([]*SavedCasino, error)
	Update(sc *SavedCasino) error
	Delete(userID, casinoID string) error
}

// TrackerUseCase defines the interface for saved-casino business logic.
// Save, Unsave and UpdateAmounts keep the user's denormalized aggregate in
// sync; RecordVisit only touches the visit timestamp.
type TrackerUseCase interface {
	Save(userID, casinoID string, dailyScMin, dailyScMax *float64) (*SavedCasino, error)
	Unsave(userID, casinoID string) error
	UpdateAmounts(userID, casinoID string, balance, depositTotal, dailyScMin, dailyScMax float64) (*SavedCasino, error)
	RecordVisit(userID, casinoID string) (*SavedCasino, error)
	ListForUser(userID string) ([]*SavedCasino, UserAggregate, error)
}
