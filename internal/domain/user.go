package domain

import (
	"context"
	"time"
)

// User represents a signed-in player. The ID is the opaque subject issued by
// the external identity provider, so the same person always maps to the same
// row across sessions.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Name      string    `json:"name" gorm:"type:varchar(128)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Image     string    `json:"image" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`

	// Denormalized aggregate over the user's saved casinos, rewritten in full
	// by every create/update-amounts/delete of a saved row.
	TotalBalance    float64 `json:"total_balance" gorm:"type:numeric(20,2);not null;default:0"`
	TotalDeposits   float64 `json:"total_deposits" gorm:"type:numeric(20,2);not null;default:0"`
	TotalDailyScMin float64 `json:"total_daily_sc_min" gorm:"type:numeric(20,2);not null;default:0"`
	TotalDailyScMax float64 `json:"total_daily_sc_max" gorm:"type:numeric(20,2);not null;default:0"`

	SavedCasinos []SavedCasino `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// UserAggregate holds the per-user totals derived from the saved-casino rows.
type UserAggregate struct {
	TotalBalance    float64 `json:"total_balance"`
	TotalDeposits   float64 `json:"total_deposits"`
	TotalDailyScMin float64 `json:"total_daily_sc_min"`
	TotalDailyScMax float64 `json:"total_daily_sc_max"`
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id string) (*User, error)
	Upsert(user *User) error
	UpdateAggregates(userID string, agg UserAggregate) error
	ListWithSavedCasinos() ([]*User, error)
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	SignIn(ctx context.Context, code string) (string, *User, error)
	GetUserInfo(userID string) (*User, error)
}
