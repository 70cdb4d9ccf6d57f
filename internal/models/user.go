package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID      string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name    string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Balance float64 `gorm:"column:balance;type:numeric(12,2);not null;default:0" json:"balance"`

	// Standard timestamps
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
