package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title    string `gorm:"column:title;type:varchar(1000);not null" json:"title"`
	Content  string `gorm:"column:content;type:text" json:"content"`
	AuthorID string `gorm:"column:author_id;type:uuid;index;not null" json:"authorId"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`

	// Standard timestamps
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
