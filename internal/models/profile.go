package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creatorhub/socialgraph/internal/enum"
)

// Profile holds the optional per-user profile record. The unique index on
// user_id enforces the one-profile-per-user rule at the store level.
type Profile struct {
	ID           string            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	IsMale       bool              `gorm:"column:is_male;not null" json:"isMale"`
	YearOfBirth  int               `gorm:"column:year_of_birth;not null" json:"yearOfBirth"`
	UserID       string            `gorm:"column:user_id;type:uuid;uniqueIndex;not null" json:"userId"`
	MemberTypeID enum.MemberTierID `gorm:"column:member_type_id;type:varchar(50);index;not null" json:"memberTypeId"`

	// Foreign keys only; deleting a user cascades to their profile, tiers
	// cannot be removed while referenced.
	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MemberTier *MemberTier `gorm:"foreignKey:MemberTypeID;constraint:OnDelete:RESTRICT" json:"-"`

	// Standard timestamps
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if !p.MemberTypeID.IsValid() {
		return fmt.Errorf("unknown member tier %q", p.MemberTypeID)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
