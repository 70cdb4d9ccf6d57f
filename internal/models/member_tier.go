package models

import (
	"github.com/creatorhub/socialgraph/internal/enum"
)

// MemberTier is keyed by the tier enum value, not a generated identifier.
// Rows for the closed tier set are seeded by the migrate command.
type MemberTier struct {
	ID                 enum.MemberTierID `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Discount           float64           `gorm:"column:discount;type:numeric(5,2);not null" json:"discount"`
	PostsLimitPerMonth int               `gorm:"column:posts_limit_per_month;not null" json:"postsLimitPerMonth"`
}

func (MemberTier) TableName() string {
	return "member_tiers"
}
