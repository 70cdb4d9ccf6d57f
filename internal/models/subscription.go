package models

import "time"

// Subscription is a directed edge on the user graph: the subscriber follows
// the author. The composite primary key makes each ordered pair unique.
type Subscription struct {
	SubscriberID string `gorm:"column:subscriber_id;type:uuid;primaryKey" json:"subscriberId"`
	AuthorID     string `gorm:"column:author_id;type:uuid;primaryKey" json:"authorId"`

	Subscriber *User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	Author     *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"-"`
}

func (Subscription) TableName() string {
	return "subscribers_on_authors"
}
