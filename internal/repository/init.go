package repository

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/creatorhub/socialgraph/config"
	"github.com/creatorhub/socialgraph/interfaces"
	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
)

type Repositories struct {
	UserRepository         interfaces.UserRepository
	ProfileRepository      interfaces.ProfileRepository
	PostRepository         interfaces.PostRepository
	MemberTierRepository   interfaces.MemberTierRepository
	SubscriptionRepository interfaces.SubscriptionRepository
}

func InitRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		PostRepository:         NewPostRepository(db),
		MemberTierRepository:   NewMemberTierRepository(db),
		SubscriptionRepository: NewSubscriptionRepository(db),
	}
}

func MigrateDB(dbConfig *config.DatabaseConfig, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(5)

	err = db.AutoMigrate(
		&models.User{},
		&models.MemberTier{},
		&models.Profile{},
		&models.Post{},
		&models.Subscription{},
	)
	if err != nil {
		return errors.Wrap(err, "auto migration failed")
	}

	if err := seedMemberTiers(db); err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConn)
	sqlDB.SetMaxOpenConns(dbConfig.MaxConn)
	sqlDB.SetConnMaxLifetime(time.Duration(dbConfig.ConnMaxLifetime) * time.Minute)

	return nil
}

// seedMemberTiers inserts the closed tier set. Profiles reference tiers by
// enum value, so the rows must exist before any profile is created.
func seedMemberTiers(db *gorm.DB) error {
	tiers := []models.MemberTier{
		{ID: enum.MemberTierBasic, Discount: 2.5, PostsLimitPerMonth: 20},
		{ID: enum.MemberTierBusiness, Discount: 7.5, PostsLimitPerMonth: 100},
	}
	for _, tier := range tiers {
		if err := db.Where("id = ?", tier.ID).FirstOrCreate(&tier).Error; err != nil {
			return errors.Wrapf(err, "failed to seed member tier %s", tier.ID)
		}
	}
	return nil
}
