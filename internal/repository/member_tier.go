package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/creatorhub/socialgraph/interfaces"
	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

type memberTierRepository struct {
	db *gorm.DB
}

func NewMemberTierRepository(db *gorm.DB) interfaces.MemberTierRepository {
	return &memberTierRepository{db: db}
}

func (r *memberTierRepository) GetByID(ctx context.Context, id enum.MemberTierID) (*models.MemberTier, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "memberTierRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var tier models.MemberTier
	if err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &tier, nil
}

func (r *memberTierRepository) GetAll(ctx context.Context) ([]*models.MemberTier, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "memberTierRepository.GetAll")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var tiers []*models.MemberTier
	result := r.db.WithContext(ctx).Find(&tiers)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return tiers, nil
}
