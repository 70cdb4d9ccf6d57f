package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/interfaces"
	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) interfaces.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.GetByUserID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.GetAll")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var profiles []*models.Profile
	result := r.db.WithContext(ctx).Find(&profiles)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return profiles, nil
}

func (r *profileRepository) ListByMemberTier(ctx context.Context, memberTypeID enum.MemberTierID) ([]*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.ListByMemberTier")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var profiles []*models.Profile
	result := r.db.WithContext(ctx).Where("member_type_id = ?", memberTypeID).Find(&profiles)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		tracing.TraceErr(span, err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProfileAlreadyExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, input *dto.ChangeProfileInput) (*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.Update")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	updates := map[string]interface{}{}
	if input.IsMale != nil {
		updates["is_male"] = *input.IsMale
	}
	if input.YearOfBirth != nil {
		updates["year_of_birth"] = *input.YearOfBirth
	}
	if input.MemberTypeID != nil {
		updates["member_type_id"] = *input.MemberTypeID
	}

	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		tracing.TraceErr(span, err)
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
			tracing.TraceErr(span, err)
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return nil, ErrInvalidReference
			}
			return nil, err
		}
	}
	return &profile, nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.Delete")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	result := r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		tracing.TraceErr(span, ErrProfileNotFound)
		return ErrProfileNotFound
	}
	return nil
}
