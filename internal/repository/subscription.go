package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/creatorhub/socialgraph/interfaces"
	"github.com/creatorhub/socialgraph/internal/models"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) interfaces.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) ListAuthorIDs(ctx context.Context, subscriberID string) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "subscriptionRepository.ListAuthorIDs")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var authorIDs []string
	result := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Pluck("author_id", &authorIDs)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return authorIDs, nil
}

func (r *subscriptionRepository) ListSubscriberIDs(ctx context.Context, authorID string) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "subscriptionRepository.ListSubscriberIDs")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var subscriberIDs []string
	result := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("author_id = ?", authorID).
		Pluck("subscriber_id", &subscriberIDs)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return subscriberIDs, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, subscriberID, authorID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "subscriptionRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	span.SetTag("subscriber.id", subscriberID)
	span.SetTag("author.id", authorID)

	edge := models.Subscription{SubscriberID: subscriberID, AuthorID: authorID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		tracing.TraceErr(span, err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSubscriptionExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, authorID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "subscriptionRepository.Delete")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	span.SetTag("subscriber.id", subscriberID)
	span.SetTag("author.id", authorID)

	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&models.Subscription{})
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		tracing.TraceErr(span, ErrSubscriptionNotFound)
		return ErrSubscriptionNotFound
	}
	return nil
}
