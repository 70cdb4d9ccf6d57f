package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/interfaces"
	"github.com/creatorhub/socialgraph/internal/models"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) interfaces.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.GetAll")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var posts []*models.Post
	result := r.db.WithContext(ctx).Find(&posts)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.ListByAuthor")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var posts []*models.Post
	result := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&posts)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return nil, result.Error
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		tracing.TraceErr(span, err)
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return post, nil
}

func (r *postRepository) Update(ctx context.Context, id string, input *dto.ChangePostInput) (*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.Update")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		tracing.TraceErr(span, err)
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&post).Updates(updates).Error; err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
	}
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.Delete")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagEntity(span, id)

	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		tracing.TraceErr(span, ErrPostNotFound)
		return ErrPostNotFound
	}
	return nil
}
