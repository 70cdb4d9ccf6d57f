package interfaces

import (
	"context"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/models"
)

type PostRepository interface {
	// GetByID returns nil without an error when no post matches.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, id string, input *dto.ChangePostInput) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}
