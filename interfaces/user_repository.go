package interfaces

import (
	"context"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/models"
)

type UserRepository interface {
	// GetByID returns nil without an error when no user matches.
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, input *dto.ChangeUserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
