package interfaces

import (
	"context"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
)

type ProfileRepository interface {
	// GetByID and GetByUserID return nil without an error when no profile matches.
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]*models.Profile, error)
	ListByMemberTier(ctx context.Context, memberTypeID enum.MemberTierID) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, id string, input *dto.ChangeProfileInput) (*models.Profile, error)
	Delete(ctx context.Context, id string) error
}
