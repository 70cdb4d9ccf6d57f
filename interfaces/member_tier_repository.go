package interfaces

import (
	"context"

	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
)

type MemberTierRepository interface {
	// GetByID returns nil without an error when no tier matches.
	GetByID(ctx context.Context, id enum.MemberTierID) (*models.MemberTier, error)
	GetAll(ctx context.Context) ([]*models.MemberTier, error)
}
