package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/creatorhub/socialgraph/internal/models"
)

// Relationship resolvers: each performs one filtered lookup against the
// repository using a foreign-key value from the parent record. A dangling
// reference resolves to null or an empty list, never an error. Every parent
// issues its own lookup; nothing is batched across siblings.

func (b *schemaBuilder) resolveUserProfile(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*models.User)
	if !ok {
		return nil, nil
	}
	profile, err := b.repos.ProfileRepository.GetByUserID(p.Context, user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return profile, nil
}

func (b *schemaBuilder) resolveUserPosts(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*models.User)
	if !ok {
		return nil, nil
	}
	return b.repos.PostRepository.ListByAuthor(p.Context, user.ID)
}

// resolveUserSubscribedTo walks the edge list where the parent is the
// subscriber, then hydrates each author with its own lookup.
func (b *schemaBuilder) resolveUserSubscribedTo(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*models.User)
	if !ok {
		return nil, nil
	}
	authorIDs, err := b.repos.SubscriptionRepository.ListAuthorIDs(p.Context, user.ID)
	if err != nil {
		return nil, err
	}
	return b.hydrateUsers(p, authorIDs)
}

// resolveSubscribedToUser is the symmetric traversal: the parent is the author.
func (b *schemaBuilder) resolveSubscribedToUser(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*models.User)
	if !ok {
		return nil, nil
	}
	subscriberIDs, err := b.repos.SubscriptionRepository.ListSubscriberIDs(p.Context, user.ID)
	if err != nil {
		return nil, err
	}
	return b.hydrateUsers(p, subscriberIDs)
}

func (b *schemaBuilder) hydrateUsers(p graphql.ResolveParams, ids []string) ([]*models.User, error) {
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		user, err := b.repos.UserRepository.GetByID(p.Context, id)
		if err != nil {
			return nil, err
		}
		if user != nil {
			users = append(users, user)
		}
	}
	return users, nil
}

func (b *schemaBuilder) resolveProfileUser(p graphql.ResolveParams) (interface{}, error) {
	profile, ok := p.Source.(*models.Profile)
	if !ok {
		return nil, nil
	}
	user, err := b.repos.UserRepository.GetByID(p.Context, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user, nil
}

func (b *schemaBuilder) resolveProfileMemberType(p graphql.ResolveParams) (interface{}, error) {
	profile, ok := p.Source.(*models.Profile)
	if !ok {
		return nil, nil
	}
	tier, err := b.repos.MemberTierRepository.GetByID(p.Context, profile.MemberTypeID)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, nil
	}
	return tier, nil
}

func (b *schemaBuilder) resolvePostAuthor(p graphql.ResolveParams) (interface{}, error) {
	post, ok := p.Source.(*models.Post)
	if !ok {
		return nil, nil
	}
	author, err := b.repos.UserRepository.GetByID(p.Context, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}
	return author, nil
}

func (b *schemaBuilder) resolveMemberTypeProfiles(p graphql.ResolveParams) (interface{}, error) {
	tier, ok := p.Source.(*models.MemberTier)
	if !ok {
		return nil, nil
	}
	return b.repos.ProfileRepository.ListByMemberTier(p.Context, tier.ID)
}
