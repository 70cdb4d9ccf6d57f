package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/creatorhub/socialgraph/internal/enum"
)

// buildQuery assembles the query root: single-record lookups by id and
// unconditional collection scans. Not-found on a read is null, not an error.
func (b *schemaBuilder) buildQuery() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := b.repos.UserRepository.GetByID(p.Context, p.Args["id"].(string))
					if err != nil {
						return nil, err
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(b.userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.UserRepository.GetAll(p.Context)
				},
			},
			"profile": &graphql.Field{
				Type: b.profileType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile, err := b.repos.ProfileRepository.GetByID(p.Context, p.Args["id"].(string))
					if err != nil {
						return nil, err
					}
					if profile == nil {
						return nil, nil
					}
					return profile, nil
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(b.profileType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.ProfileRepository.GetAll(p.Context)
				},
			},
			"post": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := b.repos.PostRepository.GetByID(p.Context, p.Args["id"].(string))
					if err != nil {
						return nil, err
					}
					if post == nil {
						return nil, nil
					}
					return post, nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(b.postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.PostRepository.GetAll(p.Context)
				},
			},
			"memberType": &graphql.Field{
				Type: b.memberTierType,
				Args: graphql.FieldConfigArgument{
					// An unknown tier value is rejected by enum coercion
					// before this resolver is reached.
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(memberTypeIDEnum)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tier, err := b.repos.MemberTierRepository.GetByID(p.Context, p.Args["id"].(enum.MemberTierID))
					if err != nil {
						return nil, err
					}
					if tier == nil {
						return nil, nil
					}
					return tier, nil
				},
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(b.memberTierType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.MemberTierRepository.GetAll(p.Context)
				},
			},
		},
	})
}
