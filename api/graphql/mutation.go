package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
)

// buildMutation assembles the mutation root. Create and change mutations
// return the resulting record; delete mutations return true or fail, never
// false. Integrity violations (duplicate profile, dangling references,
// duplicate subscription edges) surface as execution errors straight from
// the repository.
func (b *schemaBuilder) buildMutation() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := decodeCreateUser(p.Args)
					return b.repos.UserRepository.Create(p.Context, &models.User{
						Name:    input.Name,
						Balance: input.Balance,
					})
				},
			},
			"changeUser": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changeUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.UserRepository.Update(p.Context, p.Args["id"].(string), decodeChangeUser(p.Args))
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := b.repos.UserRepository.Delete(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"createProfile": &graphql.Field{
				Type: b.profileType,
				Args: graphql.FieldConfigArgument{
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProfileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := decodeCreateProfile(p.Args)
					return b.repos.ProfileRepository.Create(p.Context, &models.Profile{
						IsMale:       input.IsMale,
						YearOfBirth:  input.YearOfBirth,
						UserID:       input.UserID,
						MemberTypeID: input.MemberTypeID,
					})
				},
			},
			"changeProfile": &graphql.Field{
				Type: b.profileType,
				Args: graphql.FieldConfigArgument{
					"id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changeProfileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.ProfileRepository.Update(p.Context, p.Args["id"].(string), decodeChangeProfile(p.Args))
				},
			},
			"deleteProfile": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := b.repos.ProfileRepository.Delete(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"createPost": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := decodeCreatePost(p.Args)
					return b.repos.PostRepository.Create(p.Context, &models.Post{
						Title:    input.Title,
						Content:  input.Content,
						AuthorID: input.AuthorID,
					})
				},
			},
			"changePost": &graphql.Field{
				Type: b.postType,
				Args: graphql.FieldConfigArgument{
					"id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"dto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changePostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.repos.PostRepository.Update(p.Context, p.Args["id"].(string), decodeChangePost(p.Args))
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := b.repos.PostRepository.Delete(p.Context, p.Args["id"].(string)); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"subscribeTo": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID := p.Args["userId"].(string)
					authorID := p.Args["authorId"].(string)
					if err := b.repos.SubscriptionRepository.Create(p.Context, userID, authorID); err != nil {
						return nil, err
					}
					subscriber, err := b.repos.UserRepository.GetByID(p.Context, userID)
					if err != nil {
						return nil, err
					}
					if subscriber == nil {
						return nil, nil
					}
					return subscriber, nil
				},
			},
			"unsubscribeFrom": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uuidType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					// Removing an edge that does not exist is an error, not a no-op.
					err := b.repos.SubscriptionRepository.Delete(p.Context, p.Args["userId"].(string), p.Args["authorId"].(string))
					if err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})
}

func decodeCreateUser(args map[string]interface{}) *dto.CreateUserInput {
	raw, _ := args["dto"].(map[string]interface{})
	input := &dto.CreateUserInput{}
	if v, ok := raw["name"].(string); ok {
		input.Name = v
	}
	if v, ok := raw["balance"].(float64); ok {
		input.Balance = v
	}
	return input
}

func decodeChangeUser(args map[string]interface{}) *dto.ChangeUserInput {
	raw, _ := args["dto"].(map[string]interface{})
	input := &dto.ChangeUserInput{}
	if v, ok := raw["name"].(string); ok {
		input.Name = &v
	}
	if v, ok := raw["balance"].(float64); ok {
		input.Balance = &v
	}
	return input
}

func decodeCreateProfile(args map[string]interface{}) *dto.CreateProfileInput {
	raw, _ := args["dto"].(map[string]interface{})
	input := &dto.CreateProfileInput{}
	if v, ok := raw["isMale"].(bool); ok {
		input.IsMale = v
	}
	if v, ok := raw["yearOfBirth"].(int); ok {
		input.YearOfBirth = v
	}
	if v, ok := raw["userId"].(string); ok {
		input.UserID = v
	}
	if v, ok := raw["memberTypeId"].(enum.MemberTierID); ok {
		input.MemberTypeID = v
	}
	return input
}

func decodeChangeProfile(args map[string]interface{}) *dto.ChangeProfileInput {
	raw, _ := args["dto"].(map[string]interface{})
	input := &dto.ChangeProfileInput{}
	if v, ok := raw["isMale"].(bool); ok {
		input.IsMale = &v
	}
	if v, ok := raw["yearOfBirth"].(int); ok {
		input.YearOfBirth = &v
	}
	if v, ok := raw["memberTypeId"].(enum.MemberTierID); ok {
		input.MemberTypeID = &v
	}
	return input
}

func decodeCreatePost(args map[string]interface{}) *dto.CreatePostInput {
	raw, _ := args["dto"].(map[string]interface{})
	input := &dto.CreatePostInput{}
	if v, ok := raw["title"].(string); ok {
		input.Title = v
	}
	if v, ok := raw["content"].(string); ok {
		input.Content = v
	}
	if v, ok := raw["authorId"].(string); ok {
		input.AuthorID = v
	}
	return input
}

func decodeChangePost(args map[string]interface{}) *dto.ChangePostInput {
	raw, _ := args["dto"].(map[string]interface{})
	input := &dto.ChangePostInput{}
	if v, ok := raw["title"].(string); ok {
		input.Title = &v
	}
	if v, ok := raw["content"].(string); ok {
		input.Content = &v
	}
	return input
}
