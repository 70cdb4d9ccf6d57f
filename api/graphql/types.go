package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/creatorhub/socialgraph/internal/repository"
)

// schemaBuilder holds the object types plus the repository handle the
// relationship resolvers close over. Repositories are injected here once at
// schema construction; the per-request context still flows through
// graphql.ResolveParams into every repository call.
type schemaBuilder struct {
	repos *repository.Repositories

	userType       *graphql.Object
	profileType    *graphql.Object
	postType       *graphql.Object
	memberTierType *graphql.Object
}

func newSchemaBuilder(repos *repository.Repositories) *schemaBuilder {
	b := &schemaBuilder{repos: repos}
	b.buildTypes()
	return b
}

func (b *schemaBuilder) buildTypes() {
	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(uuidType)},
			"name":    &graphql.Field{Type: graphql.String},
			"balance": &graphql.Field{Type: graphql.Float},
		},
	})

	b.profileType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(uuidType)},
			"isMale":       &graphql.Field{Type: graphql.Boolean},
			"yearOfBirth":  &graphql.Field{Type: graphql.Int},
			"userId":       &graphql.Field{Type: uuidType},
			"memberTypeId": &graphql.Field{Type: memberTypeIDEnum},
		},
	})

	b.postType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(uuidType)},
			"title":    &graphql.Field{Type: graphql.String},
			"content":  &graphql.Field{Type: graphql.String},
			"authorId": &graphql.Field{Type: uuidType},
		},
	})

	b.memberTierType = graphql.NewObject(graphql.ObjectConfig{
		Name: "MemberType",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: memberTypeIDEnum},
			"discount":           &graphql.Field{Type: graphql.Float},
			"postsLimitPerMonth": &graphql.Field{Type: graphql.Int},
		},
	})

	// Relationship fields are attached after construction: the type graph
	// is cyclic (User -> Profile -> MemberType -> Profile, Post -> User).
	b.userType.AddFieldConfig("profile", &graphql.Field{
		Type:    b.profileType,
		Resolve: b.resolveUserProfile,
	})
	b.userType.AddFieldConfig("posts", &graphql.Field{
		Type:    graphql.NewList(b.postType),
		Resolve: b.resolveUserPosts,
	})
	b.userType.AddFieldConfig("userSubscribedTo", &graphql.Field{
		Type:    graphql.NewList(b.userType),
		Resolve: b.resolveUserSubscribedTo,
	})
	b.userType.AddFieldConfig("subscribedToUser", &graphql.Field{
		Type:    graphql.NewList(b.userType),
		Resolve: b.resolveSubscribedToUser,
	})

	b.profileType.AddFieldConfig("user", &graphql.Field{
		Type:    b.userType,
		Resolve: b.resolveProfileUser,
	})
	b.profileType.AddFieldConfig("memberType", &graphql.Field{
		Type:    b.memberTierType,
		Resolve: b.resolveProfileMemberType,
	})

	b.postType.AddFieldConfig("author", &graphql.Field{
		Type:    b.userType,
		Resolve: b.resolvePostAuthor,
	})

	b.memberTierType.AddFieldConfig("profiles", &graphql.Field{
		Type:    graphql.NewList(b.profileType),
		Resolve: b.resolveMemberTypeProfiles,
	})
}
