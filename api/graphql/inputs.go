package graphql

import "github.com/graphql-go/graphql"

// Input objects carry no business validation; the type system is the only
// gate. Change inputs leave every field optional so any subset can be sent.

var createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"balance": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var changeUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"balance": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var createProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isMale":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
		"yearOfBirth":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"userId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(uuidType)},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(memberTypeIDEnum)},
	},
})

var changeProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isMale":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"yearOfBirth":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: memberTypeIDEnum},
	},
})

var createPostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(uuidType)},
	},
})

var changePostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
