package dto

import "github.com/creatorhub/socialgraph/internal/enum"

// Create inputs mirror the GraphQL input object shapes one to one. No
// business validation happens here; referential integrity is the store's job.

type CreateUserInput struct {
	Name    string
	Balance float64
}

type CreateProfileInput struct {
	IsMale       bool
	YearOfBirth  int
	UserID       string
	MemberTypeID enum.MemberTierID
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// Change inputs are partial: nil pointers mean "leave the field untouched".

type ChangeUserInput struct {
	Name    *string
	Balance *float64
}

type ChangeProfileInput struct {
	IsMale       *bool
	YearOfBirth  *int
	MemberTypeID *enum.MemberTierID
}

type ChangePostInput struct {
	Title   *string
	Content *string
}
