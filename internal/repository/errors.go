package repository

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrProfileAlreadyExists = errors.New("user already has a profile")
	ErrSubscriptionExists   = errors.New("subscription already exists")
	ErrInvalidReference     = errors.New("referenced record does not exist")
)
