package users

import (
	"errors"
	"time"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrNoChanges    = errors.New("no changes")
)

type User struct {
	ID                int       `json:"id"`
	UserName          string    `json:"userName"`
	Email             string    `json:"email"`
	Password          string    `json:"-"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
	CreatedAt         time.Time `json:"-"`
}

type CreateUserParams struct {
	UserName          string
	Email             string
	PasswordHash      string
	ProfilePictureURL *string
}

// UpdateUserParams carries the user profile fields to change. Nil
// fields are left untouched.
type UpdateUserParams struct {
	UserName          *string
	Email             *string
	PasswordHash      *string
	ProfilePictureURL *string
}

func (p UpdateUserParams) Empty() bool {
	return p.UserName == nil && p.Email == nil && p.PasswordHash == nil && p.ProfilePictureURL == nil
}
