package users

import (
	"context"
)

type repoMock struct {
	users  map[int]*User
	nextID int
}

func NewMockUsersRepo() *repoMock {
	return &repoMock{
		users:  make(map[int]*User),
		nextID: 1,
	}
}

func (r *repoMock) Create(_ context.Context, params CreateUserParams) (int, error) {
	for _, u := range r.users {
		if u.UserName == params.UserName || u.Email == params.Email {
			return 0, ErrUserExists
		}
	}
	id := r.nextID
	r.nextID++
	r.users[id] = &User{
		ID:                id,
		UserName:          params.UserName,
		Email:             params.Email,
		Password:          params.PasswordHash,
		ProfilePictureURL: params.ProfilePictureURL,
	}
	return id, nil
}

func (r *repoMock) GetByIdentifier(_ context.Context, identifier string) (*User, error) {
	for _, u := range r.users {
		if u.UserName == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repoMock) GetByID(_ context.Context, id int) (*User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *repoMock) Update(_ context.Context, id int, params UpdateUserParams) error {
	if params.Empty() {
		return ErrNoChanges
	}
	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	if params.UserName != nil {
		user.UserName = *params.UserName
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.PasswordHash != nil {
		user.Password = *params.PasswordHash
	}
	if params.ProfilePictureURL != nil {
		user.ProfilePictureURL = params.ProfilePictureURL
	}
	return nil
}

func (r *repoMock) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
