// Package auth implements sign-up and sign-in over the users collection.
// Passwords are stored and compared as plain text.
package auth

import (
	"errors"
	"strings"

	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/rogersnm/teamboard/internal/validate"
)

var ErrInvalidCredentials = errors.New("email or password is incorrect")

type Registration struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Register creates a user with the plain "User" role and no projects.
func Register(s *store.Store, r Registration) (*model.User, error) {
	email := strings.TrimSpace(r.Email)
	errs := validate.Registration(r.Name, email, r.Password, r.Confirm)
	if !errs.Has("email") {
		_, err := s.FindUserByEmail(email)
		switch {
		case err == nil:
			errs.Add("email", "email is already registered")
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return s.CreateUser(model.User{
		Name:     strings.TrimSpace(r.Name),
		Email:    email,
		Password: r.Password,
		Role:     model.RoleUser,
		Projects: []model.ID{},
	})
}

// Login returns the user whose email and password both match.
func Login(s *store.Store, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if err := validate.Login(email, password).Err(); err != nil {
		return nil, err
	}
	u, err := s.FindUserByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
