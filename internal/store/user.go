package store

import (
	"github.com/rogersnm/teamboard/internal/id"
	"github.com/rogersnm/teamboard/internal/model"
)

// CreateUser stores u under a freshly allocated id. Email uniqueness is a
// registration rule, not enforced here.
func (s *Store) CreateUser(u model.User) (*model.User, error) {
	users, err := s.users()
	if err != nil {
		return nil, err
	}
	u.ID = id.Next(users)
	if u.Projects == nil {
		u.Projects = []model.ID{}
	}
	users = append(users, u)
	if err := s.saveUsers(users); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUser(userID model.ID) (*model.User, error) {
	users, err := s.users()
	if err != nil {
		return nil, err
	}
	i := indexOf(users, userID)
	if i < 0 {
		return nil, notFound("user", userID)
	}
	return &users[i], nil
}

// FindUserByEmail matches the email exactly, case included.
func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	users, err := s.users()
	if err != nil {
		return nil, err
	}
	if i := indexOfEmail(users, email); i >= 0 {
		return &users[i], nil
	}
	return nil, &NotFoundError{Entity: "user", Key: email}
}

func (s *Store) ListUsers() ([]model.User, error) {
	return s.users()
}

func (s *Store) UpdateUser(userID model.ID, upd model.UserUpdate) (*model.User, error) {
	users, err := s.users()
	if err != nil {
		return nil, err
	}
	i := indexOf(users, userID)
	if i < 0 {
		return nil, notFound("user", userID)
	}
	u := &users[i]
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if err := s.saveUsers(users); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the user, drops their non-owner memberships and
// unassigns their tasks.
func (s *Store) DeleteUser(userID model.ID) error {
	users, err := s.users()
	if err != nil {
		return err
	}
	i := indexOf(users, userID)
	if i < 0 {
		return notFound("user", userID)
	}
	users = append(users[:i], users[i+1:]...)
	if err := s.saveUsers(users); err != nil {
		return err
	}
	return s.detachUser(userID)
}

func indexOfEmail(users []model.User, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}
