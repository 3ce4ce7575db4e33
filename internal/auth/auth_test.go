package auth

import (
	"testing"

	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/rogersnm/teamboard/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reg(email string) Registration {
	return Registration{Name: "Nguyễn Văn An", Email: email, Password: "secret123", Confirm: "secret123"}
}

func TestRegister(t *testing.T) {
	s := store.New(kv.NewMemory())

	u, err := Register(s, reg("an@example.com"))
	require.NoError(t, err)
	assert.Equal(t, model.ID(1), u.ID)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.Empty(t, u.Projects)
	assert.Equal(t, "secret123", u.Password)

	u2, err := Register(s, reg("binh@example.com"))
	require.NoError(t, err)
	assert.Equal(t, model.ID(2), u2.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := store.New(kv.NewMemory())
	_, err := Register(s, reg("an@example.com"))
	require.NoError(t, err)

	_, err = Register(s, reg("an@example.com"))
	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("email"))

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegister_FormErrors(t *testing.T) {
	s := store.New(kv.NewMemory())
	_, err := Register(s, Registration{Email: "bad", Password: "short", Confirm: "other"})
	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("email"))
	assert.True(t, errs.Has("password"))
}

func TestLogin(t *testing.T) {
	s := store.New(kv.NewMemory())
	_, err := Register(s, reg("an@example.com"))
	require.NoError(t, err)

	u, err := Login(s, "an@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", u.Name)

	_, err = Login(s, "an@example.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Login(s, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Login(s, "", "")
	var errs validate.Errors
	assert.ErrorAs(t, err, &errs)
}
