package model

import "slices"

const (
	RoleUser   = "User"
	RoleMember = "Thành viên"
)

type User struct {
	ID       ID     `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password,omitempty" yaml:"-"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	Projects []ID   `json:"projects" yaml:"projects,omitempty"`
}

func (u User) GetID() ID { return u.ID }

// InProject reports whether projectID is listed in the user's projects.
func (u *User) InProject(projectID ID) bool {
	return slices.Contains(u.Projects, projectID)
}

// UserUpdate holds optional field changes; nil fields are left untouched.
// Project membership is changed only through the relation operations.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}
