package model

import "slices"

const (
	RoleOwner = "Project owner"

	ProjectStatusActive = "Đang thực hiện"
)

// DateLayout is the format of user-entered dates.
const DateLayout = "2006-01-02"

type Member struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}

type Project struct {
	ID          ID       `json:"id"`
	Name        string   `json:"projectName"`
	Description string   `json:"projectDescription"`
	Status      string   `json:"status,omitempty"`
	CreatedDate string   `json:"createdDate,omitempty"`
	CreatorID   ID       `json:"creatorId,omitempty"`
	Members     []Member `json:"members"`
	Tasks       []ID     `json:"tasks"`
}

func (p Project) GetID() ID { return p.ID }

// HasMember reports whether any member entry belongs to userID.
func (p *Project) HasMember(userID ID) bool {
	return slices.ContainsFunc(p.Members, func(m Member) bool { return m.UserID == userID })
}

// Owner returns the member entry holding the owner role.
func (p *Project) Owner() (Member, bool) {
	for _, m := range p.Members {
		if m.Role == RoleOwner {
			return m, true
		}
	}
	return Member{}, false
}

// IsOwnedBy reports whether userID holds the owner role in the project.
func (p *Project) IsOwnedBy(userID ID) bool {
	return slices.ContainsFunc(p.Members, func(m Member) bool {
		return m.UserID == userID && m.Role == RoleOwner
	})
}

func (p *Project) HasTask(taskID ID) bool {
	return slices.Contains(p.Tasks, taskID)
}

type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
}
