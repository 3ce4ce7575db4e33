package store

import (
	"testing"

	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskToProject_Idempotent(t *testing.T) {
	s, _, p := setupProject(t)
	require.NoError(t, s.AddTaskToProject(p.ID, 5))
	require.NoError(t, s.AddTaskToProject(p.ID, 5))

	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ID{5}, got.Tasks)
}

func TestAddTaskToProject_MissingProject(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.AddTaskToProject(1, 1), ErrProjectNotFound)
}

func TestAddMember_NewEmailCreatesUser(t *testing.T) {
	s, _, p := setupProject(t)

	u, err := s.AddMemberToProject(p.ID, MemberInput{Email: "new.person@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new.person", u.Name)
	assert.Equal(t, model.RoleMember, u.Role)
	assert.Equal(t, []model.ID{p.ID}, u.Projects)

	users, err := s.ListUsers()
	require.NoError(t, err)
	matches := 0
	for _, x := range users {
		if x.Email == "new.person@example.com" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)

	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	entries := 0
	for _, m := range got.Members {
		if m.UserID == u.ID {
			entries++
			assert.Equal(t, model.RoleMember, m.Role)
		}
	}
	assert.Equal(t, 1, entries)
}

func TestAddMember_ExistingUserKeepsProjects(t *testing.T) {
	s, owner, p := setupProject(t)
	other, err := s.CreateProject(owner.ID, "Mobile app onboarding flow", "Design and ship the first run experience for mobile.")
	require.NoError(t, err)
	m := createUser(t, s, "Member", "m@example.com")

	_, err = s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com", Role: "Developer"})
	require.NoError(t, err)
	_, err = s.AddMemberToProject(other.ID, MemberInput{Email: "m@example.com"})
	require.NoError(t, err)

	u, err := s.GetUser(m.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ID{p.ID, other.ID}, u.Projects)

	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Member{UserID: m.ID, Role: "Developer"}, got.Members[1])
}

func TestAddMember_AlreadyMember(t *testing.T) {
	s, owner, p := setupProject(t)

	_, err := s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com"})
	require.NoError(t, err)
	u, err := s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyMember)
	require.NotNil(t, u)

	_, err = s.AddMemberToProject(p.ID, MemberInput{Email: owner.Email})
	assert.ErrorIs(t, err, ErrAlreadyMember)

	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 2)
}

func TestAddMember_MissingProjectCreatesNoUser(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddMemberToProject(3, MemberInput{Email: "m@example.com"})
	assert.ErrorIs(t, err, ErrProjectNotFound)

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAddMember_Validation(t *testing.T) {
	s, _, p := setupProject(t)

	_, err := s.AddMemberToProject(p.ID, MemberInput{Email: "not-an-email"})
	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("email"))

	_, err = s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com", Role: model.RoleOwner})
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("role"))
}

func TestRemoveMember(t *testing.T) {
	s, _, p := setupProject(t)
	m, err := s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.RemoveMemberFromProject(p.ID, m.ID))

	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	assert.False(t, got.HasMember(m.ID))
	u, err := s.GetUser(m.ID)
	require.NoError(t, err)
	assert.NotContains(t, u.Projects, p.ID)

	assert.ErrorIs(t, s.RemoveMemberFromProject(p.ID, m.ID), ErrNotFound)
}

func TestRemoveMember_OwnerRetained(t *testing.T) {
	s, owner, p := setupProject(t)

	err := s.RemoveMemberFromProject(p.ID, owner.ID)
	assert.ErrorIs(t, err, ErrOwnerRetained)

	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOwnedBy(owner.ID))
	u, err := s.GetUser(owner.ID)
	require.NoError(t, err)
	assert.Contains(t, u.Projects, p.ID)
}

func TestUpdateMemberRole(t *testing.T) {
	s, owner, p := setupProject(t)
	m, err := s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateMemberRole(p.ID, m.ID, "Tester"))
	got, err := s.GetProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tester", got.Members[1].Role)

	assert.ErrorIs(t, s.UpdateMemberRole(p.ID, owner.ID, "Tester"), ErrOwnerRoleFixed)
	assert.ErrorIs(t, s.UpdateMemberRole(p.ID, 42, "Tester"), ErrNotFound)

	var errs validate.Errors
	assert.ErrorAs(t, s.UpdateMemberRole(p.ID, m.ID, model.RoleOwner), &errs)
}

func TestEnsureOwnerIsMember_Repairs(t *testing.T) {
	b := kv.NewMemory()
	require.NoError(t, b.Set(KeyUsers, `[{"id":1,"name":"Owner","email":"o@example.com","projects":[]}]`))
	require.NoError(t, b.Set(KeyProjects,
		`[{"id":"1","projectName":"Legacy","projectDescription":"d","creatorId":"1","members":[{"userId":null,"role":"x"}]}]`))
	s := New(b)

	p, err := s.EnsureOwnerIsMember(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Member{{UserID: 1, Role: model.RoleOwner}}, p.Members)
	assert.NotNil(t, p.Tasks)

	stored, err := s.GetProject(1)
	require.NoError(t, err)
	assert.Equal(t, p.Members, stored.Members)
	u, err := s.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, []model.ID{1}, u.Projects)
}

func TestEnsureOwnerIsMember_NoChangeNoWrite(t *testing.T) {
	s, _, p := setupProject(t)
	before, _, err := s.Backend().Get(KeyProjects)
	require.NoError(t, err)

	_, err = s.EnsureOwnerIsMember(p.ID)
	require.NoError(t, err)

	after, _, err := s.Backend().Get(KeyProjects)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEnsureOwnerIsMember_WithoutCreator(t *testing.T) {
	b := kv.NewMemory()
	require.NoError(t, b.Set(KeyProjects, `[{"id":1,"projectName":"Legacy","members":[]}]`))
	s := New(b)

	p, err := s.EnsureOwnerIsMember(1)
	require.NoError(t, err)
	assert.Empty(t, p.Members)
}

func TestOpenProject(t *testing.T) {
	s, owner, p := setupProject(t)
	outsider := createUser(t, s, "Outsider", "out@example.com")

	got, err := s.OpenProject(p.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = s.OpenProject(p.ID, outsider.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.OpenProject(99, owner.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectMembers(t *testing.T) {
	s, owner, p := setupProject(t)
	_, err := s.AddMemberToProject(p.ID, MemberInput{Email: "m@example.com", Name: "Minh"})
	require.NoError(t, err)

	members, err := s.ProjectMembers(p.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, owner.Name, members[0].User.Name)
	assert.Equal(t, model.RoleOwner, members[0].Role)
	assert.Equal(t, "Minh", members[1].User.Name)
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)
	owner := createUser(t, s, "Owner", "owner@example.com")

	p, err := s.Seed(owner.ID)
	require.NoError(t, err)
	assert.Len(t, p.Members, 3)
	assert.Len(t, p.Tasks, 4)

	tasks, err := s.ListTasks(TaskFilter{ProjectID: p.ID})
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

func TestSeed_SecondRunWritesNothing(t *testing.T) {
	s := newTestStore(t)
	owner := createUser(t, s, "Owner", "owner@example.com")
	_, err := s.Seed(owner.ID)
	require.NoError(t, err)
	projectsBefore, err := s.ListProjects()
	require.NoError(t, err)
	usersBefore, err := s.ListUsers()
	require.NoError(t, err)

	_, err = s.Seed(owner.ID)
	assert.ErrorIs(t, err, ErrAlreadySeeded)

	projectsAfter, err := s.ListProjects()
	require.NoError(t, err)
	usersAfter, err := s.ListUsers()
	require.NoError(t, err)
	assert.Equal(t, projectsBefore, projectsAfter)
	assert.Equal(t, usersBefore, usersAfter)
}
