package markdown

import (
	"testing"

	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestRenderProjectTable_Empty(t *testing.T) {
	assert.Equal(t, "No projects found.", RenderProjectTable(nil))
}

func TestRenderProjectPage(t *testing.T) {
	projects := []model.Project{{ID: 1, Name: "Website redesign for Q3", Status: model.ProjectStatusActive}}
	out := RenderProjectPage(query.Paginate(projects, 1, 9))
	assert.Contains(t, out, "Website redesign for Q3")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestRenderTaskGroups(t *testing.T) {
	users := []model.User{{ID: 2, Name: "Trần Thị Bình"}}
	buckets := query.GroupByStatus([]model.Task{
		{ID: 1, Name: "Draft wireframe", Status: model.StatusTodo, AssigneeID: 2, DueDate: "2024-03-01"},
		{ID: 2, Name: "Ship it", Status: model.StatusDone},
	})
	out := RenderTaskGroups(buckets, map[model.Status]bool{model.StatusDone: false}, users)

	assert.Contains(t, out, "▼ To do (1)")
	assert.Contains(t, out, "Draft wireframe")
	assert.Contains(t, out, "Trần Thị Bình")
	assert.Contains(t, out, "03-01")
	assert.Contains(t, out, "▼ Pending (0)")
	assert.Contains(t, out, "No tasks.")
	assert.Contains(t, out, "▶ Done (1)")
	assert.NotContains(t, out, "Ship it")
}

func TestRenderMemberTable(t *testing.T) {
	out := RenderMemberTable([]query.MemberView{
		{User: model.User{ID: 1, Name: "Nguyễn Văn An", Email: "an@example.com"}, Role: model.RoleOwner},
	})
	assert.Contains(t, out, "NA")
	assert.Contains(t, out, "an@example.com")
	assert.Contains(t, out, model.RoleOwner)
	assert.Equal(t, "No members found.", RenderMemberTable(nil))
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "03-01", shortDate("2024-03-01"))
	assert.Equal(t, "soon", shortDate("soon"))
	assert.Equal(t, "", shortDate(""))
}
