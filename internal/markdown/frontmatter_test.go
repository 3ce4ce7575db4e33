package markdown

import (
	"strings"
	"testing"

	"github.com/rogersnm/teamboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TaskFields(t *testing.T) {
	input := `---
id: 4
name: "Draft homepage wireframe"
project: 1
assignee: 2
status: In Progress
start: "2024-02-24"
due: "2024-03-02"
priority: Cao
progress: Có rủi ro
---
`
	task, err := Parse[model.Task](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, model.ID(4), task.ID)
	assert.Equal(t, "Draft homepage wireframe", task.Name)
	assert.Equal(t, model.ID(2), task.AssigneeID)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Equal(t, "2024-03-02", task.DueDate)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, model.ProgressAtRisk, task.Progress)
}

func TestParse_IgnoresTextAfterBlock(t *testing.T) {
	input := "---\nid: 1\nname: \"Review copy\"\n---\n\nstray notes\n"
	task, err := Parse[model.Task](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, model.ID(1), task.ID)
	assert.Equal(t, "Review copy", task.Name)
}

func TestParse_UnknownField(t *testing.T) {
	input := "---\nid: 1\nname: \"Review copy\"\npriorty: Cao\n---\n"
	_, err := Parse[model.Task](strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priorty")
}

func TestParse_NoFrontmatter(t *testing.T) {
	_, err := Parse[model.Task](strings.NewReader("Just some plain markdown."))
	assert.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse[model.Task](strings.NewReader("---\n{{invalid yaml\n---\n"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	original := model.Task{
		ID:         3,
		Name:       "Set up staging deploy",
		ProjectID:  1,
		AssigneeID: 2,
		Status:     model.StatusTodo,
		AssignDate: "2024-02-24",
		DueDate:    "2024-03-05",
		Priority:   model.PriorityMedium,
		Progress:   model.ProgressOnSchedule,
	}

	data, err := Marshal(original, "status: To do | Done", "priority: Cao | Thấp")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n# status: To do | Done\n# priority: Cao | Thấp\n"))

	parsed, err := Parse[model.Task](strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestMarshal_OmitsPassword(t *testing.T) {
	data, err := Marshal(model.User{ID: 1, Name: "An", Password: "secret123"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret123")
}
