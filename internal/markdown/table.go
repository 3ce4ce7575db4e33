package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/query"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderProjectTable(projects []model.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}
	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{
			p.ID.String(),
			p.Name,
			p.Status,
			p.CreatedDate,
			strconv.Itoa(len(p.Members)),
			strconv.Itoa(len(p.Tasks)),
		}
	}
	return renderTable([]string{"ID", "Name", "Status", "Created", "Members", "Tasks"}, rows)
}

// RenderProjectPage renders one page of projects with a page indicator.
func RenderProjectPage(page query.Page[model.Project]) string {
	out := RenderProjectTable(page.Items)
	if page.Total == 0 {
		return out
	}
	return out + "\n" + labelStyle.Render(fmt.Sprintf("Page %d of %d (%d projects)", page.Page, page.TotalPages, page.Total))
}

func RenderMemberTable(members []query.MemberView) string {
	if len(members) == 0 {
		return "No members found."
	}
	rows := make([][]string, len(members))
	for i, m := range members {
		rows[i] = []string{query.Initials(m.User.Name), m.User.ID.String(), m.User.Name, m.User.Email, m.Role}
	}
	return renderTable([]string{"", "ID", "Name", "Email", "Role"}, rows)
}

// RenderTaskGroups renders the board: one section per status bucket, with
// collapsed sections showing only their header.
func RenderTaskGroups(buckets []query.Bucket, expanded map[model.Status]bool, users []model.User) string {
	var sb strings.Builder
	for i, b := range buckets {
		if i > 0 {
			sb.WriteString("\n")
		}
		open, ok := expanded[b.Status]
		if !ok {
			open = true
		}
		marker := "▼"
		if !open {
			marker = "▶"
		}
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s %s (%d)", marker, b.Status, len(b.Tasks))))
		sb.WriteString("\n")
		if !open {
			continue
		}
		if len(b.Tasks) == 0 {
			sb.WriteString(labelStyle.Render("  No tasks."))
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(renderTaskTable(b.Tasks, users))
		sb.WriteString("\n")
	}
	return sb.String()
}

func RenderTaskTable(tasks []model.Task, users []model.User) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	return renderTaskTable(tasks, users)
}

func renderTaskTable(tasks []model.Task, users []model.User) string {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			t.ID.String(),
			t.Name,
			query.AssigneeName(t, users),
			RenderPriority(t.Priority),
			shortDate(t.AssignDate),
			shortDate(t.DueDate),
			RenderProgress(t.Progress),
		}
	}
	return renderTable([]string{"ID", "Task", "Assignee", "Priority", "Start", "Due", "Progress"}, rows)
}

// shortDate turns YYYY-MM-DD into MM-DD. Anything else is returned as is.
func shortDate(s string) string {
	if _, ok := model.ParseDate(s); !ok {
		return s
	}
	return s[5:]
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
