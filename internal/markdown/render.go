package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/teamboard/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	todoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	inProgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func StatusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusDone:
		return doneStyle
	case model.StatusInProgress:
		return inProgStyle
	case model.StatusPending:
		return pendingStyle
	default:
		return todoStyle
	}
}

func RenderStatus(status model.Status) string {
	return StatusStyle(status).Render(string(status))
}

func RenderPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return alertStyle.Render(string(p))
	case model.PriorityMedium:
		return inProgStyle.Render(string(p))
	case model.PriorityLow:
		return doneStyle.Render(string(p))
	}
	return string(p)
}

func RenderProgress(p model.Progress) string {
	switch p {
	case model.ProgressLate:
		return alertStyle.Render(string(p))
	case model.ProgressAtRisk:
		return inProgStyle.Render(string(p))
	case model.ProgressOnSchedule:
		return doneStyle.Render(string(p))
	}
	return string(p)
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}
