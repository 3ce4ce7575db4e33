package cmd

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"github.com/rogersnm/teamboard/internal/debounce"
	"github.com/rogersnm/teamboard/internal/editor"
	"github.com/rogersnm/teamboard/internal/markdown"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/query"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// openTask loads a task from a project the current user belongs to.
func openTask(arg string) (*model.Task, *model.Project, error) {
	u, err := currentUser()
	if err != nil {
		return nil, nil, err
	}
	id, err := model.ParseID(arg)
	if err != nil {
		return nil, nil, err
	}
	t, err := st.GetTask(id)
	if err != nil {
		return nil, nil, err
	}
	p, err := st.OpenProject(t.ProjectID, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return t, p, nil
}

// assigneeFlag resolves --assignee, given as a user id or email.
func assigneeFlag(cmd *cobra.Command) (model.ID, error) {
	v, _ := cmd.Flags().GetString("assignee")
	if v == "" {
		return 0, nil
	}
	u, err := resolveUser(v)
	if err != nil {
		return 0, fmt.Errorf("assignee %s: %w", v, err)
	}
	return u.ID, nil
}

// renderBoard renders the project's tasks grouped by status, honouring the
// session's collapsed columns.
func renderBoard(p *model.Project, term, criterion string) (string, error) {
	tasks, err := st.ListTasks(store.TaskFilter{})
	if err != nil {
		return "", err
	}
	users, err := st.ListUsers()
	if err != nil {
		return "", err
	}
	expanded := map[model.Status]bool{}
	for _, s := range model.Statuses {
		if expanded[s], err = sess.Expanded(s); err != nil {
			return "", err
		}
	}
	buckets := query.TaskView(tasks, p.ID, term, criterion, users)
	return markdown.RenderEntityHeader(p.Name, nil) + markdown.RenderTaskGroups(buckets, expanded, users), nil
}

var taskCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		assignee, err := assigneeFlag(cmd)
		if err != nil {
			return err
		}
		start, _ := cmd.Flags().GetString("start")
		if start == "" {
			start = st.Now().Format(model.DateLayout)
		}
		due, _ := cmd.Flags().GetString("due")
		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetString("priority")
		progress, _ := cmd.Flags().GetString("progress")

		t, err := st.CreateTask(p.ID, model.TaskInput{
			Name:       args[0],
			AssigneeID: assignee,
			Status:     model.Status(status),
			AssignDate: start,
			DueDate:    due,
			Priority:   model.Priority(priority),
			Progress:   model.Progress(progress),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created task %s (%s)\n", t.Name, t.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the task board of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetString("search")
		term = strings.TrimSpace(term)
		criterion, _ := cmd.Flags().GetString("sort")
		out, err := renderBoard(p, term, criterion)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, p, err := openTask(args[0])
		if err != nil {
			return err
		}
		users, err := st.ListUsers()
		if err != nil {
			return err
		}
		fields := []string{
			markdown.RenderField("ID", t.ID.String()),
			markdown.RenderField("Project", fmt.Sprintf("%s (%s)", p.Name, p.ID)),
			markdown.RenderField("Status", markdown.RenderStatus(t.Status)),
			markdown.RenderField("Assignee", query.AssigneeName(*t, users)),
			markdown.RenderField("Priority", markdown.RenderPriority(t.Priority)),
			markdown.RenderField("Progress", markdown.RenderProgress(t.Progress)),
			markdown.RenderField("Start", t.AssignDate),
			markdown.RenderField("Due", t.DueDate),
		}
		if t.CreatedDate != "" {
			fields = append(fields, markdown.RenderField("Created", t.CreatedDate))
		}
		fmt.Print(markdown.RenderEntityHeader(t.Name, fields))
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := openTask(args[0])
		if err != nil {
			return err
		}
		upd := model.TaskUpdate{}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			upd.Name = &v
		}
		if cmd.Flags().Changed("assignee") {
			a, err := assigneeFlag(cmd)
			if err != nil {
				return err
			}
			upd.AssigneeID = &a
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			s := model.Status(v)
			upd.Status = &s
		}
		if cmd.Flags().Changed("start") {
			v, _ := cmd.Flags().GetString("start")
			upd.AssignDate = &v
		}
		if cmd.Flags().Changed("due") {
			v, _ := cmd.Flags().GetString("due")
			upd.DueDate = &v
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			pr := model.Priority(v)
			upd.Priority = &pr
		}
		if cmd.Flags().Changed("progress") {
			v, _ := cmd.Flags().GetString("progress")
			pg := model.Progress(v)
			upd.Progress = &pg
		}
		if upd.IsEmpty() {
			return fmt.Errorf("at least one update flag is required (--name, --assignee, --status, --start, --due, --priority, --progress)")
		}

		t, err = st.UpdateTask(t.ID, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated task %s\n", t.ID)
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := openTask(args[0])
		if err != nil {
			return err
		}
		edited, err := editor.EditFrontmatter(*t, editHints()...)
		if err != nil {
			return err
		}
		if edited.ID != t.ID || edited.ProjectID != t.ProjectID {
			return fmt.Errorf("id and project cannot be changed")
		}
		upd := diffTask(*t, edited)
		if upd.IsEmpty() {
			fmt.Println("No changes.")
			return nil
		}
		if _, err := st.UpdateTask(t.ID, upd); err != nil {
			return err
		}
		fmt.Printf("Updated task %s\n", t.ID)
		return nil
	},
}

// editHints lists the accepted values for the enumerated task fields.
func editHints() []string {
	return []string{
		"status: " + joinValues(model.Statuses),
		"priority: " + joinValues(model.Priorities),
		"progress: " + joinValues(model.Progresses),
		"start, due: YYYY-MM-DD",
	}
}

func joinValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, " | ")
}

// diffTask returns the update that turns before into after.
func diffTask(before, after model.Task) model.TaskUpdate {
	var upd model.TaskUpdate
	if after.Name != before.Name {
		upd.Name = &after.Name
	}
	if after.AssigneeID != before.AssigneeID {
		upd.AssigneeID = &after.AssigneeID
	}
	if after.Status != before.Status {
		upd.Status = &after.Status
	}
	if after.AssignDate != before.AssignDate {
		upd.AssignDate = &after.AssignDate
	}
	if after.DueDate != before.DueDate {
		upd.DueDate = &after.DueDate
	}
	if after.Priority != before.Priority {
		upd.Priority = &after.Priority
	}
	if after.Progress != before.Progress {
		upd.Progress = &after.Progress
	}
	return upd
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := openTask(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Task: %s (%s)\n", t.Name, t.ID)
		if err := confirmDelete(cmd, "task "+t.ID.String()); err != nil {
			return err
		}
		if err := st.DeleteTask(t.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", t.ID)
		return nil
	},
}

func setExpandedCmd(use, short string, expanded bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <status>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := model.Status(args[0])
			if err := model.ValidateStatus(status); err != nil {
				return err
			}
			if err := sess.SetExpanded(status, expanded); err != nil {
				return err
			}
			state := "collapsed"
			if expanded {
				state = "expanded"
			}
			fmt.Printf("%s column %s\n", status, state)
			return nil
		},
	}
}

var (
	taskExpandCmd   = setExpandedCmd("expand", "Show a status column's tasks on the board", true)
	taskCollapseCmd = setExpandedCmd("collapse", "Hide a status column's tasks on the board", false)
)

var taskWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the board for each search term read from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		criterion, _ := cmd.Flags().GetString("sort")

		d := debounce.New(cfg.Debounce(), func(term string) {
			out, err := renderBoard(p, term, criterion)
			if err != nil {
				log.Printf("warning: rendering board: %v", err)
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		})
		defer d.Stop()

		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			d.Trigger(strings.TrimSpace(sc.Text()))
		}
		d.Flush()
		return sc.Err()
	},
}

func init() {
	for _, c := range []*cobra.Command{taskCreateCmd, taskListCmd, taskWatchCmd} {
		addProjectFlag(c)
	}

	taskCreateCmd.Flags().StringP("assignee", "a", "", "assignee user id or email")
	taskCreateCmd.Flags().String("start", "", "start date YYYY-MM-DD (default today)")
	taskCreateCmd.Flags().String("due", "", "due date YYYY-MM-DD")
	taskCreateCmd.Flags().StringP("status", "s", "", "status (To do, In Progress, Pending, Done; default To do)")
	taskCreateCmd.Flags().String("priority", "", "priority (Cao, Trung bình, Thấp)")
	taskCreateCmd.Flags().String("progress", "", "progress (Đúng tiến độ, Có rủi ro, Trễ hạn)")

	taskListCmd.Flags().String("search", "", "filter by task or assignee name")
	taskListCmd.Flags().String("sort", "", "sort within columns (deadline, priority)")
	taskWatchCmd.Flags().String("sort", "", "sort within columns (deadline, priority)")

	taskUpdateCmd.Flags().String("name", "", "new name")
	taskUpdateCmd.Flags().StringP("assignee", "a", "", "assignee user id or email")
	taskUpdateCmd.Flags().StringP("status", "s", "", "new status")
	taskUpdateCmd.Flags().String("start", "", "new start date YYYY-MM-DD")
	taskUpdateCmd.Flags().String("due", "", "new due date YYYY-MM-DD")
	taskUpdateCmd.Flags().String("priority", "", "new priority")
	taskUpdateCmd.Flags().String("progress", "", "new progress")

	taskDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskExpandCmd)
	taskCmd.AddCommand(taskCollapseCmd)
	taskCmd.AddCommand(taskWatchCmd)
	rootCmd.AddCommand(taskCmd)
}
