package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/teamboard/internal/markdown"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/query"
	"github.com/rogersnm/teamboard/internal/repofile"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

// ownedProject loads a project the current user owns.
func ownedProject(arg string) (*model.User, *model.Project, error) {
	u, err := currentUser()
	if err != nil {
		return nil, nil, err
	}
	id, err := model.ParseID(arg)
	if err != nil {
		return nil, nil, err
	}
	p, err := st.OpenProject(id, u.ID)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsOwnedBy(u.ID) {
		return nil, nil, fmt.Errorf("only the project owner can do this: %w", store.ErrAccessDenied)
	}
	return u, p, nil
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return err
		}
		desc, _ := cmd.Flags().GetString("description")
		if desc == "" {
			desc = strings.TrimSpace(readStdin())
		}
		p, err := st.CreateProject(u.ID, args[0], desc)
		if err != nil {
			return err
		}
		fmt.Printf("Created project %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return err
		}
		owned, _ := cmd.Flags().GetBool("owned")
		keyword, _ := cmd.Flags().GetString("search")
		keyword = strings.TrimSpace(keyword)
		page, _ := cmd.Flags().GetInt("page")

		projects, err := st.ListProjects()
		if err != nil {
			return err
		}
		if owned {
			projects = query.OwnedBy(projects, u.ID)
		} else {
			mine := []model.Project{}
			for _, p := range projects {
				if p.HasMember(u.ID) {
					mine = append(mine, p)
				}
			}
			projects = mine
		}
		projects = query.SearchProjects(projects, keyword)
		fmt.Println(markdown.RenderProjectPage(query.Paginate(projects, page, cfg.PerPage())))
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show project details and members",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cmd.Flags().Set("project", args[0])
		}
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		owner := "-"
		if m, ok := p.Owner(); ok {
			if u, err := st.GetUser(m.UserID); err == nil {
				owner = u.Name
			}
		}
		fields := []string{
			markdown.RenderField("ID", p.ID.String()),
			markdown.RenderField("Status", p.Status),
			markdown.RenderField("Owner", owner),
			markdown.RenderField("Created", p.CreatedDate),
			markdown.RenderField("Tasks", fmt.Sprint(len(p.Tasks))),
		}
		fmt.Print(markdown.RenderEntityHeader(p.Name, fields))
		if p.Description != "" {
			rendered, err := markdown.RenderMarkdown(p.Description)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		members, err := st.ProjectMembers(p.ID)
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderMemberTable(members))
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := ownedProject(args[0])
		if err != nil {
			return err
		}
		upd := model.ProjectUpdate{}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			upd.Name = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			upd.Description = &v
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			upd.Status = &v
		}
		p, err = st.UpdateProject(p.ID, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated project %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project you own and all its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := ownedProject(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Project: %s (%s), %d members, %d tasks\n", p.Name, p.ID, len(p.Members), len(p.Tasks))

		if err := confirmDelete(cmd, "project "+p.ID.String()); err != nil {
			return err
		}
		if err := st.DeleteProject(p.ID); err != nil {
			return err
		}
		if id, ok, _ := sess.SelectedProject(); ok && id == p.ID {
			if err := sess.ClearSelectedProject(); err != nil {
				return err
			}
		}
		fmt.Printf("Deleted project %s\n", p.ID)
		return nil
	},
}

var projectOpenCmd = &cobra.Command{
	Use:   "open [id]",
	Short: "Make a project the current project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return err
		}
		var projectID model.ID
		if len(args) == 1 {
			if projectID, err = model.ParseID(args[0]); err != nil {
				return err
			}
		} else if projectID, err = pickProject(u); err != nil {
			return err
		}
		p, err := st.OpenProject(projectID, u.ID)
		if err != nil {
			return err
		}
		if err := sess.SelectProject(p.ID); err != nil {
			return err
		}
		fmt.Printf("Opened project %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

// pickProject prompts for one of the user's projects.
func pickProject(u *model.User) (model.ID, error) {
	projects, err := st.ListProjects()
	if err != nil {
		return 0, err
	}
	var opts []huh.Option[string]
	for _, p := range projects {
		if p.HasMember(u.ID) {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", p.ID, p.Name), p.ID.String()))
		}
	}
	if len(opts) == 0 {
		return 0, fmt.Errorf("no projects yet; create one first with: teamboard project create <name>")
	}
	var choice string
	if err := huh.NewSelect[string]().
		Title("Select a project").
		Options(opts...).
		Value(&choice).
		Run(); err != nil {
		return 0, fmt.Errorf("selection cancelled")
	}
	return model.ParseID(choice)
}

var projectLinkCmd = &cobra.Command{
	Use:   "link [project-id]",
	Short: "Link the current directory to a project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return err
		}
		var projectID model.ID
		if len(args) == 1 {
			if projectID, err = model.ParseID(args[0]); err != nil {
				return err
			}
		} else if projectID, err = pickProject(u); err != nil {
			return err
		}

		if _, err := st.OpenProject(projectID, u.ID); err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				return fmt.Errorf("project %s not found", projectID)
			}
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := repofile.Write(cwd, projectID); err != nil {
			return err
		}
		fmt.Printf("Linked %s to project %s\n", repofile.FileName, projectID)
		return nil
	},
}

var projectUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the repo-local project link",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		id, err := repofile.Read(cwd)
		if err != nil {
			return err
		}
		if id.IsZero() {
			fmt.Println("No project linked.")
			return nil
		}
		if err := repofile.Remove(cwd); err != nil {
			return err
		}
		fmt.Println("Unlinked project.")
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().StringP("description", "d", "", "project description (read from stdin when empty)")
	projectListCmd.Flags().Bool("owned", false, "only projects you own")
	projectListCmd.Flags().StringP("search", "s", "", "filter by name")
	projectListCmd.Flags().Int("page", 1, "page number")
	addProjectFlag(projectShowCmd)
	projectUpdateCmd.Flags().String("name", "", "new name")
	projectUpdateCmd.Flags().StringP("description", "d", "", "new description")
	projectUpdateCmd.Flags().String("status", "", "new status")
	projectDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectOpenCmd)
	projectCmd.AddCommand(projectLinkCmd)
	projectCmd.AddCommand(projectUnlinkCmd)
	rootCmd.AddCommand(projectCmd)
}
