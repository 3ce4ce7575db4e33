package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/teamboard/internal/auth"
	"github.com/rogersnm/teamboard/internal/markdown"
	"github.com/spf13/cobra"
)

// promptPassword asks for a hidden value when the flag was left empty.
func promptPassword(title, current string) (string, error) {
	if current != "" {
		return current, nil
	}
	var v string
	if err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&v).
		Run(); err != nil {
		return "", fmt.Errorf("password prompt cancelled (use --password)")
	}
	return v, nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		confirm, _ := cmd.Flags().GetString("confirm")

		password, err := promptPassword("Password", password)
		if err != nil {
			return err
		}
		if confirm == "" && cmd.Flags().Changed("password") {
			confirm = password
		}
		confirm, err = promptPassword("Confirm password", confirm)
		if err != nil {
			return err
		}

		u, err := auth.Register(st, auth.Registration{
			Name:     name,
			Email:    email,
			Password: password,
			Confirm:  confirm,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (%s). Log in with: teamboard login --email %s\n", u.Name, u.ID, u.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		password, err := promptPassword("Password", password)
		if err != nil {
			return err
		}

		u, err := auth.Login(st, email, password)
		if err != nil {
			return err
		}
		if err := sess.SetCurrentUser(*u); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", u.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.ClearCurrentUser(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return err
		}
		fields := []string{
			markdown.RenderField("ID", u.ID.String()),
			markdown.RenderField("Email", u.Email),
			markdown.RenderField("Role", u.Role),
			markdown.RenderField("Projects", fmt.Sprint(len(u.Projects))),
		}
		if id, ok, _ := sess.SelectedProject(); ok {
			fields = append(fields, markdown.RenderField("Open project", id.String()))
		}
		fmt.Print(markdown.RenderEntityHeader(u.Name, fields))
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a sample project owned by the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return err
		}
		p, err := st.Seed(u.ID)
		if err != nil {
			return err
		}
		if err := sess.SelectProject(p.ID); err != nil {
			return err
		}
		fmt.Printf("Created sample project %s (%s) with %d members and %d tasks\n", p.Name, p.ID, len(p.Members), len(p.Tasks))
		return nil
	},
}

func init() {
	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("email", "", "email address")
	registerCmd.Flags().String("password", "", "password (prompted when empty)")
	registerCmd.Flags().String("confirm", "", "password confirmation (defaults to --password)")
	loginCmd.Flags().String("email", "", "email address")
	loginCmd.Flags().String("password", "", "password (prompted when empty)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(seedCmd)
}
