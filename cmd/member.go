package cmd

import (
	"errors"
	"fmt"

	"github.com/rogersnm/teamboard/internal/markdown"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage project members",
}

var memberAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a member by email; unknown emails get a new account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")

		u, err := st.AddMemberToProject(p.ID, store.MemberInput{Email: args[0], Name: name, Role: role})
		if errors.Is(err, store.ErrAlreadyMember) {
			fmt.Printf("%s is already a member of %s\n", u.Email, p.Name)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s) to %s\n", u.Name, u.ID, p.Name)
		return nil
	},
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project members",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		members, err := st.ProjectMembers(p.ID)
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderMemberTable(members))
		return nil
	},
}

var memberRemoveCmd = &cobra.Command{
	Use:   "remove <user>",
	Short: "Remove a member (by user id or email)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		u, err := resolveUser(args[0])
		if err != nil {
			return err
		}
		if err := confirmDelete(cmd, fmt.Sprintf("%s from %s", u.Name, p.Name)); err != nil {
			return err
		}
		if err := st.RemoveMemberFromProject(p.ID, u.ID); err != nil {
			return err
		}
		fmt.Printf("Removed %s from %s\n", u.Name, p.Name)
		return nil
	},
}

var memberRoleCmd = &cobra.Command{
	Use:   "role <user> <role>",
	Short: "Change a member's role in the project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openCurrentProject(cmd)
		if err != nil {
			return err
		}
		u, err := resolveUser(args[0])
		if err != nil {
			return err
		}
		if err := st.UpdateMemberRole(p.ID, u.ID, args[1]); err != nil {
			return err
		}
		fmt.Printf("%s is now %s in %s\n", u.Name, args[1], p.Name)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{memberAddCmd, memberListCmd, memberRemoveCmd, memberRoleCmd} {
		addProjectFlag(c)
	}
	memberAddCmd.Flags().String("name", "", "name for a newly created user (defaults to the email's local part)")
	memberAddCmd.Flags().StringP("role", "r", "", "role within the project (default \"Thành viên\")")
	memberRemoveCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	memberCmd.AddCommand(memberAddCmd)
	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberRemoveCmd)
	memberCmd.AddCommand(memberRoleCmd)
	rootCmd.AddCommand(memberCmd)
}
