package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/teamboard/internal/config"
	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/session"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	dataDir string
	cfg     *config.Config
	backend kv.Backend
	st      *store.Store
	sess    *session.Session
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".teamboard")
	}
	return filepath.Join(home, ".teamboard")
}

var rootCmd = &cobra.Command{
	Use:     "teamboard",
	Short:   "Local project and task board for small teams",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if backend != nil {
			backend.Close()
		}
		backend, err = kv.Open(cfg.BackendKind(), dataDir)
		if err != nil {
			return fmt.Errorf("opening %s storage: %w", cfg.BackendKind(), err)
		}
		st = store.New(backend)
		sess = session.New(backend)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"register": {
				Examples: []mtp.Example{
					{Description: "Create an account", Command: "teamboard register --name \"Nguyễn Văn An\" --email an@example.com --password secret123"},
				},
			},
			"login": {
				Examples: []mtp.Example{
					{Description: "Log in (prompts for the password)", Command: "teamboard login --email an@example.com"},
				},
			},
			"seed": {
				Examples: []mtp.Example{
					{Description: "Create a sample project with members and tasks", Command: "teamboard seed"},
				},
			},
			"project create": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Project description, used when --description is not set",
				},
				Examples: []mtp.Example{
					{Description: "Create a project", Command: "teamboard project create \"Website redesign for Q3\" --description \"Rebuild the marketing site with the new brand.\""},
				},
			},
			"project list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Paged table of projects with ID, name, status, created date, member and task counts",
				},
				Examples: []mtp.Example{
					{Description: "Second page of projects you own matching a keyword", Command: "teamboard project list --owned --search web --page 2"},
				},
			},
			"project open": {
				Examples: []mtp.Example{
					{Description: "Make project 3 the current project", Command: "teamboard project open 3"},
				},
			},
			"project delete": {
				Examples: []mtp.Example{
					{Description: "Delete a project (interactive confirm)", Command: "teamboard project delete 3"},
					{Description: "Delete a project (skip confirm)", Command: "teamboard project delete 3 --force"},
				},
			},
			"project link": {
				Examples: []mtp.Example{
					{Description: "Link current directory to a project", Command: "teamboard project link 3"},
				},
			},
			"project unlink": {
				Examples: []mtp.Example{
					{Description: "Remove repo-local project link", Command: "teamboard project unlink"},
				},
			},
			"member add": {
				Examples: []mtp.Example{
					{Description: "Add a member by email, creating the user if needed", Command: "teamboard member add binh@example.com --role Developer --project 3"},
				},
			},
			"member list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of project members with initials, ID, name, email and role",
				},
			},
			"member remove": {
				Examples: []mtp.Example{
					{Description: "Remove user 4 from the current project", Command: "teamboard member remove 4 --force"},
				},
			},
			"task create": {
				Examples: []mtp.Example{
					{Description: "Create a high-priority task", Command: "teamboard task create \"Draft homepage wireframe\" --assignee 2 --due 2024-03-01 --priority Cao --progress \"Đúng tiến độ\""},
				},
			},
			"task list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Board of tasks grouped by status; collapsed statuses show only their header",
				},
				Examples: []mtp.Example{
					{Description: "Search and sort the board", Command: "teamboard task list --search wireframe --sort deadline"},
				},
			},
			"task update": {
				Examples: []mtp.Example{
					{Description: "Move a task to Done", Command: "teamboard task update 5 --status Done"},
				},
			},
			"task delete": {
				Examples: []mtp.Example{
					{Description: "Delete a task (skip confirm)", Command: "teamboard task delete 5 --force"},
				},
			},
			"task watch": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Search terms, one per line; the board is re-rendered once input pauses",
				},
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Board of tasks matching the latest search term",
				},
			},
			"config set": {
				Examples: []mtp.Example{
					{Description: "Store data in SQLite", Command: "teamboard config set backend sqlite"},
					{Description: "Show 12 projects per page", Command: "teamboard config set page_size 12"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	err := rootCmd.Execute()
	if backend != nil {
		backend.Close()
	}
	return err
}
