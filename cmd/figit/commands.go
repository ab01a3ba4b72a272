package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfaerber/figit/internal/config"
	"github.com/mfaerber/figit/internal/flow"
)

// flowCmd builds one subcommand that runs an entity flow. The flow is
// constructed per invocation; nothing is shared across runs.
func (a *app) flowCmd(use, short string, aliases []string, requireRepo bool, build func() flow.Flow) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, s, err := a.session(c, requireRepo)
			if err != nil {
				return err
			}
			return flow.Run(ctx, s, build())
		},
	}
}

func (a *app) commands() []*cobra.Command {
	var issueAll bool
	issue := a.flowCmd("issue", "browse and act on issues", []string{"is"}, false, func() flow.Flow {
		return flow.Issues(issueAll)
	})
	issue.Flags().BoolVar(&issueAll, "all", false, "include closed issues")

	save := &cobra.Command{
		Use:   "save",
		Short: "stage, commit and optionally push in one go",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, s, err := a.session(c, true)
			if err != nil {
				return err
			}
			return flow.CreateCommit(ctx, s)
		},
	}

	return []*cobra.Command{
		a.flowCmd("branch", "browse and act on branches", []string{"br"}, true, flow.Branches),
		a.flowCmd("tag", "browse and act on tags", nil, true, flow.Tags),
		a.flowCmd("stash", "browse and act on stashes", []string{"st"}, true, flow.Stashes),
		a.flowCmd("remote", "browse and act on remotes", nil, true, flow.Remotes),
		a.flowCmd("repo", "browse your GitHub repositories", nil, false, flow.Repos),
		a.flowCmd("pr", "browse and act on pull requests", nil, false, flow.PRs),
		issue,
		a.flowCmd("commit", "browse the commit log", []string{"co"}, true, flow.Commits),
		a.flowCmd("status", "browse working-tree changes", nil, true, flow.Changes),
		save,
		configCmd(),
		{
			Use:   "version",
			Short: "print the figit version",
			Args:  cobra.NoArgs,
			Run: func(*cobra.Command, []string) {
				fmt.Println("figit", version)
			},
		},
	}
}

func configCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "config",
		Short: "manage the figit configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	show := &cobra.Command{
		Use:   "show",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Printf("remote = %q\n", cfg.Remote)
			fmt.Printf("protected_branches = %q\n", cfg.ProtectedBranches)
			fmt.Printf("list_limit = %d\n", cfg.ListLimit)
			return nil
		},
	}

	root.AddCommand(initCmd, show)
	return root
}
