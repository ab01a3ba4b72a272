package main

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mfaerber/figit/internal/cmd"
	"github.com/mfaerber/figit/internal/config"
	"github.com/mfaerber/figit/internal/flow"
	"github.com/mfaerber/figit/internal/git"
	"github.com/mfaerber/figit/internal/github"
	"github.com/mfaerber/figit/internal/log"
	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
	"github.com/mfaerber/figit/internal/prompt"
)

type app struct {
	verbose bool
	dir     string
}

func run(args []string) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "figit",
		Short:         "fuzzy menus for everyday git and gh work",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, s, err := a.session(c, false)
			if err != nil {
				return err
			}
			return flow.RunMenu(ctx, s)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "echo every git and gh invocation")
	root.PersistentFlags().StringVar(&a.dir, "dir", "", "repository directory (default: current directory)")
	root.AddCommand(a.commands()...)
	return root
}

// session wires the logger, printer and adapters for one invocation. When
// requireRepo is set, the directory must be inside a git work tree.
func (a *app) session(c *cobra.Command, requireRepo bool) (context.Context, *flow.Session, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, nil, errors.New("interactive flows need a terminal; run figit from one")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	ctx := c.Context()
	ctx = log.WithLogger(ctx, log.New(os.Stderr, a.verbose))
	ctx = output.WithPrinter(ctx, os.Stdout)

	runner := cmd.Exec{}
	gitClient := git.New(a.dir, runner)
	if requireRepo && !gitClient.IsRepository(ctx) {
		return nil, nil, errors.New("not a git repository")
	}

	s := &flow.Session{
		Git:    gitClient,
		Hub:    github.New(a.dir, runner, cfg.ListLimit),
		Pick:   picker.TTY{},
		Prompt: prompt.Forms{},
		Config: cfg,
	}
	return ctx, s, nil
}
