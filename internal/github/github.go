// Package github wraps the gh CLI for repository, pull request and issue
// operations. Listings use gh's --json output; a shape mismatch is a hard
// error, never a silently empty result.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mfaerber/figit/internal/cmd"
)

// Client runs gh commands against one repository directory.
type Client struct {
	dir   string
	run   cmd.Runner
	limit int
}

// New creates a Client. limit caps list queries.
func New(dir string, r cmd.Runner, limit int) *Client {
	return &Client{dir: dir, run: r, limit: limit}
}

func (c *Client) gh(ctx context.Context, args ...string) error {
	return c.run.Run(ctx, c.dir, "gh", args...)
}

func (c *Client) ghOut(ctx context.Context, args ...string) ([]byte, error) {
	return c.run.Output(ctx, c.dir, "gh", args...)
}

func (c *Client) ghJSON(ctx context.Context, target any, args ...string) error {
	out, err := c.ghOut(ctx, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, target); err != nil {
		return fmt.Errorf("parse gh %s output: %w", strings.Join(args[:2], " "), err)
	}
	return nil
}
