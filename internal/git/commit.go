package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Commit is one row of the commit log.
type Commit struct {
	Hash    string // full hash
	Short   string // abbreviated hash
	Author  string
	When    string // relative date
	Subject string
}

// logFormat uses the unit separator so subjects may contain any printable
// text without breaking the parse.
const logFormat = "%H%x1f%h%x1f%an%x1f%ar%x1f%s"

// Log returns the most recent commits reachable from ref ("" means HEAD).
func (c *Client) Log(ctx context.Context, ref string, limit int) ([]Commit, error) {
	args := []string{"log", "--no-color", "-n", strconv.Itoa(limit), "--pretty=format:" + logFormat}
	if ref != "" {
		args = append(args, ref)
	}
	out, err := c.gitOut(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseLog(out)
}

func parseLog(out string) ([]Commit, error) {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x1f")
		if len(fields) != 5 {
			return nil, fmt.Errorf("unexpected log line %q: got %d fields, want 5", line, len(fields))
		}
		commits = append(commits, Commit{
			Hash:    fields[0],
			Short:   fields[1],
			Author:  fields[2],
			When:    fields[3],
			Subject: fields[4],
		})
	}
	return commits, nil
}

// Graph returns a compact branch graph of the commits reachable from ref.
func (c *Client) Graph(ctx context.Context, ref string, limit int) (string, error) {
	return c.gitOut(ctx, "log", "--graph", "--oneline", "--decorate", "--no-color",
		"-n", strconv.Itoa(limit), ref)
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	return c.git(ctx, "commit", "-m", message)
}

// Revert creates a commit undoing the given commit.
func (c *Client) Revert(ctx context.Context, hash string) error {
	return c.git(ctx, "revert", "--no-edit", hash)
}

// CherryPick applies the given commit on top of HEAD.
func (c *Client) CherryPick(ctx context.Context, hash string) error {
	return c.git(ctx, "cherry-pick", hash)
}

// ResetHard moves HEAD to ref and throws away all staged and work-tree
// changes.
func (c *Client) ResetHard(ctx context.Context, ref string) error {
	return c.git(ctx, "reset", "--hard", ref)
}
