package git

import (
	"context"
	"fmt"
	"strings"
)

// Stash is one entry of the stash list.
type Stash struct {
	Ref     string // stash@{N}
	Subject string // "WIP on main: abc1234 message"
}

// Stashes lists stash entries, most recent first.
func (c *Client) Stashes(ctx context.Context) ([]Stash, error) {
	out, err := c.gitOut(ctx, "stash", "list", "--no-color")
	if err != nil {
		return nil, err
	}
	return parseStashes(out)
}

func parseStashes(out string) ([]Stash, error) {
	var stashes []Stash
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		ref, subject, ok := strings.Cut(line, ": ")
		if !ok || !strings.HasPrefix(ref, "stash@{") {
			return nil, fmt.Errorf("unexpected stash line %q", line)
		}
		stashes = append(stashes, Stash{Ref: ref, Subject: subject})
	}
	return stashes, nil
}

// StashPush stashes work-tree and index changes under the given message.
func (c *Client) StashPush(ctx context.Context, message string) error {
	return c.git(ctx, "stash", "push", "-m", message)
}

// StashApply applies a stash entry, keeping it in the list.
func (c *Client) StashApply(ctx context.Context, ref string) error {
	return c.git(ctx, "stash", "apply", ref)
}

// StashPop applies a stash entry and drops it.
func (c *Client) StashPop(ctx context.Context, ref string) error {
	return c.git(ctx, "stash", "pop", ref)
}

// StashDrop deletes a stash entry.
func (c *Client) StashDrop(ctx context.Context, ref string) error {
	return c.git(ctx, "stash", "drop", ref)
}

// StashShow returns the diffstat of a stash entry.
func (c *Client) StashShow(ctx context.Context, ref string) (string, error) {
	return c.gitOut(ctx, "stash", "show", "--stat", ref)
}
