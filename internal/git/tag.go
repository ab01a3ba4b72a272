package git

import (
	"context"
	"strings"
)

// Tags lists tag names, newest first.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	out, err := c.gitOut(ctx, "tag", "--list", "--sort=-creatordate")
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}

// CreateTag creates a tag at HEAD, annotated when a message is given.
func (c *Client) CreateTag(ctx context.Context, name, message string) error {
	if message == "" {
		return c.git(ctx, "tag", name)
	}
	return c.git(ctx, "tag", "-a", name, "-m", message)
}

// DeleteTag deletes a local tag.
func (c *Client) DeleteTag(ctx context.Context, name string) error {
	return c.git(ctx, "tag", "-d", name)
}
