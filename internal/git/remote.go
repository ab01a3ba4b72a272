package git

import (
	"context"
	"fmt"
	"strings"
)

// Remote is one configured remote with its fetch URL.
type Remote struct {
	Name string
	URL  string
}

// Remotes lists configured remotes.
func (c *Client) Remotes(ctx context.Context) ([]Remote, error) {
	out, err := c.gitOut(ctx, "remote", "-v")
	if err != nil {
		return nil, err
	}
	return parseRemotes(out)
}

// parseRemotes reads `remote -v` output, keeping only the (fetch) rows.
func parseRemotes(out string) ([]Remote, error) {
	var remotes []Remote
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("unexpected remote line %q", line)
		}
		if len(fields) >= 3 && fields[2] != "(fetch)" {
			continue
		}
		remotes = append(remotes, Remote{Name: fields[0], URL: fields[1]})
	}
	return remotes, nil
}

// RemoteAdd adds a remote.
func (c *Client) RemoteAdd(ctx context.Context, name, url string) error {
	return c.git(ctx, "remote", "add", name, url)
}

// RemoteRemove removes a remote and its tracking refs.
func (c *Client) RemoteRemove(ctx context.Context, name string) error {
	return c.git(ctx, "remote", "remove", name)
}

// RemoteRename renames a remote.
func (c *Client) RemoteRename(ctx context.Context, oldName, newName string) error {
	return c.git(ctx, "remote", "rename", oldName, newName)
}

// RemoteSetURL changes the URL of a remote.
func (c *Client) RemoteSetURL(ctx context.Context, name, url string) error {
	return c.git(ctx, "remote", "set-url", name, url)
}
