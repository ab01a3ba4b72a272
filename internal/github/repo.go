package github

import (
	"context"
	"strconv"
)

// Repo is one repository of the authenticated user.
type Repo struct {
	Name          string `json:"name"`
	NameWithOwner string `json:"nameWithOwner"`
	Description   string `json:"description"`
	Visibility    string `json:"visibility"`
	IsArchived    bool   `json:"isArchived"`
	URL           string `json:"url"`
}

// Repos lists the authenticated user's repositories.
func (c *Client) Repos(ctx context.Context) ([]Repo, error) {
	var repos []Repo
	err := c.ghJSON(ctx, &repos, "repo", "list",
		"--limit", strconv.Itoa(c.limit),
		"--json", "name,nameWithOwner,description,visibility,isArchived,url")
	return repos, err
}

// RepoClone clones a repository into the current directory.
func (c *Client) RepoClone(ctx context.Context, nameWithOwner string) error {
	return c.gh(ctx, "repo", "clone", nameWithOwner)
}

// RepoView opens the repository in the browser.
func (c *Client) RepoView(ctx context.Context, nameWithOwner string) error {
	return c.gh(ctx, "repo", "view", nameWithOwner, "--web")
}

// RepoArchive archives a repository.
func (c *Client) RepoArchive(ctx context.Context, nameWithOwner string) error {
	return c.gh(ctx, "repo", "archive", nameWithOwner, "--yes")
}

// RepoUnarchive unarchives a repository.
func (c *Client) RepoUnarchive(ctx context.Context, nameWithOwner string) error {
	return c.gh(ctx, "repo", "unarchive", nameWithOwner, "--yes")
}

// RepoDelete deletes a repository. gh itself requires the delete_repo
// scope; its refusal reaches the user verbatim.
func (c *Client) RepoDelete(ctx context.Context, nameWithOwner string) error {
	return c.gh(ctx, "repo", "delete", nameWithOwner, "--yes")
}

// RepoCreate creates a repository with the given visibility flag
// ("--private" or "--public").
func (c *Client) RepoCreate(ctx context.Context, name, visibilityFlag string) error {
	return c.gh(ctx, "repo", "create", name, visibilityFlag)
}
