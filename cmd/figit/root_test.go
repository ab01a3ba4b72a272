package main

import "testing"

func TestRootRegistersSubcommands(t *testing.T) {
	t.Parallel()
	root := newRootCmd(&app{})

	want := map[string]string{
		"branch": "br",
		"stash":  "st",
		"issue":  "is",
		"commit": "co",
	}
	found := map[string]bool{}
	for _, c := range root.Commands() {
		found[c.Name()] = true
		if alias, ok := want[c.Name()]; ok && !c.HasAlias(alias) {
			t.Errorf("%s missing alias %s", c.Name(), alias)
		}
	}
	for _, name := range []string{"branch", "tag", "stash", "remote", "repo", "pr", "issue", "commit", "status", "save", "config", "version"} {
		if !found[name] {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()
	root := newRootCmd(&app{})
	for _, name := range []string{"verbose", "dir"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}
