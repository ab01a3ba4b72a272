// Package flow implements the interaction engine: list candidates, select
// through the fuzzy picker, build a context menu, confirm, execute, report.
// Per-entity files configure the engine with listers, menu builders and
// creation handlers.
package flow

import (
	"github.com/mfaerber/figit/internal/config"
	"github.com/mfaerber/figit/internal/git"
	"github.com/mfaerber/figit/internal/github"
	"github.com/mfaerber/figit/internal/picker"
	"github.com/mfaerber/figit/internal/prompt"
)

// Session bundles everything one interaction needs. It lives for a single
// command invocation; nothing in it is cached across invocations.
type Session struct {
	Git    *git.Client
	Hub    *github.Client
	Pick   picker.Picker
	Prompt prompt.Prompter
	Config config.Config
}
