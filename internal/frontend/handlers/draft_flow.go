// Package handlers drives the interactive terminal flows of the arena tool.
package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/frontend/console"
	"github.com/cory-johannsen/arena/internal/game/catalog"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/draft"
)

const specialQuestion = "Would you like to play with the special class (i.e. The Faceless Emperor)? "

// DraftFlow runs one interactive two-team draft: settings, captain names, the
// roll for pick order, the alternating draft, and the final rosters.
type DraftFlow struct {
	cfg    config.DraftConfig
	loader *catalog.Loader
	roller *dice.Roller
	prompt *console.Prompter
	logger *zap.Logger
}

// NewDraftFlow wires a DraftFlow. Settings fixed in cfg are not prompted for.
//
// Precondition: loader must have a source path configured; all pointers non-nil.
func NewDraftFlow(cfg config.DraftConfig, loader *catalog.Loader, roller *dice.Roller, prompt *console.Prompter, logger *zap.Logger) *DraftFlow {
	return &DraftFlow{cfg: cfg, loader: loader, roller: roller, prompt: prompt, logger: logger}
}

// Run executes the flow to completion.
//
// Postcondition: on success both rosters have been written to the prompter's
// output; configuration, roster, and input errors are returned unhandled.
func (f *DraftFlow) Run(ctx context.Context) error {
	p := f.prompt
	_ = p.WriteLine(p.Style(console.Bold+console.BrightCyan, "Welcome to the Arena! We're going to generate a random team for you."))
	_ = p.WriteLine("")

	opts, err := f.options()
	if err != nil {
		return err
	}
	session, err := draft.NewSession(f.loader, f.roller, opts, f.logger)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	firstName, secondName, err := p.AskTeamNames()
	if err != nil {
		return err
	}

	teamOne, err := session.NewTeam(firstName)
	if err != nil {
		return err
	}
	teamTwo, err := session.NewTeam(secondName)
	if err != nil {
		return err
	}

	first, second := draft.ResolveOrder(teamOne, teamTwo, func(a, b *draft.Team) {
		_ = p.WriteLine("")
		_ = p.WriteLine(a.RollPhrase())
		_ = p.WriteLine(b.RollPhrase())
		_ = p.WriteLine(p.Style(console.Yellow, "Oops. It's a tie! Rolling again..."))
	})

	_ = p.WriteLine("")
	_ = p.WriteLine(teamOne.RollPhrase())
	_ = p.WriteLine(teamTwo.RollPhrase())
	_ = p.WriteLine("")
	_ = p.WriteLine(p.Stylef(console.Green, "%s's team picks first.", first.Name()))

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := session.Run(first, second); err != nil {
		return fmt.Errorf("drafting heroes: %w", err)
	}

	_ = p.WriteLine("")
	_ = p.WriteLine(RenderTeam(p, teamOne))
	_ = p.WriteLine("")
	_ = p.WriteLine(RenderTeam(p, teamTwo))
	return nil
}

// options resolves the team size and special-class policy from configuration,
// prompting for whichever is left open.
func (f *DraftFlow) options() (draft.Options, error) {
	opts := draft.Options{TeamSize: f.cfg.TeamSize}
	if f.cfg.AskTeamSize() {
		size, err := f.prompt.AskTeamSize()
		if err != nil {
			return draft.Options{}, err
		}
		opts.TeamSize = size
	}
	if f.cfg.AskSpecial() {
		allow, err := f.prompt.AskYesNo(specialQuestion)
		if err != nil {
			return draft.Options{}, err
		}
		opts.AllowSpecial = allow
	} else {
		opts.AllowSpecial = f.cfg.AllowSpecial()
	}
	return opts, nil
}

// RenderTeam styles the header line of the team's String form.
func RenderTeam(p *console.Prompter, t *draft.Team) string {
	header, heroes, found := strings.Cut(t.String(), "\n")
	header = p.Style(console.BrightYellow, header)
	if !found {
		return header
	}
	return header + "\n" + heroes
}

// RenderCatalog formats every class with its available heroes, in catalog order.
func RenderCatalog(p *console.Prompter, c *catalog.Catalog) string {
	var b strings.Builder
	for i, class := range c.Classes() {
		if i > 0 {
			b.WriteString("\n")
		}
		heroes := c.Heroes(class)
		b.WriteString(p.Stylef(console.BrightYellow, "%s (%d)", class, len(heroes)))
		for _, h := range heroes {
			b.WriteString("\n  ")
			b.WriteString(h)
		}
	}
	return b.String()
}
