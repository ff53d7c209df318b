package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/notifier"
	"github.com/julianstephens/daylearn/internal/tui"
)

type TuiCmd struct {
	NoTray bool `help:"Do not forward notifications to the desktop tray."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	var sink notifier.Notifier
	if !c.NoTray && ctx.Tray != nil && ctx.Tray.Available() {
		sink = ctx.Tray
	}

	p := tea.NewProgram(tui.NewModel(ctx.Auth, ctx.Progress, ctx.Catalog, sink), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
