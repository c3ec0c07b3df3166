package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/watcher"
)

func newBoardCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "board <plan>",
		Short: "Open the interactive timeline board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("board requires an interactive terminal")
			}
			planID, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			return runBoard(app, planID, watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reload when the database file changes")
	return cmd
}

func runBoard(app *App, planID string, watch bool) error {
	sender := &msgSender{}
	model := newBoardModel(app, planID, sender)

	p := tea.NewProgram(model, tea.WithAltScreen())
	sender.attach(p)

	if watch && app.DBPath != "" {
		w, err := watcher.New(watcher.DefaultDebounce, nil)
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Close()

		err = w.Watch(app.DBPath, func() {
			app.Timeline.Invalidate()
			sender.send(reloadMsg{})
		})
		if err != nil {
			return fmt.Errorf("watching %s: %w", app.DBPath, err)
		}
	}

	_, err := p.Run()
	return err
}
