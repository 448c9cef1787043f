package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/alert-banner/internal/stories"
	"github.com/ngmaloney/alert-banner/internal/ui"
)

func newGalleryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery [story]",
		Short: "Browse the stories in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(stories.All())
			if len(args) == 1 {
				if err := m.OpenStory(args[0]); err != nil {
					return err
				}
			}

			var opts []tea.ProgramOption
			if a.cfg.Gallery.AltScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			opts = append(opts, tea.WithContext(cmd.Context()))

			if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
				return errors.Wrap(err, "run gallery")
			}
			return nil
		},
	}
}
