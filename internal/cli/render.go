package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ngmaloney/alert-banner/internal/render"
	"github.com/ngmaloney/alert-banner/internal/stories"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Print one story as text, html or tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := stories.Lookup(args[0])
			if err != nil {
				return err
			}

			out, err := render.Story(cmd.Context(), s, f, width)
			if err != nil {
				return err
			}
			a.logger.Debug("rendered story",
				zap.String("story", s.ID),
				zap.String("format", string(f)),
				zap.Int("width", width),
			)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, html or tree")
	cmd.Flags().IntVar(&width, "width", 1200, "viewport width in logical px (0 for unknown)")
	return cmd
}
