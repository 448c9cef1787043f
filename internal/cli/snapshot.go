package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ngmaloney/alert-banner/internal/database"
	"github.com/ngmaloney/alert-banner/internal/render"
	"github.com/ngmaloney/alert-banner/internal/stories"
)

// ErrSnapshotMismatch is returned by snapshot verify when any rendering
// differs from its record
var ErrSnapshotMismatch = errors.New("snapshots do not match")

func newSnapshotCmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record or verify rendering snapshots",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "snapshot database (overrides snapshots.path)")

	openStore := func() (*database.Store, error) {
		path := a.cfg.Snapshots.Path
		if dbPath != "" {
			path = dbPath
		}
		return database.Open(path)
	}

	record := &cobra.Command{
		Use:   "record [story...]",
		Short: "Record snapshots of the given stories, or of all stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectStories(args)
			if err != nil {
				return err
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			count := 0
			for _, s := range selected {
				snaps, err := render.Snapshots(cmd.Context(), s)
				if err != nil {
					return err
				}
				for _, snap := range snaps {
					if err := store.Save(cmd.Context(), snap); err != nil {
						return err
					}
					count++
				}
				a.logger.Debug("recorded story", zap.String("story", s.ID))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %d snapshots\n", count)
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify [story...]",
		Short: "Check current renderings against the recorded snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectStories(args)
			if err != nil {
				return err
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			failed := 0
			for _, s := range selected {
				snaps, err := render.Snapshots(cmd.Context(), s)
				if err != nil {
					return err
				}
				for _, snap := range snaps {
					d, err := store.Verify(cmd.Context(), snap)
					if err != nil {
						return err
					}
					switch {
					case d.Missing():
						fmt.Fprintf(out, "MISSING  %s/%s\n", d.StoryID, d.Format)
						failed++
					case d.Changed():
						fmt.Fprintf(out, "CHANGED  %s/%s\n", d.StoryID, d.Format)
						failed++
					default:
						fmt.Fprintf(out, "ok       %s/%s\n", d.StoryID, d.Format)
					}
				}
			}
			if failed > 0 {
				return errors.Wrapf(ErrSnapshotMismatch, "%d failed", failed)
			}
			return nil
		},
	}

	cmd.AddCommand(record, verify)
	return cmd
}

// selectStories resolves story ids, or returns the whole catalog for none
func selectStories(ids []string) ([]stories.Story, error) {
	if len(ids) == 0 {
		return stories.All(), nil
	}
	selected := make([]stories.Story, 0, len(ids))
	for _, id := range ids {
		s, err := stories.Lookup(id)
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}
	return selected, nil
}
