// Package cli wires the alertbanner commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ngmaloney/alert-banner/internal/config"
	"github.com/ngmaloney/alert-banner/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app is the state shared by the commands of one invocation
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "alertbanner",
		Short: "AlertBanner component gallery, preview server and snapshot tool",
		Long: `alertbanner renders the AlertBanner component stories in the terminal,
serves them as HTML pages, and records rendering snapshots so changes to the
component can be checked against a baseline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./alertbanner.yaml)")

	root.AddCommand(
		newGalleryCmd(a),
		newServeCmd(a),
		newRenderCmd(a),
		newStoriesCmd(a),
		newSnapshotCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger
func (a *app) setup() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}
