package main

import (
	"fmt"
	"os"

	"example.com/gapedit/internal/app"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/logs"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the gapedit command tree.
func newRootCmd() *cobra.Command {
	var configPath string
	var underscoreBreaks bool

	root := &cobra.Command{
		Use:   "gapedit [file...]",
		Short: "A terminal text editor built on a gap buffer",
		Long: `gapedit opens each named file as a document and starts the terminal editor.
Without arguments it starts with an empty, unnamed document.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("underscore-breaks") {
				cfg.UnderscoreBreaks = underscoreBreaks
			}

			logger := logs.NewFromEnv()
			defer logger.Close()

			r := app.New(cfg, logger)
			for _, path := range args {
				if err := r.LoadFile(path); err != nil {
					return err
				}
			}
			if err := r.Run(); err != nil {
				return fmt.Errorf("editor terminated: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.gapedit/config.yaml)")
	root.Flags().BoolVar(&underscoreBreaks, "underscore-breaks", false, "treat '_' as a word break")
	root.AddCommand(newLinesCmd())
	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
