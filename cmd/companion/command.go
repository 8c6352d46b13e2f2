package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trapdata/companion/internal/config"
)

// newCommand builds the root command. Flags override the loaded config
// only when they are set on the command line.
func newCommand(
	load func() (*config.Config, error),
	start func(*config.Config) error,
) *cobra.Command {
	var (
		browser bool
		addr    string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:          "companion",
		Short:        "AMI Trap Data Companion",
		Long:         `companion opens the trap data page in a desktop window hooked up to the desktop app.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("browser") {
				cfg.Browser = browser
			}
			if flags.Changed("addr") {
				cfg.ListenAddr = addr
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}

			return start(cfg)
		},
	}

	cmd.Flags().BoolVar(&browser, "browser", false, "open the page in the system browser without a desktop bridge")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address for the local page server")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging and webview dev tools")

	return cmd
}
