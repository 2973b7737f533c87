package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bamsammich/preroll/internal/config"
)

var version = "dev"

// Exit codes beyond the host command's own.
const (
	exitSetup       = 2
	exitInterrupted = 130
	exitNotFound    = 127
)

func main() {
	os.Exit(run())
}

// options holds the root command's flags.
type options struct {
	showVersion bool
	tui         bool
	verbose     bool
	quiet       bool
	noProgress  bool
	mediaURL    string
	bitrate     string
	readyBytes  string
	logFile     string
	title       string
	width       int
	cellWidth   int
}

func run() int {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "preroll [flags] [-- command [args...]]",
		Short: "Responsive loading sequence for the terminal, then hand off to your program",
		Long: `preroll shows a short loading sequence sized to the terminal: a timed
progress bar on narrow and medium windows, an intro clip on wide ones. When the
sequence completes it runs the given command with the terminal handed over.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(os.Stdout, "preroll %s\n", version)
				return nil
			}

			// Load optional config file.
			cfg, cfgErr := config.Load()
			applyConfigDefaults(cmd, cfg.Defaults, &opts)

			logs, err := setupLogging(opts)
			if err != nil {
				return &exitError{code: exitSetup, err: err}
			}
			defer logs.Close()
			if cfgErr != nil {
				logs.logger.Warn("failed to load config", "path", config.Path(), "error", cfgErr)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := playSequence(ctx, opts, cfg, logs); err != nil {
				return err
			}
			stop()

			if len(args) == 0 {
				return nil
			}
			return runHost(context.Background(), args)
		},
	}

	flags := rootCmd.Flags()
	// Everything after the first positional argument belongs to the host command.
	flags.SetInterspersed(false)

	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flags.BoolVar(&opts.tui, "tui", false, "full-screen sequence (Bubble Tea)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all output except errors")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "disable progress display")
	flags.StringVar(&opts.mediaURL, "url", "", "intro clip URL for wide terminals")
	flags.StringVar(&opts.bitrate, "bitrate", "", "clip playback rate (e.g. 512K, 2M/s); empty plays as fast as it downloads")
	flags.StringVar(&opts.readyBytes, "ready-bytes", "", "buffered bytes before the clip counts as playable (default 256K)")
	flags.StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")
	flags.StringVar(&opts.title, "title", "", "wordmark shown by the full-screen sequence")
	flags.IntVar(&opts.width, "width", 0, "viewport width in pixels (default: measure the terminal)")
	flags.IntVar(&opts.cellWidth, "cell-width", 0, "pixels per terminal column when the terminal does not report pixel sizes (default 8)")

	rootCmd.AddCommand(docsCmd)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.err)
			}
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitSetup
	}

	return 0
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, opts *options) {
	changed := cmd.Flags().Changed
	if !changed("tui") && defaults.TUI != nil {
		opts.tui = *defaults.TUI
	}
	if !changed("url") && defaults.MediaURL != nil {
		opts.mediaURL = *defaults.MediaURL
	}
	if !changed("cell-width") && defaults.CellWidth != nil {
		opts.cellWidth = *defaults.CellWidth
	}
	if !changed("bitrate") && defaults.Bitrate != nil {
		opts.bitrate = *defaults.Bitrate
	}
	if !changed("ready-bytes") && defaults.ReadyBytes != nil {
		opts.readyBytes = *defaults.ReadyBytes
	}
}

// exitError carries a process exit code, and optionally the error to print.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("exit code %d: %v", e.code, e.err)
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }
