package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is reported to clients for skew detection and via --version.
const version = "v0.2.0"

var rootCmd = &cobra.Command{
	Use:   "solid-grab",
	Short: "Source-location instrumentation for compiled-away component trees",
	Long: `solid-grab injects source-location and component-name attributes into
JSX/TSX markup at build time and resolves them back from rendered DOM at
inspection time.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(instrumentCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the slog logger shared by all subcommands.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
