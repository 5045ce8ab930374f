package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omniaura/solid-grab/instrument"
)

var instrumentCmd = &cobra.Command{
	Use:   "instrument [flags] [dir]",
	Short: "Inject metadata attributes into a source tree",
	Long: `Instrument walks a project directory, splices data-solid-source and
data-solid-component attributes into every markup opening tag of matching
source files, and writes the result to an output mirror tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstrument,
}

func init() {
	instrumentCmd.Flags().String("config", "", "YAML config file (flags override)")
	instrumentCmd.Flags().String("out", "", "output directory")
	instrumentCmd.Flags().Bool("no-location", false, "disable source-location injection")
	instrumentCmd.Flags().Bool("no-component", false, "disable component-name injection")
}

func runInstrument(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var config *instrument.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := instrument.LoadConfig(ctx, path)
		if err != nil {
			return err
		}
		config = loaded
	} else {
		config = &instrument.Config{}
	}

	if len(args) == 1 {
		config.Root = args[0]
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		config.OutDir = out
	}
	off := false
	if noLocation, _ := cmd.Flags().GetBool("no-location"); noLocation {
		config.Location = &off
	}
	if noComponent, _ := cmd.Flags().GetBool("no-component"); noComponent {
		config.Component = &off
	}

	service := instrument.New(*config, newLogger(cmd))
	report, err := service.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"scanned %d, injected %d, unchanged %d, cache hits %d, copied %d\n",
		report.Scanned, report.Changed, report.Unchanged, report.CacheHits, report.Copied)
	return nil
}
