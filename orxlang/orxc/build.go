package main

import (
	"github.com/npillmayer/orx/manifest"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newBuildCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build [manifest]",
		Short: "Compile a manifest tree into a single file",
		Long: `Build discovers all Orx documents of a manifest tree, parses them in
parallel and writes the resulting entries to a single JSON or YAML file.
Documents which fail to parse are reported and left out of the output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			location := cfg.Manifest
			if len(args) == 1 {
				location = args[0]
			}
			src, err := manifest.NewSource(cfg.Pattern)
			if err != nil {
				return err
			}
			b := &manifest.Builder{
				Source:  src,
				Sink:    manifest.NewSink(cfg.OutDir, cfg.OutFile, cfg.Format),
				Lenient: cfg.Lenient,
				Workers: cfg.Workers,
				Trace:   tracer(),
			}
			report, err := b.Build(cmd.Context(), location)
			if report != nil {
				ok := len(report.Results) - report.Failed()
				pterm.Info.Printf("compiled %d document(s) into %s\n", ok, report.Output)
				if n := report.Failed(); n > 0 {
					pterm.Error.Printf("%d document(s) failed\n", n)
				}
			}
			return err
		},
	}
}
