package main

import (
	"context"
	"os"

	"github.com/npillmayer/orx/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// options are shared by all sub-commands. cfg is valid after flags have been
// parsed.
type options struct {
	configFile string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "orxc",
		Short:         "Compile Orx emoji manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&opts.configFile, "config", "", "configuration file (YAML)")
	f.String("manifest", "", "location of the manifest tree")
	f.String("pattern", "", "glob selecting Orx documents")
	f.String("out-dir", "", "destination directory")
	f.String("out-file", "", "destination file name")
	f.String("format", "", "output format [json|yaml]")
	f.Bool("lenient", false, "accept emojis without a code")
	f.Int("workers", 0, "number of parallel document parsers")
	f.String("trace", "", "Trace level [Debug|Info|Error]")
	root.AddCommand(newBuildCommand(opts), newDumpCommand(opts), newReplCommand(opts))
	return root
}

// load reads the configuration and lets explicitly set flags override it.
func (o *options) load(cmd *cobra.Command) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(o.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	for flag, target := range map[string]*string{
		"manifest": &cfg.Manifest,
		"pattern":  &cfg.Pattern,
		"out-dir":  &cfg.OutDir,
		"out-file": &cfg.OutFile,
		"format":   &cfg.Format,
		"trace":    &cfg.TraceLevel,
	} {
		if flags.Changed(flag) {
			*target, _ = flags.GetString(flag)
		}
	}
	if flags.Changed("lenient") {
		cfg.Lenient, _ = flags.GetBool("lenient")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(cfg.TraceLevel))
	tracer().Debugf("configuration: %+v", *cfg)
	o.cfg = cfg
	return nil
}
