// Command cs2cs transforms points read from files or standard input from
// one projection to another.
//
//	echo "-122.4194 37.7749" | cs2cs --from wgs84 --to "+proj=utm +zone=10 +datum=WGS84"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pebbe/go-proj-4/internal/config"
	"github.com/pebbe/go-proj-4/internal/logging"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Env) *cobra.Command {
	opts := options{
		from:        cfg.Source,
		to:          cfg.Target,
		definitions: cfg.Definitions,
		precision:   cfg.Precision,
	}
	logLevel := cfg.LogLevel
	logFormat := cfg.LogFormat
	listNames := false

	cmd := &cobra.Command{
		Use:   "cs2cs [files...]",
		Short: "Transform coordinates between projections",
		Long: `cs2cs reads "x y [z]" lines from the given files, or from standard input,
transforms them in one batch from the --from projection to the --to projection,
and writes "x y z" lines to standard output. Coordinates are in the units of
each projection: degrees, longitude first, for geographic ones.

A projection is either a literal parameter string such as
"+proj=utm +zone=10 +datum=WGS84", or a name from the built-in definitions or
the --definitions file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if listNames {
				return listDefinitions(opts, cmd.OutOrStdout())
			}
			return run(opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.from, "from", "f", opts.from, "source projection (env CS2CS_SOURCE)")
	f.StringVarP(&opts.to, "to", "t", opts.to, "target projection (env CS2CS_TARGET)")
	f.StringVarP(&opts.definitions, "definitions", "d", opts.definitions, "YAML file of named definitions (env CS2CS_DEFINITIONS)")
	f.IntVarP(&opts.precision, "precision", "p", opts.precision, "digits after the decimal point (env CS2CS_PRECISION)")
	f.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error (env CS2CS_LOG_LEVEL)")
	f.StringVar(&logFormat, "log-format", logFormat, "log format: console, json (env CS2CS_LOG_FORMAT)")
	f.BoolVarP(&listNames, "list", "l", false, "list the named definitions and exit")

	return cmd
}
