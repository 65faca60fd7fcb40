// SPDX-License-Identifier: MIT
// Package: incgraph/cmd/incgraph
//
// root.go — cobra command tree.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/incgraph/export"
	"github.com/katalvlaran/incgraph/incgen"
	"github.com/katalvlaran/incgraph/schema"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// cliOptions holds the persistent flags.
type cliOptions struct {
	configPath string
	seed       int64
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "incgraph",
		Short:         "Incremental deterministic typed-graph generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the YAML schema")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "master seed (overrides schema and "+schema.EnvSeed+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newValidateCmd(opts),
		newGenerateCmd(opts),
		newStatsCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newValidateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a schema file without generating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSchema(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d node-types, %d predicates, %d edge-types\n",
				len(cfg.Types), len(cfg.Predicates), len(cfg.EdgeTypes))
			return nil
		},
	}
}

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph and write its node and edge listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := run(cmd, opts)
			if err != nil {
				return err
			}

			if outPath == "" {
				if err = export.WriteText(cmd.OutOrStdout(), g, cfg); err != nil {
					return fmt.Errorf("generate: %w", err)
				}
				return nil
			}
			return writeFile(outPath, func(w io.Writer) error { return export.WriteText(w, g, cfg) })
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newStatsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Generate a graph and print per-type and per-edge-type statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := run(cmd, opts)
			if err != nil {
				return err
			}
			s, err := export.Summarize(g, cfg)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			return s.Write(cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "incgraph %s\n", version)
		},
	}
}

// writeFile creates path, runs write on it and closes it. A close failure is
// reported even when write succeeded: some filesystems only surface write
// errors at close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("generate: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

// loadSchema reads --config and applies the environment override.
func loadSchema(opts *cliOptions) (*schema.Config, error) {
	if opts.configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := schema.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	schema.ApplyEnv(cfg)
	return cfg, nil
}

// run loads the schema and generates the whole graph.
func run(cmd *cobra.Command, opts *cliOptions) (*schema.Config, *incgen.Graph, error) {
	cfg, err := loadSchema(opts)
	if err != nil {
		return nil, nil, err
	}

	var genOpts []incgen.Option
	if cmd.Flags().Changed("seed") {
		genOpts = append(genOpts, incgen.WithSeed(opts.seed))
	}
	if opts.verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		genOpts = append(genOpts, incgen.WithLogger(slog.New(h)))
	}

	gen, err := incgen.New(cfg, genOpts...)
	if err != nil {
		return nil, nil, err
	}
	g, err := gen.Generate()
	if err != nil {
		return nil, nil, err
	}
	return cfg, g, nil
}
