// Probegen writes probe glue for the types of a Go package.
//
// It is meant to run from a go:generate line in the package it serves:
//
//	//go:generate go run github.com/go-theft-auto/probe/cmd/probegen
//
// Usage:
//
//	probegen [flags] [packages]
//
// Without packages the current directory is used. Types are marked with a
// //probe:generate line in their doc comment; see package probegen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-theft-auto/probe/internal/probegen"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "probegen: %v\n", err)
		os.Exit(1)
	}
}

var (
	dir     string
	tags    []string
	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "probegen [packages]",
	Short: "Generate probe glue for Go types",
	Long: `Probegen finds the types marked //probe:generate in each package and writes
their Probe, HasInner and IterateInner methods to <package>_probe.go.

Problems with a declaration are reported as file:line:col and nothing is
written for any package.`,
	Example: `  # From a go:generate line
  probegen

  # Several packages, printing the output instead of writing it
  probegen --dry-run ./internal/...`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&dir, "dir", "C", "", "Directory to resolve packages in")
	rootCmd.Flags().StringSliceVar(&tags, "tags", nil, "Extra build tags")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log what is loaded and written")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print generated files instead of writing them")
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := probegen.Generate(ctx, probegen.Config{Dir: dir, Tags: tags, Logger: log}, args...)
	if err != nil {
		var diags probegen.Diagnostics
		if errors.As(err, &diags) {
			// Diagnostics carry their own positions.
			return errors.Newf("%d problem(s):\n%s", len(diags), diags.Error())
		}
		return err
	}
	return write(ctx, log, files)
}

func write(ctx context.Context, log *zap.Logger, files []probegen.File) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if dryRun {
			fmt.Printf("// %s\n%s", f.Path, f.Content)
			continue
		}
		if old, err := os.ReadFile(f.Path); err == nil && string(old) == string(f.Content) {
			log.Debug("unchanged", zap.String("file", f.Path))
			continue
		}
		if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", f.Path)
		}
		log.Info("wrote", zap.String("file", f.Path), zap.Int("bytes", len(f.Content)))
	}
	return nil
}
