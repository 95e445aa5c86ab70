// Command batchrename renames the files and directories under a root in
// one validated batch.
//
// It resolves configuration (defaults, config file, environment, flags),
// then either runs diagnostics (--check) or plans, validates and applies
// the renames.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/batchrename/internal/check"
	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/display"
	"github.com/backmassage/batchrename/internal/logging"
	"github.com/backmassage/batchrename/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

var exampleUsage = strings.TrimSpace(`
  batchrename ./photos --regex 'IMG_(\d+)' --to 'foto-\1' --dry-run
  batchrename . -r --slugify --lower --spaces-to-underscore --yes
  batchrename ~/docs --include-dirs --prefix 2024_ --prune-dirs archive,tmp -y
`)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the CLI and returns the process exit code. Flag, config and
// validation errors exit with 2; everything after that is decided by the
// pipeline's RunStats.
func run(args []string, stdout io.Writer) int {
	cfg := config.DefaultConfig()
	code := pipeline.ExitOK

	cmd := &cobra.Command{
		Use:           "batchrename [flags] [root]",
		Short:         "Plan, validate and apply batch renames under a directory",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s (%s) %s/%s", version, commit, runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Phase 1: Bootstrap. The logger doesn't exist yet, so errors are
		// returned and printed to stderr by the caller.
		if err := flags.Resolve(cmd.Flags(), &cfg, args); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logging.NewLogger(&cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		// Phase 2: Logger available. All output goes through log from here on.
		display.PrintBanner(stdout)

		if cfg.CheckOnly {
			if !check.RunCheck(&cfg, log) {
				code = pipeline.ExitAborted
			}
			return nil
		}

		log.Info("=== batchrename v%s ===", version)
		log.Info("Root: %s", cfg.Root)
		if cfg.ConfigFile != "" {
			log.Debug("Config file: %s", cfg.ConfigFile)
		}
		if cfg.DryRun {
			log.Warn("DRY RUN: nothing will be renamed")
		}

		// Phase 3: Signal handling. A signal before execution cancels the
		// run; once renaming has started the batch always finishes.
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		go func() {
			select {
			case <-sigCh:
				log.Warn("Received interrupt; renames already under way will finish")
				cancel()
			case <-ctx.Done():
			}
		}()

		// Phase 4: Run pipeline (walk → plan → validate → order → execute).
		stats := pipeline.Run(ctx, &cfg, log)
		code = stats.ExitCode()
		return nil
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "batchrename: %v\n", err)
		return pipeline.ExitConfig
	}
	return code
}
