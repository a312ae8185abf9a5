package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hasher/internal/config"
	"github.com/vvka-141/hasher/internal/digest"
	"github.com/vvka-141/hasher/internal/dispatch"
	"github.com/vvka-141/hasher/internal/filehash"
	"github.com/vvka-141/hasher/internal/inputs"
	"github.com/vvka-141/hasher/internal/logging"
	"github.com/vvka-141/hasher/internal/manifest"
	"github.com/vvka-141/hasher/internal/progress"
	"github.com/vvka-141/hasher/internal/report"
	"github.com/vvka-141/hasher/pkg/hasher"
)

// runRoot orchestrates a single run: resolve inputs, hash them on a bounded
// worker pool, then print digests or verification outcomes.
func runRoot(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	// Algorithm is validated before any I/O so a typo fails fast.
	algorithm := digest.Algorithm(args[0])
	if _, err := digest.New(algorithm); err != nil {
		return err
	}

	applyConfigDefaults(cmd, logger)

	verifyMode := cmd.Flags().Changed("checksum-file") || rootFlags.checksumFile != ""

	cfg := hasher.RunConfig{
		Algorithm:    string(algorithm),
		ManifestPath: rootFlags.checksumFile,
		Parallel:     rootFlags.parallel,
		BufferSize:   rootFlags.bufferSize,
		Progress:     rootFlags.progress,
		Verbose:      verbose,
	}
	// Flag values are validated before any file is opened, so a usage
	// mistake fails as a usage error no matter what is on disk.
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		man *manifest.Manifest
		ins []hasher.Input
		err error
	)
	if verifyMode {
		man, err = manifest.Load(rootFlags.checksumFile)
		if err != nil {
			return err
		}
		logger.Verbose("Verifying %d entries from %s", man.Len(), rootFlags.checksumFile)
		if len(args) > 1 {
			logger.Verbose("Ignoring %d positional inputs in verify mode", len(args)-1)
		}
		for _, path := range man.Paths() {
			ins = append(ins, hasher.Input{Name: path})
		}
	} else {
		ins, err = inputs.Resolve(args[1:], rootFlags.globInputs)
		if err != nil {
			return err
		}
	}

	cfg.Inputs = ins

	logger.Verbose("Hashing %d inputs with %s (%d workers, %d-byte chunks)",
		len(ins), algorithm, cfg.Parallel, cfg.BufferSize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sink progress.Sink
	var renderer *progress.Renderer
	if cfg.Progress && len(ins) > 0 {
		meter := progress.NewMeter(inputs.TotalBytes(ins), len(ins))
		renderer = progress.NewRenderer(meter, logger, stop)
		renderer.Start(ctx)
		sink = meter
	}

	fileHasher := filehash.New(algorithm, cfg.BufferSize, sink)
	results := dispatch.New(fileHasher, cfg.Parallel, logger).Run(ctx, ins)

	if renderer != nil {
		renderer.Stop()
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}

	reporter := report.New(cmd.OutOrStdout(), logger)
	if verifyMode {
		return reporter.PrintVerifications(report.Classify(man, results))
	}
	return reporter.PrintDigests(results)
}

// applyConfigDefaults overlays hasher.yaml values onto flags the user did
// not set explicitly. A broken or absent config never fails the run.
func applyConfigDefaults(cmd *cobra.Command, logger hasher.Logger) {
	cfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			logger.Verbose("Ignoring %s: %v", config.ConfigFileName, err)
		}
		return
	}

	flags := cmd.Flags()
	if cfg.Parallel > 0 && !flags.Changed("parallel") {
		rootFlags.parallel = cfg.Parallel
	}
	if cfg.BufferSize > 0 && !flags.Changed("buffer-size") {
		rootFlags.bufferSize = cfg.BufferSize
	}
	// A bare -c picks up the configured manifest name. Config never turns
	// verification on by itself.
	if cfg.ChecksumFile != "" && rootFlags.checksumFile == hasher.DefaultManifestName {
		rootFlags.checksumFile = cfg.ChecksumFile
	}
	if cfg.Progress && !flags.Changed("progress") {
		rootFlags.progress = true
	}
}
