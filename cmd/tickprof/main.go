package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hotloop/tickprof/clock"
	"github.com/hotloop/tickprof/internal/bench"
	"github.com/hotloop/tickprof/internal/version"
)

var (
	cfgFile  string
	logLevel string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickprof",
		Short: "In-process latency profiler",
		Long: `tickprof brackets units of work with high-resolution timestamps
and accumulates a frequency histogram of observed durations, from
which it reports totals, averages and percentile latencies. It can
time with the CPU cycle counter when one is available and safe to
use across cores, or with a portable wall clock.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(benchCmd())
	cmd.AddCommand(detectCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark a synthetic workload and print latency statistics",
		RunE:  runBench,
	}

	cmd.Flags().StringVar(
		&cfgFile, "config", "",
		"path to config file (defaults used when omitted)",
	)
	cmd.Flags().StringVar(
		&logLevel, "log-level", "",
		"override log level (debug, info, warn, error)",
	)

	return cmd
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Probe the hardware cycle counter capabilities",
		Run: func(cmd *cobra.Command, args []string) {
			info := clock.Detect()

			fmt.Printf("available: %v\n", info.Available)
			fmt.Printf("invariant: %v\n", info.Invariant)
			fmt.Printf("frequency: %d Hz\n", info.FrequencyHz)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.FullWithPlatform())
		},
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg := bench.DefaultConfig()

	if cfgFile != "" {
		loaded, err := bench.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		cfg = loaded
	}

	// CLI flag overrides config file.
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}

	log.SetLevel(level)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	r, err := bench.New(log, cfg)
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	res, err := r.Run(ctx)
	if err != nil {
		return fmt.Errorf("running benchmark: %w", err)
	}

	bench.WriteReport(os.Stdout, cfg, res)

	return nil
}
