// Package main is the entry point for snapsys, a one-shot system snapshot
// CLI. It loads configuration, runs every metric collector once, renders the
// snapshot to stdout, and exits. Partial data is a valid result and exits 0;
// only startup failures (bad config, bad flags) exit non-zero.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snapsys/snapsys/internal/collector"
	"github.com/snapsys/snapsys/internal/config"
	"github.com/snapsys/snapsys/internal/render"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	flagConfig  string
	flagFormat  string
	flagNoColor bool
	flagTimeout time.Duration
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "snapsys",
	Short: "One-shot system snapshot for operational diagnostics",
	Long: `Snapsys reads OS identity, CPU, load, memory, swap, disk, uptime, and
network metrics once, prints a labeled report, and exits. The output is
plain text meant to be pasted into incident tickets; metrics that cannot
be read are marked unavailable instead of aborting the run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("snapsys %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: text or json")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable terminal colors")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-metric read timeout (overrides config)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "snapsys: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// CLI flags take precedence over config and environment.
	if flagFormat != "" {
		cfg.Output.Format = flagFormat
	}
	if flagNoColor {
		cfg.Output.Color = "never"
	}
	if flagTimeout > 0 {
		cfg.Collection.Timeout = config.Duration{Duration: flagTimeout}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := collector.NewRegistry(cfg.Collection.Timeout.Duration, logger)
	registry.Register(collector.NewHostCollector())
	registry.Register(collector.NewCPUCollector(cfg.Collection.CPUSample.Duration))
	registry.Register(collector.NewLoadCollector())
	registry.Register(collector.NewMemoryCollector())
	registry.Register(collector.NewSwapCollector())
	registry.Register(collector.NewDiskCollector(logger, cfg.Disk.ExcludeFSTypes, cfg.Disk.ExcludeMounts))
	registry.Register(collector.NewUptimeCollector())
	registry.Register(collector.NewNetworkCollector(cfg.Collection.NetSample.Duration))

	results := registry.CollectAll(ctx)
	snap := collector.BuildSnapshot(time.Now(), results)

	if cfg.Output.Format == "json" {
		out, err := render.JSON(snap)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	text := render.Render(snap)
	if useColor(cfg) {
		text = render.Stylize(text)
	}
	fmt.Print(text)
	return nil
}

// useColor decides whether the text report gets terminal styling. "auto"
// colors only when stdout is a TTY, so piped/pasted output stays plain.
func useColor(cfg *config.Config) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// initLogger creates a zap console logger on stderr; stdout is reserved for
// the report itself.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.WarnLevel
	}
	if flagVerbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core)
}
