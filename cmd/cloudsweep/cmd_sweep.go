package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/cloudsweep/cloudsweep/config"
	"github.com/cloudsweep/cloudsweep/gcp"
	"github.com/cloudsweep/cloudsweep/janitor"
	"github.com/cloudsweep/cloudsweep/telemetry"
)

var (
	sweepConfigPath  string
	sweepProject     string
	sweepDryRun      bool
	sweepDebug       bool
	sweepInterval    time.Duration
	sweepMetricsAddr string
	sweepOnly        []string
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete stale unprotected resources across the project",
	Long: `Enumerate every configured resource kind across the project's
regions and zones, then delete what is older than the staleness
threshold, not protected by the skip label, and not in use.

Kinds run in dependency order (environments and clusters before raw
compute) so child resources are gone before their hosts. One kind
failing never stops the others; partial failures show up in the logs
and metrics only, and the process still exits 0.`,
	Example: `  cloudsweep sweep                          # one-shot, for a scheduler
  cloudsweep sweep --dry-run                # log what would be deleted
  cloudsweep sweep --only instances,disks   # just the compute primitives
  cloudsweep sweep --interval 1h            # keep running, expose metrics`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepConfigPath, "config", "c", "", "Path to config file")
	sweepCmd.Flags().StringVar(&sweepProject, "project", "", "Project to sweep (defaults to the credentials' project)")
	sweepCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "Log deletions without performing them")
	sweepCmd.Flags().BoolVar(&sweepDebug, "debug", false, "Enable debug logging")
	sweepCmd.Flags().DurationVar(&sweepInterval, "interval", 0, "Re-sweep on this interval instead of exiting (0 = one-shot)")
	sweepCmd.Flags().StringVar(&sweepMetricsAddr, "metrics", ":9090", "Metrics server address (interval mode only)")
	sweepCmd.Flags().StringSliceVar(&sweepOnly, "only", nil, "Restrict the sweep to these kinds")
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if sweepDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := telemetry.NewLogger("cloudsweep")

	cfg, err := loadSweepConfig()
	if err != nil {
		return err
	}

	// OTEL metrics with a Prometheus exporter
	promExporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(promExporter))
	otel.SetMeterProvider(provider)

	metrics, err := telemetry.InitSweepMetrics(provider.Meter("cloudsweep"))
	if err != nil {
		return fmt.Errorf("failed to init metrics: %w", err)
	}

	clients, err := gcp.NewClients(ctx, cfg.Project)
	if err != nil {
		return fmt.Errorf("failed to set up API clients: %w", err)
	}

	j := janitor.New(logger.Logger, metrics, janitor.Options{
		SkipLabel: cfg.Rules.SkipLabel,
		MaxAge:    time.Duration(cfg.Rules.MaxAge),
		DryRun:    cfg.Rules.DryRun,
	})

	if sweepInterval > 0 {
		return sweepLoop(ctx, logger, metrics, clients, j)
	}
	return sweepOnce(ctx, logger, metrics, clients, j)
}

func loadSweepConfig() (*config.Config, error) {
	cfg := config.Default()
	if sweepConfigPath != "" {
		loaded, err := config.LoadConfig(sweepConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if sweepProject != "" {
		cfg.Project = sweepProject
	}
	if sweepDryRun {
		cfg.Rules.DryRun = true
	}
	return cfg, nil
}

// sweepOnce runs a full sweep: discover locations, build the kind list,
// run the janitor. Per-kind failures are already absorbed inside Run; an
// error here means the run could not start at all.
func sweepOnce(ctx context.Context, logger *telemetry.Logger, metrics *telemetry.SweepMetrics, clients *gcp.Clients, j *janitor.Janitor) error {
	start := time.Now()

	regions, zones, err := clients.RegionsAndZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover locations: %w", err)
	}

	kinds, err := buildKinds(clients, regions, zones, sweepOnly)
	if err != nil {
		return err
	}

	logger.LogSweepStart(ctx, clients.Project, len(kinds))
	if err := j.Run(ctx, kinds); err != nil {
		return err
	}

	metrics.RecordSweepDuration(ctx, time.Since(start).Seconds())
	logger.LogSweepComplete(ctx, float64(time.Since(start).Milliseconds()))
	return nil
}

// sweepLoop re-sweeps on a ticker and exposes prometheus metrics until the
// context is cancelled. Transient failures are logged and the loop keeps
// going; a misconfigured kind is a programming error and aborts.
func sweepLoop(ctx context.Context, logger *telemetry.Logger, metrics *telemetry.SweepMetrics, clients *gcp.Clients, j *janitor.Janitor) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              sweepMetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", sweepMetricsAddr).Msg("metrics server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		if err := sweepOnce(ctx, logger, metrics, clients, j); err != nil {
			if errors.Is(err, janitor.ErrMisconfiguredKind) {
				return err
			}
			logger.Error().Err(err).Msg("sweep run failed")
		}

		select {
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			return nil
		case <-ticker.C:
		}
	}
}
