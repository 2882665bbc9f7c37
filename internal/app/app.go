package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/config"
	v1 "github.com/kurochkinivan/device_onboarder/internal/controller/http/v1"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
	"github.com/kurochkinivan/device_onboarder/internal/infrastructure/outbox"
	"github.com/kurochkinivan/device_onboarder/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/device_onboarder/internal/ingest"
	"github.com/kurochkinivan/device_onboarder/internal/lmv1"
	"github.com/kurochkinivan/device_onboarder/internal/metrics"
	"github.com/kurochkinivan/device_onboarder/internal/onboarding"
	"github.com/kurochkinivan/device_onboarder/internal/pipeline"
	"github.com/kurochkinivan/device_onboarder/internal/report"
	"github.com/kurochkinivan/device_onboarder/internal/repository/postgresql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer   = 100
	resultsBuffer = 50
	reportsBuffer = 100

	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	files     *postgresql.FilesRepository
	batches   *postgresql.BatchesRepository
	outcomes  *postgresql.OutcomesRepository
	txManager *postgresql.TxManager
}

func (a *App) Run(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Any("markets", a.cfg.App.Markets),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
		slog.Int("workers", a.cfg.LogicMonitor.Workers),
	)

	processor, err := a.newProcessor()
	if err != nil {
		return err
	}

	policy, err := report.ParsePolicy(a.cfg.Report.Policy)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	repos := repositories{
		files:     postgresql.NewFilesRepository(pool),
		batches:   postgresql.NewBatchesRepository(pool),
		outcomes:  postgresql.NewOutcomesRepository(pool),
		txManager: postgresql.NewTxManager(pool),
	}

	reset, err := repos.files.ResetProcessingFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset processing files: %w", err)
	}

	if reset > 0 {
		a.log.WarnContext(ctx, "files interrupted by a previous run will be processed again", slog.Int64("count", reset))
	}

	return a.startPipeline(ctx, repos, processor, report.NewFormatter(policy))
}

func (a *App) newProcessor() (*onboarding.Processor, error) {
	lm := a.cfg.LogicMonitor

	ingestor, err := ingest.New(ingest.Options{
		Delimiter: a.cfg.CSV.Delimiter,
		Encoding:  a.cfg.CSV.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	httpClient, err := lmv1.NewHTTPClient(lmv1.TransportConfig{
		Timeout:            lm.RequestTimeout,
		ProxyURL:           lm.ProxyURL,
		InsecureSkipVerify: lm.InsecureSkipVerify,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	baseURL := lm.BaseURL
	if baseURL == "" {
		baseURL = lmv1.BaseURL(lm.Company)
	}

	if lm.InsecureSkipVerify {
		a.log.Warn("tls certificate verification is disabled", slog.String("base_url", baseURL))
	}

	cfg := onboarding.Config{
		Credentials: lmv1.Credentials{
			AccessID:  lm.AccessID,
			AccessKey: lm.AccessKey,
		},
		CollectorID:    lm.CollectorID,
		HostGroupIDs:   lm.HostGroupIDs,
		Workers:        lm.Workers,
		RequestTimeout: lm.RequestTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := lmv1.NewClient(baseURL, httpClient, lm.MaxBodySnippet)

	return onboarding.NewProcessor(a.log, cfg, ingestor, client), nil
}

func (a *App) startPipeline(
	ctx context.Context,
	repos repositories,
	processor *onboarding.Processor,
	formatter *report.Formatter,
) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	files := make(chan *domain.Attachment, filesBuffer)
	results := make(chan *domain.BatchResult, resultsBuffer)
	reports := make(chan *domain.BatchResult, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.WatchDirectory,
		a.cfg.Markets,
		a.cfg.DirectoryScanInterval,
		files,
		repos.files,
		repos.files,
	)
	onboarder := pipeline.NewOnboarder(a.log, files, results, processor, metrics.New(registry))
	writer := pipeline.NewWriter(a.log, results, reports, repos.files, repos.batches, repos.outcomes, repos.txManager)
	reporter := pipeline.NewReporter(
		a.log,
		a.cfg.ReportsDirectory,
		a.cfg.Report.Subject,
		reports,
		formatter,
		report_generator.New(),
		outbox.New(a.cfg.OutboxDirectory),
	)
	server := v1.NewServer(a.cfg.HTTP, v1.NewRouter(a.log, repos.batches, repos.outcomes, registry))

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "onboarder started")
		return onboarder.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
