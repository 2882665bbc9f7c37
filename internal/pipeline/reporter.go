package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	subject         string
	reports         <-chan *domain.BatchResult
	formatter       ReportFormatter
	reportGenerator ReportGenerator
	notifier        Notifier
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	subject string,
	reports <-chan *domain.BatchResult,
	formatter ReportFormatter,
	reportGenerator ReportGenerator,
	notifier Notifier,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		subject:         subject,
		reports:         reports,
		formatter:       formatter,
		reportGenerator: reportGenerator,
		notifier:        notifier,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.String("batch_id", result.ID.String()),
				slog.Int("succeeded", result.Succeeded()),
			)

			log.InfoContext(ctx, "received batch result, generating report")

			if err := r.processResult(ctx, result); err != nil {
				log.ErrorContext(ctx, "failed to deliver report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(ctx context.Context, result *domain.BatchResult) error {
	rep := r.formatter.Format(result)

	path := filepath.Join(r.outputDir, result.ID.String()+".pdf")
	if err := r.reportGenerator.GenerateReport(path, rep); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	subject := r.subject
	if result.Market != "" {
		subject = fmt.Sprintf("%s (%s)", r.subject, result.Market)
	}

	if err := r.notifier.Notify(ctx, subject, rep.Render()); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}

	return nil
}
