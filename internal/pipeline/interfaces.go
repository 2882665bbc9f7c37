package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
	"github.com/kurochkinivan/device_onboarder/internal/report"
)

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.File, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type BatchProcessor interface {
	Process(ctx context.Context, filename, market string, r io.Reader) (*domain.BatchResult, error)
}

type BatchObserver interface {
	ObserveBatch(result *domain.BatchResult)
}

type BatchSaver interface {
	SaveBatch(ctx context.Context, summary *domain.BatchSummary) error
}

type OutcomesSaver interface {
	SaveOutcomes(ctx context.Context, batchID string, outcomes ...*domain.CallOutcome) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportFormatter interface {
	Format(result *domain.BatchResult) *report.Report
}

type ReportGenerator interface {
	GenerateReport(outputPath string, r *report.Report) error
}

type Notifier interface {
	Notify(ctx context.Context, subject, content string) error
}
