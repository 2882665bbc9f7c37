package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

type Writer struct {
	log           *slog.Logger
	results       <-chan *domain.BatchResult
	reports       chan<- *domain.BatchResult
	fileUpdater   FileUpdater
	batchSaver    BatchSaver
	outcomesSaver OutcomesSaver
	transactor    Transactor
}

func NewWriter(
	log *slog.Logger,
	results <-chan *domain.BatchResult,
	reports chan<- *domain.BatchResult,
	fileUpdater FileUpdater,
	batchSaver BatchSaver,
	outcomesSaver OutcomesSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:           log,
		results:       results,
		reports:       reports,
		fileUpdater:   fileUpdater,
		batchSaver:    batchSaver,
		outcomesSaver: outcomesSaver,
		transactor:    transactor,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case result, ok := <-w.results:
			if !ok {
				return nil
			}

			log := w.log.With(
				slog.String("filename", result.Filename),
				slog.String("batch_id", result.ID.String()),
				slog.Int("outcomes_count", len(result.Outcomes)),
			)

			log.InfoContext(ctx, "received batch result")

			if err := w.saveResult(ctx, result); err != nil {
				log.ErrorContext(ctx, "failed to save batch result", slog.String("err", err.Error()))
				continue
			}

			log.DebugContext(ctx, "batch result saved successfully")

			select {
			case w.reports <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Writer) saveResult(ctx context.Context, result *domain.BatchResult) error {
	return w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		summary := result.Summary()

		if err := w.batchSaver.SaveBatch(ctx, summary); err != nil {
			return fmt.Errorf("failed to save batch: %w", err)
		}

		if len(result.Outcomes) > 0 {
			if err := w.outcomesSaver.SaveOutcomes(ctx, summary.ID, result.Outcomes...); err != nil {
				return fmt.Errorf("failed to save outcomes: %w", err)
			}
		}

		now := time.Now()
		file := &domain.File{
			Name:        result.Filename,
			Market:      result.Market,
			Status:      domain.StatusDone,
			ProcessedAt: &now,
		}

		if result.Err != nil {
			file.Status = domain.StatusError
			file.ErrorMessage = result.Err.Error()
		}

		if err := w.fileUpdater.UpdateOrCreateFile(ctx, file); err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		return nil
	})
}
