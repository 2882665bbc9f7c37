package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

// Onboarder runs every received attachment through the batch processor.
type Onboarder struct {
	log       *slog.Logger
	files     <-chan *domain.Attachment
	results   chan<- *domain.BatchResult
	processor BatchProcessor
	observer  BatchObserver
}

func NewOnboarder(
	log *slog.Logger,
	files <-chan *domain.Attachment,
	results chan<- *domain.BatchResult,
	processor BatchProcessor,
	observer BatchObserver,
) *Onboarder {
	return &Onboarder{
		log:       log,
		files:     files,
		results:   results,
		processor: processor,
		observer:  observer,
	}
}

func (o *Onboarder) Run(ctx context.Context) error {
	defer close(o.results)

	for {
		select {
		case attachment, ok := <-o.files:
			if !ok {
				return nil
			}

			log := o.log.With(
				slog.String("filename", attachment.Name),
				slog.String("market", attachment.Market),
			)

			log.DebugContext(ctx, "received file to onboard")

			result, err := o.processFile(ctx, attachment)
			if errors.Is(err, domain.ErrConfiguration) {
				return err
			}

			if err != nil {
				log.ErrorContext(ctx, "failed to process file", slog.String("err", err.Error()))
			}

			o.observer.ObserveBatch(result)

			select {
			case o.results <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (o *Onboarder) processFile(ctx context.Context, attachment *domain.Attachment) (_ *domain.BatchResult, err error) {
	f, err := os.Open(attachment.Path)
	if err != nil {
		result := domain.NewBatchResult(attachment.Name, attachment.Market)
		result.Err = fmt.Errorf("failed to open file: %w", err)
		result.FinishedAt = result.StartedAt

		return result, result.Err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return o.processor.Process(ctx, attachment.Name, attachment.Market, f)
}
