package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
	"github.com/kurochkinivan/device_onboarder/internal/lmv1"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type RecordParser interface {
	Parse(r io.Reader) iter.Seq2[*domain.DeviceRecord, error]
}

type RequestSender interface {
	Send(ctx context.Context, req *lmv1.SignedRequest) (*lmv1.Response, error)
}

type Config struct {
	Credentials    lmv1.Credentials
	CollectorID    int
	HostGroupIDs   string
	Workers        int
	RequestTimeout time.Duration
}

func (c Config) Validate() error {
	if err := c.Credentials.Validate(); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", domain.ErrConfiguration, c.Workers)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", domain.ErrConfiguration)
	}

	return nil
}

type Processor struct {
	log    *slog.Logger
	cfg    Config
	parser RecordParser
	sender RequestSender
	opts   []lmv1.Option
}

func NewProcessor(
	log *slog.Logger,
	cfg Config,
	parser RecordParser,
	sender RequestSender,
	opts ...lmv1.Option,
) *Processor {
	return &Processor{
		log:    log,
		cfg:    cfg,
		parser: parser,
		sender: sender,
		opts:   opts,
	}
}

// Process creates one device per valid record of r. The returned result is
// never nil: it holds the outcomes of every attempted record in file order,
// even when processing stops early because of a fatal read error or a
// cancelled context.
func (p *Processor) Process(ctx context.Context, filename, market string, r io.Reader) (*domain.BatchResult, error) {
	result := domain.NewBatchResult(filename, market)

	builder, err := p.requestBuilder()
	if err != nil {
		result.Err = err
		result.FinishedAt = time.Now()
		return result, err
	}

	log := p.log.With(
		slog.String("filename", filename),
		slog.String("batch_id", result.ID.String()),
	)

	var g errgroup.Group
	slots := semaphore.NewWeighted(int64(p.cfg.Workers))

	row := 0
	for record, err := range p.parser.Parse(r) {
		row++

		if err != nil {
			var rowErr *domain.RowParseError
			if errors.As(err, &rowErr) {
				log.WarnContext(ctx, "skipping invalid row", slog.String("err", rowErr.Error()))
				result.Skipped = append(result.Skipped, rowErr)
				continue
			}

			log.ErrorContext(ctx, "failed to read records", slog.String("err", err.Error()))
			result.Err = err
			break
		}

		if ctx.Err() != nil {
			result.Aborted = true
			break
		}

		outcome := &domain.CallOutcome{}

		if p.cfg.Workers == 1 {
			result.Outcomes = append(result.Outcomes, outcome)
			*outcome = p.attempt(ctx, log, builder, row, *record)
			continue
		}

		// waiting for a free slot is a cancellation point too
		if err := slots.Acquire(ctx, 1); err != nil {
			result.Aborted = true
			break
		}

		if ctx.Err() != nil {
			slots.Release(1)
			result.Aborted = true
			break
		}

		result.Outcomes = append(result.Outcomes, outcome)

		n := row
		g.Go(func() error {
			defer slots.Release(1)
			*outcome = p.attempt(ctx, log, builder, n, *record)
			return nil
		})
	}

	_ = g.Wait()

	result.FinishedAt = time.Now()

	log.InfoContext(ctx, "batch processed",
		slog.Int("succeeded", result.Succeeded()),
		slog.Int("rejected", result.Rejected()),
		slog.Int("errored", result.Errored()),
		slog.Int("skipped", result.SkippedCount()),
		slog.Bool("aborted", result.Aborted),
	)

	if result.Aborted {
		return result, ctx.Err()
	}

	return result, result.Err
}

func (p *Processor) requestBuilder() (*lmv1.RequestBuilder, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	return lmv1.NewRequestBuilder(p.cfg.Credentials, p.opts...)
}

func (p *Processor) attempt(
	ctx context.Context,
	log *slog.Logger,
	builder *lmv1.RequestBuilder,
	row int,
	record domain.DeviceRecord,
) domain.CallOutcome {
	start := time.Now()

	outcome := p.call(ctx, builder, row, record)
	outcome.Duration = time.Since(start)

	attrs := []any{
		slog.Int("row", row),
		slog.String("display_name", record.DisplayName),
		slog.String("status", string(outcome.Status)),
		slog.Duration("duration", outcome.Duration),
	}

	switch outcome.Status {
	case domain.OutcomeSuccess:
		log.DebugContext(ctx, "device created", attrs...)
	case domain.OutcomeRejected:
		log.WarnContext(ctx, "device rejected", append(attrs, slog.Int("status_code", outcome.StatusCode))...)
	default:
		log.WarnContext(ctx, "device creation failed", append(attrs, slog.String("err", outcome.Detail()))...)
	}

	return outcome
}

func (p *Processor) call(
	ctx context.Context,
	builder *lmv1.RequestBuilder,
	row int,
	record domain.DeviceRecord,
) domain.CallOutcome {
	body, err := json.Marshal(NewDevicePayload(record, p.cfg.CollectorID, p.cfg.HostGroupIDs))
	if err != nil {
		return domain.TransportError(row, record, fmt.Errorf("failed to marshal payload: %w", err))
	}

	req, err := builder.Build(http.MethodPost, DevicesPath, body)
	if err != nil {
		return domain.TransportError(row, record, err)
	}

	// a call already sent is classified from its response even when the
	// batch is cancelled meanwhile
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.RequestTimeout)
	defer cancel()

	resp, err := p.sender.Send(ctx, req)
	if err != nil {
		return domain.TransportError(row, record, err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.Rejected(row, record, resp.StatusCode, strings.ToValidUTF8(string(resp.Body), ""))
	}

	return domain.Success(row, record, resp.StatusCode)
}
