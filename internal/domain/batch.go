package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchResult holds the outcomes of one ingested file in file order.
// Skipped rows never reach the platform and are kept apart from Outcomes.
type BatchResult struct {
	ID         uuid.UUID
	Filename   string
	Market     string
	Outcomes   []*CallOutcome
	Skipped    []*RowParseError
	Aborted    bool
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

func NewBatchResult(filename, market string) *BatchResult {
	return &BatchResult{
		ID:        uuid.New(),
		Filename:  filename,
		Market:    market,
		StartedAt: time.Now(),
	}
}

func (b *BatchResult) Succeeded() int { return b.count(OutcomeSuccess) }

func (b *BatchResult) Rejected() int { return b.count(OutcomeRejected) }

func (b *BatchResult) Errored() int { return b.count(OutcomeTransportError) }

func (b *BatchResult) SkippedCount() int { return len(b.Skipped) }

func (b *BatchResult) Successes() []*CallOutcome {
	return b.filter(func(o *CallOutcome) bool { return o.Status == OutcomeSuccess })
}

func (b *BatchResult) Failures() []*CallOutcome {
	return b.filter(func(o *CallOutcome) bool { return o.Status != OutcomeSuccess })
}

func (b *BatchResult) Summary() *BatchSummary {
	summary := &BatchSummary{
		ID:         b.ID.String(),
		Filename:   b.Filename,
		Market:     b.Market,
		Succeeded:  b.Succeeded(),
		Rejected:   b.Rejected(),
		Errored:    b.Errored(),
		Skipped:    b.SkippedCount(),
		Aborted:    b.Aborted,
		StartedAt:  b.StartedAt,
		FinishedAt: b.FinishedAt,
	}

	if b.Err != nil {
		summary.ErrorMessage = b.Err.Error()
	}

	return summary
}

func (b *BatchResult) count(status OutcomeStatus) int {
	var n int
	for _, o := range b.Outcomes {
		if o.Status == status {
			n++
		}
	}

	return n
}

func (b *BatchResult) filter(keep func(*CallOutcome) bool) []*CallOutcome {
	var out []*CallOutcome
	for _, o := range b.Outcomes {
		if keep(o) {
			out = append(out, o)
		}
	}

	return out
}

type BatchSummary struct {
	ID           string    `db:"id"            json:"id"`
	Filename     string    `db:"filename"      json:"filename"`
	Market       string    `db:"market"        json:"market"`
	Succeeded    int       `db:"succeeded"     json:"succeeded"`
	Rejected     int       `db:"rejected"      json:"rejected"`
	Errored      int       `db:"errored"       json:"errored"`
	Skipped      int       `db:"skipped"       json:"skipped"`
	Aborted      bool      `db:"aborted"       json:"aborted"`
	ErrorMessage string    `db:"error_message" json:"error_message,omitempty"`
	StartedAt    time.Time `db:"started_at"    json:"started_at"`
	FinishedAt   time.Time `db:"finished_at"   json:"finished_at"`
}
