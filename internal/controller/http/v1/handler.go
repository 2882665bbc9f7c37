package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

type BatchesRepository interface {
	Batches(ctx context.Context, limit, offset uint64) ([]*domain.BatchSummary, int, error)
	Batch(ctx context.Context, id string) (*domain.BatchSummary, error)
}

type OutcomesRepository interface {
	OutcomesByBatch(
		ctx context.Context,
		batchID string,
		status domain.OutcomeStatus,
		limit, offset uint64,
	) ([]*domain.OutcomeEntry, int, error)
}

// BatchesHandler serves the onboarding history recorded by the writer.
type BatchesHandler struct {
	log                *slog.Logger
	batchesRepository  BatchesRepository
	outcomesRepository OutcomesRepository
}

func NewBatchesHandler(
	log *slog.Logger,
	batchesRepository BatchesRepository,
	outcomesRepository OutcomesRepository,
) *BatchesHandler {
	return &BatchesHandler{
		log:                log,
		batchesRepository:  batchesRepository,
		outcomesRepository: outcomesRepository,
	}
}

type GetBatchesResponse struct {
	Batches    []*domain.BatchSummary `json:"batches"`
	Pagination Pagination             `json:"pagination"`
}

type GetOutcomesResponse struct {
	Batch      *domain.BatchSummary   `json:"batch"`
	Outcomes   []*domain.OutcomeEntry `json:"outcomes"`
	Pagination Pagination             `json:"pagination"`
}

func (h *BatchesHandler) GetBatches(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	batches, total, err := h.batchesRepository.Batches(r.Context(), limit, (page-1)*limit)
	if err != nil {
		h.internalError(w, r, "failed to get batches", err)
		return
	}

	h.writeJSON(w, r, GetBatchesResponse{
		Batches:    batches,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *BatchesHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.batch(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, batch)
}

// GetOutcomes lists outcomes of a batch in file order, optionally
// filtered by the status query parameter.
func (h *BatchesHandler) GetOutcomes(w http.ResponseWriter, r *http.Request) {
	status := domain.OutcomeStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		http.Error(w, fmt.Sprintf("invalid status %q", status), http.StatusBadRequest)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	batch, ok := h.batch(w, r)
	if !ok {
		return
	}

	outcomes, total, err := h.outcomesRepository.OutcomesByBatch(r.Context(), batch.ID, status, limit, (page-1)*limit)
	if err != nil {
		h.internalError(w, r, "failed to get outcomes", err)
		return
	}

	h.writeJSON(w, r, GetOutcomesResponse{
		Batch:      batch,
		Outcomes:   outcomes,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *BatchesHandler) batch(w http.ResponseWriter, r *http.Request) (*domain.BatchSummary, bool) {
	id := chi.URLParam(r, "batch_id")
	if err := uuid.Validate(id); err != nil {
		http.Error(w, "invalid batch id", http.StatusBadRequest)
		return nil, false
	}

	batch, err := h.batchesRepository.Batch(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "batch not found", http.StatusNotFound)
		return nil, false
	}

	if err != nil {
		h.internalError(w, r, "failed to get batch", err)
		return nil, false
	}

	return batch, true
}

func (h *BatchesHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.internalError(w, r, "failed to marshal response", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		h.log.DebugContext(r.Context(), "failed to write response", slog.String("err", err.Error()))
	}
}

func (h *BatchesHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg, slog.String("path", r.URL.Path), slog.String("err", err.Error()))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
