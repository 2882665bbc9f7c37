package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

const TableBatches = "batches"

var batchColumns = []string{
	"id",
	"filename",
	"market",
	"succeeded",
	"rejected",
	"errored",
	"skipped",
	"aborted",
	"error_message",
	"started_at",
	"finished_at",
}

type BatchesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewBatchesRepository(pool *pgxpool.Pool) *BatchesRepository {
	return &BatchesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BatchesRepository) SaveBatch(ctx context.Context, summary *domain.BatchSummary) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableBatches).
		Columns(batchColumns...).
		Values(
			summary.ID,
			summary.Filename,
			summary.Market,
			summary.Succeeded,
			summary.Rejected,
			summary.Errored,
			summary.Skipped,
			summary.Aborted,
			summary.ErrorMessage,
			summary.StartedAt,
			summary.FinishedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// Batches returns a page of batches, most recent first, and the total count.
func (r *BatchesRepository) Batches(ctx context.Context, limit, offset uint64) ([]*domain.BatchSummary, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableBatches).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(batchColumns...).
		From(TableBatches).
		OrderBy("started_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	batches, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.BatchSummary])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return batches, total, nil
}

func (r *BatchesRepository) Batch(ctx context.Context, id string) (*domain.BatchSummary, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(batchColumns...).
		From(TableBatches).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	batch, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.BatchSummary])
	if err != nil {
		return nil, scanRowError(err)
	}

	return batch, nil
}
