package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

const TableFiles = "files"

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Files returns every tracked attachment, keyed by "<market>/<filename>".
func (r *FilesRepository) Files(ctx context.Context) ([]*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"name",
			"market",
			"status",
			"error_message",
			"processed_at",
		).
		From(TableFiles).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.File) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns(
			"name",
			"market",
			"status",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.Market,
			file.Status,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			market = EXCLUDED.market,
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingFiles returns files left in processing by an interrupted
// run to pending so the scanner picks them up again.
func (r *FilesRepository) ResetProcessingFiles(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableFiles).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
