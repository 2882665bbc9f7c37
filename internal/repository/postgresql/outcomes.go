package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

const TableOutcomes = "outcomes"

var outcomeColumns = []string{
	"batch_id",
	"position",
	"row_number",
	"display_name",
	"ip_address",
	"location",
	"description",
	"department",
	"contact",
	"status",
	"status_code",
	"detail",
}

type OutcomesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewOutcomesRepository(pool *pgxpool.Pool) *OutcomesRepository {
	return &OutcomesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOutcomes copies outcomes of a batch keeping their order in position.
func (r *OutcomesRepository) SaveOutcomes(ctx context.Context, batchID string, outcomes ...*domain.CallOutcome) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableOutcomes}, outcomeColumns,
		pgx.CopyFromSlice(len(outcomes), func(i int) ([]any, error) {
			o := outcomes[i]
			return []any{
				batchID,
				i,
				o.Row,
				o.Record.DisplayName,
				o.Record.IPAddress,
				o.Record.Location,
				o.Record.Description,
				o.Record.Department,
				o.Record.Contact,
				string(o.Status),
				o.StatusCode,
				o.Detail(),
			}, nil
		}))
	if err != nil {
		return executeQueryError(err)
	}

	if copied != int64(len(outcomes)) {
		return copyRowsError(copied, len(outcomes))
	}

	return nil
}

// OutcomesByBatch returns a page of a batch's outcomes in file order.
// An empty status returns outcomes of every status.
func (r *OutcomesRepository) OutcomesByBatch(
	ctx context.Context,
	batchID string,
	status domain.OutcomeStatus,
	limit, offset uint64,
) ([]*domain.OutcomeEntry, int, error) {
	db := extractDB(ctx, r.pool)

	where := sq.Eq{"batch_id": batchID}
	if status != "" {
		where["status"] = string(status)
	}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableOutcomes).
		Where(where).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(outcomeColumns...).
		From(TableOutcomes).
		Where(where).
		OrderBy("position ASC").
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

	entries, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.OutcomeEntry])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return entries, total, nil
}
