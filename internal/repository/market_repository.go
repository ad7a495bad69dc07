package repository

import (
	"context"
	"sort"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MarketRepository reads market and blog tables as generic rows.
type MarketRepository struct {
	db     DB
	logger *zap.Logger
}

func NewMarketRepository(db DB, logger *zap.Logger) *MarketRepository {
	return &MarketRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MarketRepository) List(ctx context.Context, listing models.Listing, filter ListFilter) ([]models.Row, error) {
	sql, args, err := BuildListQuery(listing, filter)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, listing.Table, sql, args...)
}

// Distinct returns the distinct non-empty values of column, ordered.
func (r *MarketRepository) Distinct(ctx context.Context, table, column string) ([]string, error) {
	sql, args, err := BuildDistinctQuery(table, column)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(err, table)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, classify(err, table)
	}
	return values, nil
}

// FindBySlug returns the row with the given slug, or ErrNotFound.
func (r *MarketRepository) FindBySlug(ctx context.Context, table, slug string) (models.Row, error) {
	sql, args, err := BuildDetailQuery(table, slug)
	if err != nil {
		return nil, err
	}
	return r.queryOne(ctx, table, sql, args...)
}

// FindByID returns the row with the given id, or ErrNotFound.
func (r *MarketRepository) FindByID(ctx context.Context, table string, id int64) (models.Row, error) {
	sql, args, err := BuildDetailByIDQuery(table, id)
	if err != nil {
		return nil, err
	}
	return r.queryOne(ctx, table, sql, args...)
}

// Slugs returns slug rows for the sitemap; dateColumn is included when set.
func (r *MarketRepository) Slugs(ctx context.Context, table, dateColumn string) ([]models.Row, error) {
	sql, args, err := BuildSlugQuery(table, dateColumn)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, table, sql, args...)
}

// Snapshot returns up to maxRows rows of a table ordered by id.
func (r *MarketRepository) Snapshot(ctx context.Context, table string, maxRows uint64) ([]models.Row, error) {
	sql, args, err := BuildSnapshotQuery(table, maxRows)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, table, sql, args...)
}

// InsertRows writes rows into table inside one transaction. Columns are the
// union of the keys of all rows; missing keys are inserted as NULL.
func (r *MarketRepository) InsertRows(ctx context.Context, table string, rows []map[string]any) error {
	if len(rows) == 0 {
		return nil
	}

	columnSet := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			columnSet[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(columnSet))
	for k := range columnSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	builder := squirrel.Insert(table).
		Columns(columns...).
		PlaceholderFormat(squirrel.Dollar)
	for _, row := range rows {
		values := make([]any, len(columns))
		for i, c := range columns {
			values[i] = row[c]
		}
		builder = builder.Values(values...)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return classify(err, table)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.logger.Error("Rollback failed", zap.String("table", table), zap.Error(rbErr))
		}
		return classify(err, table)
	}
	if err := tx.Commit(ctx); err != nil {
		return classify(err, table)
	}

	r.logger.Info("Rows inserted", zap.String("table", table), zap.Int("count", len(rows)))
	return nil
}

func (r *MarketRepository) query(ctx context.Context, table, sql string, args ...any) ([]models.Row, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(err, table)
	}

	result, err := collectRows(rows)
	if err != nil {
		return nil, classify(err, table)
	}
	return result, nil
}

func (r *MarketRepository) queryOne(ctx context.Context, table, sql string, args ...any) (models.Row, error) {
	rows, err := r.query(ctx, table, sql, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}
