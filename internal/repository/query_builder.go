package repository

import (
	"strings"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/Masterminds/squirrel"
)

// ListFilter carries the optional request filters of a listing.
type ListFilter struct {
	Tipo   string
	Bairro string
	Limit  uint64 // 0 selects the listing default
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildListQuery builds the SELECT behind a listing endpoint. Table, column
// and ordering names come from the static catalog; request values are
// always bound.
func BuildListQuery(l models.Listing, f ListFilter) (string, []any, error) {
	columns := l.Columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	query := squirrel.Select(columns...).
		From(l.Table).
		PlaceholderFormat(squirrel.Dollar)

	tipo := strings.TrimSpace(f.Tipo)
	if tipo == "" {
		tipo = l.Category
	}
	if tipo != "" {
		query = query.Where(squirrel.ILike{"tipo": "%" + likeEscaper.Replace(tipo) + "%"})
	}
	if bairro := strings.TrimSpace(f.Bairro); bairro != "" {
		query = query.Where(squirrel.Eq{"bairro": bairro})
	}
	if len(l.OrderBy) > 0 {
		query = query.OrderBy(l.OrderBy...)
	}

	return query.Suffix("LIMIT ?", effectiveLimit(l, f.Limit)).ToSql()
}

func effectiveLimit(l models.Listing, requested uint64) uint64 {
	limit := requested
	if limit == 0 {
		limit = l.DefaultLimit
	}
	if l.MaxLimit > 0 && limit > l.MaxLimit {
		limit = l.MaxLimit
	}
	return limit
}

// BuildDistinctQuery selects the distinct non-empty values of one column.
func BuildDistinctQuery(table, column string) (string, []any, error) {
	return squirrel.Select(column).
		Distinct().
		From(table).
		Where(squirrel.NotEq{column: nil}).
		Where(squirrel.NotEq{column: ""}).
		OrderBy(column).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BuildDetailQuery selects the row of a table with the given slug.
func BuildDetailQuery(table, slug string) (string, []any, error) {
	return squirrel.Select("*").
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BuildDetailByIDQuery selects the row of a table with the given id.
func BuildDetailByIDQuery(table string, id int64) (string, []any, error) {
	return squirrel.Select("*").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BuildSlugQuery selects the non-empty slugs of a table, with dateColumn
// alongside when given.
func BuildSlugQuery(table, dateColumn string) (string, []any, error) {
	columns := []string{"slug"}
	if dateColumn != "" {
		columns = append(columns, dateColumn)
	}
	return squirrel.Select(columns...).
		From(table).
		Where(squirrel.NotEq{"slug": nil}).
		Where(squirrel.NotEq{"slug": ""}).
		OrderBy("slug").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BuildSnapshotQuery selects up to maxRows rows of a table by id.
func BuildSnapshotQuery(table string, maxRows uint64) (string, []any, error) {
	return squirrel.Select("*").
		From(table).
		OrderBy("id").
		Suffix("LIMIT ?", maxRows).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
