package repository

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// SchemaError reports a table or column the query referenced that does not
// exist in the database.
type SchemaError struct {
	Object string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema object %q does not exist", e.Object)
}

func (e *SchemaError) Unwrap() error { return e.Err }

var quotedName = regexp.MustCompile(`"([^"]+)"`)

// classify turns driver errors into the repository's error vocabulary.
func classify(err error, table string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable, pgUndefinedColumn:
			object := pgErr.TableName
			if pgErr.ColumnName != "" {
				object = pgErr.ColumnName
			}
			if m := quotedName.FindStringSubmatch(pgErr.Message); object == "" && m != nil {
				object = m[1]
			}
			if object == "" {
				object = table
			}
			return &SchemaError{Object: object, Err: err}
		}
	}

	return fmt.Errorf("query %s: %w", table, err)
}
