package repository

import (
	"fmt"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// collectRows drains rows into models.Row values, tagging every column
// once by its declared type and decoded Go value.
func collectRows(rows pgx.Rows) ([]models.Row, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Row, error) {
		values, err := row.Values()
		if err != nil {
			return nil, err
		}

		fields := row.FieldDescriptions()
		if len(fields) != len(values) {
			return nil, fmt.Errorf("row has %d values for %d columns", len(values), len(fields))
		}

		out := make(models.Row, len(values))
		for i, fd := range fields {
			out[fd.Name] = valueOf(fd.DataTypeOID, values[i])
		}
		return out, nil
	})
}

func valueOf(oid uint32, raw any) models.Value {
	if raw == nil {
		return models.NullValue()
	}

	switch x := raw.(type) {
	case pgtype.Numeric:
		if !x.Valid {
			return models.NullValue()
		}
		lit, err := x.Value()
		if err != nil || lit == nil {
			return models.DecimalValue("NaN")
		}
		return models.DecimalValue(fmt.Sprint(lit))
	case pgtype.Time:
		if !x.Valid {
			return models.NullValue()
		}
		d := time.Duration(x.Microseconds) * time.Microsecond
		h := int(d / time.Hour)
		m := int(d % time.Hour / time.Minute)
		s := int(d % time.Minute / time.Second)
		return models.ClockValue(h, m, s)
	case [16]byte:
		return models.TextValue(uuid.UUID(x).String())
	case time.Time:
		switch oid {
		case pgtype.DateOID:
			return models.DateValue(x)
		case pgtype.TimestampOID, pgtype.TimestamptzOID:
			return models.TimestampValue(x)
		}
	}

	return models.ValueOf(raw)
}
