package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueOfByColumnType(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, models.KindNull, valueOf(pgtype.TextOID, nil).Kind)
	assert.Equal(t, models.KindDate, valueOf(pgtype.DateOID, day).Kind)
	// A timestamp at midnight stays a timestamp when the column says so.
	assert.Equal(t, models.KindTimestamp, valueOf(pgtype.TimestampOID, day).Kind)
	assert.Equal(t, models.KindInt, valueOf(pgtype.Int8OID, int64(3)).Kind)
}

func TestValueOfNumeric(t *testing.T) {
	v := valueOf(pgtype.NumericOID, pgtype.Numeric{Int: big.NewInt(-2354), Exp: -2, Valid: true})
	assert.Equal(t, models.KindDecimal, v.Kind)
	assert.True(t, decimal.RequireFromString("-23.54").Equal(decimal.RequireFromString(v.Text)), v.Text)

	nan := valueOf(pgtype.NumericOID, pgtype.Numeric{NaN: true, Valid: true})
	assert.Equal(t, models.KindDecimal, nan.Kind)
	assert.Equal(t, "NaN", nan.Text)

	assert.Equal(t, models.KindNull, valueOf(pgtype.NumericOID, pgtype.Numeric{}).Kind)
}

func TestValueOfTime(t *testing.T) {
	micros := (7*time.Hour + 45*time.Minute).Microseconds()
	v := valueOf(pgtype.TimeOID, pgtype.Time{Microseconds: micros, Valid: true})
	assert.Equal(t, models.KindTime, v.Kind)
	assert.Equal(t, "07:45", v.Time.Format("15:04"))
}

func TestValueOfUUID(t *testing.T) {
	raw := [16]byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}
	v := valueOf(pgtype.UUIDOID, raw)
	assert.Equal(t, models.KindText, v.Kind)
	assert.Equal(t, "12345678-9abc-def0-1234-56789abcdef0", v.Text)
}
