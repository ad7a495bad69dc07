package service

import (
	"math"
	"testing"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value models.Value
		style DateStyle
		want  any
	}{
		{"null", models.NullValue(), DateStyleISO, nil},
		{"text", models.TextValue("Feira"), DateStyleISO, "Feira"},
		{"int", models.IntValue(3), DateStyleISO, int64(3)},
		{"bool", models.BoolValue(true), DateStyleISO, true},
		{"decimal", models.DecimalValue("-23.5505"), DateStyleISO, -23.5505},
		{"decimal with exponent", models.DecimalValue("-235505e-4"), DateStyleISO, -23.5505},
		{"decimal nan", models.DecimalValue("NaN"), DateStyleISO, nil},
		{"decimal infinity", models.DecimalValue("Infinity"), DateStyleISO, nil},
		{"float nan", models.FloatValue(math.NaN()), DateStyleISO, nil},
		{"float inf", models.FloatValue(math.Inf(1)), DateStyleISO, nil},
		{"date iso", models.DateValue(date), DateStyleISO, "2024-03-09"},
		{"date html", models.DateValue(date), DateStyleHTML, "09/03/2024"},
		{"clock", models.ClockValue(7, 30, 0), DateStyleHTML, "07:30"},
		{"timestamp iso", models.TimestampValue(stamp), DateStyleISO, "2024-03-09T14:05:00Z"},
		{"timestamp html", models.TimestampValue(stamp), DateStyleHTML, "09/03/2024 14:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, tt.style))
		})
	}
}

func TestFormatRowIdempotent(t *testing.T) {
	row := models.RowFromMap(map[string]any{
		"id":        int64(1),
		"nome":      "Feira da Lapa",
		"latitude":  -23.52,
		"descricao": nil,
	})

	once := FormatRow(row, DateStyleISO)
	twice := FormatRow(models.RowFromMap(once), DateStyleISO)
	assert.Equal(t, once, twice)
}
