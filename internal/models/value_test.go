package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		kind ValueKind
	}{
		{"nil", nil, KindNull},
		{"string", "Feira da Liberdade", KindText},
		{"bytes", []byte("abc"), KindText},
		{"int32", int32(7), KindInt},
		{"int64", int64(7), KindInt},
		{"float64", 1.5, KindFloat},
		{"bool", true, KindBool},
		{"midnight utc is a date", date, KindDate},
		{"time with clock is a timestamp", stamp, KindTimestamp},
		{"unknown", struct{}{}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, ValueOf(tt.in).Kind)
		})
	}
}

func TestValueOfKeepsValue(t *testing.T) {
	v := DecimalValue("12.50")
	assert.Equal(t, v, ValueOf(v))
}

func TestClockValue(t *testing.T) {
	v := ClockValue(7, 30, 15)
	assert.Equal(t, KindTime, v.Kind)
	assert.Equal(t, "07:30:15", v.Time.Format("15:04:05"))
}

func TestRowAccessors(t *testing.T) {
	row := RowFromMap(map[string]any{
		"id":     int64(42),
		"slug":   "feira-da-lapa",
		"bairro": nil,
	})

	id, ok := row.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "feira-da-lapa", row.Text("slug"))
	assert.Equal(t, "", row.Text("bairro"))
	assert.Equal(t, "", row.Text("missing"))

	_, ok = Row{"id": TextValue("42")}.ID()
	assert.False(t, ok)
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "decimal", KindDecimal.String())
	assert.Equal(t, "other", ValueKind(99).String())
}
