package service

import (
	"math"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/shopspring/decimal"
)

// DateStyle selects how calendar dates are rendered.
type DateStyle int

const (
	// DateStyleISO renders 2006-01-02, for JSON responses.
	DateStyleISO DateStyle = iota
	// DateStyleHTML renders 02/01/2006, for server-rendered pages.
	DateStyleHTML
)

// FormatRow converts a stored row into JSON and template friendly values.
func FormatRow(row models.Row, style DateStyle) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = FormatValue(v, style)
	}
	return out
}

func FormatValue(v models.Value, style DateStyle) any {
	switch v.Kind {
	case models.KindNull:
		return nil
	case models.KindText:
		return v.Text
	case models.KindInt:
		return v.Int
	case models.KindFloat:
		return finite(v.Float)
	case models.KindBool:
		return v.Bool
	case models.KindDecimal:
		return decimalToFloat(v.Text)
	case models.KindDate:
		if style == DateStyleHTML {
			return v.Time.Format("02/01/2006")
		}
		return v.Time.Format("2006-01-02")
	case models.KindTime:
		return v.Time.Format("15:04")
	case models.KindTimestamp:
		if style == DateStyleHTML {
			return v.Time.Format("02/01/2006 15:04")
		}
		return v.Time.Format(time.RFC3339)
	default:
		return v.Raw
	}
}

// decimalToFloat returns nil when the literal is not a finite number.
func decimalToFloat(lit string) any {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return nil
	}
	f, _ := d.Float64()
	return finite(f)
}

func finite(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
