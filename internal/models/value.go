package models

import (
	"time"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindText
	KindInt
	KindFloat
	KindDecimal
	KindBool
	KindDate
	KindTime
	KindTimestamp
	KindOther
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindTimestamp:
		return "timestamp"
	default:
		return "other"
	}
}

// Value is a column value as stored, decided once when a row leaves the
// database driver.
type Value struct {
	Kind  ValueKind
	Text  string // KindText; decimal literal for KindDecimal
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time // KindDate, KindTimestamp; clock on 0000-01-01 for KindTime
	Raw   any       // KindOther
}

// Row maps column names to stored values.
type Row map[string]Value

func NullValue() Value                 { return Value{Kind: KindNull} }
func TextValue(s string) Value         { return Value{Kind: KindText, Text: s} }
func IntValue(i int64) Value           { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value       { return Value{Kind: KindFloat, Float: f} }
func DecimalValue(lit string) Value    { return Value{Kind: KindDecimal, Text: lit} }
func BoolValue(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func DateValue(t time.Time) Value      { return Value{Kind: KindDate, Time: t} }
func TimestampValue(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }

// ClockValue builds a time-of-day value.
func ClockValue(hour, minute, second int) Value {
	return Value{Kind: KindTime, Time: time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)}
}

// ValueOf classifies a plain Go value. Driver specific types are handled by
// the repository before falling back here.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return x
	case string:
		return TextValue(x)
	case []byte:
		return TextValue(string(x))
	case bool:
		return BoolValue(x)
	case int:
		return IntValue(int64(x))
	case int16:
		return IntValue(int64(x))
	case int32:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 && x.Location() == time.UTC {
			return DateValue(x)
		}
		return TimestampValue(x)
	default:
		return Value{Kind: KindOther, Raw: v}
	}
}

// RowFromMap classifies every value of m.
func RowFromMap(m map[string]any) Row {
	row := make(Row, len(m))
	for k, v := range m {
		row[k] = ValueOf(v)
	}
	return row
}

// Text returns the text of a column, empty for non-text values.
func (r Row) Text(column string) string {
	v, ok := r[column]
	if !ok || v.Kind != KindText {
		return ""
	}
	return v.Text
}

// ID returns the integer identifier of the row, if any.
func (r Row) ID() (int64, bool) {
	v, ok := r["id"]
	if !ok || v.Kind != KindInt {
		return 0, false
	}
	return v.Int, true
}
