package listview

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// FieldKind is the comparison type of a record field.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindNumber FieldKind = "number"
	KindDate   FieldKind = "date"
	KindEnum   FieldKind = "enum"
)

// Value is a field value read from a record through a Field accessor.
type Value struct {
	Kind FieldKind
	Str  string
	Num  decimal.Decimal
	Time time.Time
	Null bool
}

func TextValue(s string) Value { return Value{Kind: KindText, Str: s} }

func EnumValue(s string) Value { return Value{Kind: KindEnum, Str: s} }

func NumberValue(d decimal.Decimal) Value { return Value{Kind: KindNumber, Num: d} }

func IntValue(i int64) Value { return NumberValue(decimal.NewFromInt(i)) }

func DateValue(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

// OptionalDate returns a null date value for a nil pointer.
func OptionalDate(t *time.Time) Value {
	if t == nil {
		return Value{Kind: KindDate, Null: true}
	}
	return DateValue(*t)
}

// String renders the value the way text search sees it.
func (v Value) String() string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindNumber:
		return v.Num.String()
	case KindDate:
		return v.Time.Format(time.DateOnly)
	default:
		return v.Str
	}
}

// compareValues orders two values of the same kind. Nulls sort before any value.
func compareValues(a, b Value) int {
	switch {
	case a.Null && b.Null:
		return 0
	case a.Null:
		return -1
	case b.Null:
		return 1
	}
	switch a.Kind {
	case KindNumber:
		return a.Num.Cmp(b.Num)
	case KindDate:
		return a.Time.Compare(b.Time)
	default:
		return strings.Compare(fold(a.Str), fold(b.Str))
	}
}

// fold maps s to its case-folded form for case-insensitive matching.
// A Caser is not safe for concurrent use, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
