package listview

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field is a named, typed accessor over records of type T.
type Field[T any] struct {
	Name string
	Kind FieldKind
	Get  func(T) Value
}

// Schema is the set of fields the pipeline may filter and sort T by.
// Field names are the ones clients use in criteria and sort specs.
type Schema[T any] struct {
	fields map[string]Field[T]
	names  []string
}

// NewSchema builds a schema. A later field with a duplicate name replaces the earlier one.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		if _, exists := s.fields[f.Name]; !exists {
			s.names = append(s.names, f.Name)
		}
		s.fields[f.Name] = f
	}
	return s
}

// Field looks up a field by name.
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Has reports whether the schema knows the field.
func (s *Schema[T]) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns field names in declaration order.
func (s *Schema[T]) Names() []string {
	return append([]string(nil), s.names...)
}

// Text is a shorthand for a text field.
func Text[T any](name string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Kind: KindText, Get: func(r T) Value { return TextValue(get(r)) }}
}

// Enum is a shorthand for an enumerated field.
func Enum[T any, E ~string](name string, get func(T) E) Field[T] {
	return Field[T]{Name: name, Kind: KindEnum, Get: func(r T) Value { return EnumValue(string(get(r))) }}
}

// Number is a shorthand for a decimal field.
func Number[T any](name string, get func(T) decimal.Decimal) Field[T] {
	return Field[T]{Name: name, Kind: KindNumber, Get: func(r T) Value { return NumberValue(get(r)) }}
}

// Int is a shorthand for an integer field.
func Int[T any](name string, get func(T) int64) Field[T] {
	return Field[T]{Name: name, Kind: KindNumber, Get: func(r T) Value { return IntValue(get(r)) }}
}

// Date is a shorthand for a timestamp field.
func Date[T any](name string, get func(T) time.Time) Field[T] {
	return Field[T]{Name: name, Kind: KindDate, Get: func(r T) Value { return DateValue(get(r)) }}
}

// OptionalDateField is a shorthand for a timestamp that may be unset.
func OptionalDateField[T any](name string, get func(T) *time.Time) Field[T] {
	return Field[T]{Name: name, Kind: KindDate, Get: func(r T) Value { return OptionalDate(get(r)) }}
}
