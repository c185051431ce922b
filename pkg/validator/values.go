package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"
)

// AsString returns the value when it is a plain string.
// json.Number is deliberately not a string here.
func AsString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// AsFloat converts any Go numeric kind or json.Number to float64.
// Strings are never numbers, and NaN is rejected.
func AsFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case int:
		f = floatOf(v)
	case int8:
		f = floatOf(v)
	case int16:
		f = floatOf(v)
	case int32:
		f = floatOf(v)
	case int64:
		f = floatOf(v)
	case uint:
		f = floatOf(v)
	case uint8:
		f = floatOf(v)
	case uint16:
		f = floatOf(v)
	case uint32:
		f = floatOf(v)
	case uint64:
		f = floatOf(v)
	case float32:
		f = floatOf(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func floatOf[T Numeric](v T) float64 {
	return float64(v)
}

// Length reports the length of strings (in runes), slices, arrays and maps.
func Length(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// Equal compares two loosely-typed values. Scalars compare by their string
// form so that 1, 1.0 and "1" are considered the same member of a set.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	if isScalar(a) && isScalar(b) {
		return fmt.Sprint(a) == fmt.Sprint(b)
	}
	return false
}

func isScalar(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// ToList converts any slice or array into []any. It reports false for
// every other kind, including nil.
func ToList(value any) ([]any, bool) {
	if list, ok := value.([]any); ok {
		return list, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}

// ToMap normalizes any map with string keys to map[string]any.
func ToMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// Truthy applies loose boolean coercion: nil, false, zero numbers and the
// empty string are falsy, every other value is truthy.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}
	if f, ok := AsFloat(value); ok {
		return f != 0
	}
	return true
}
