package util

import (
	"fmt"
	"reflect"
	"time"
)

// IsPlainRecord reports whether v is a plain record: a string-keyed map, or
// a struct (optionally behind one non-nil pointer) with an empty method set.
// A method set is the Go analogue of class identity, so values like
// time.Time or error implementations are rejected even though they are
// structs underneath.
func IsPlainRecord(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Struct:
		// Methods declared on either the value or the pointer receiver
		// give the type an identity beyond its fields.
		return t.NumMethod() == 0 && reflect.PointerTo(t).NumMethod() == 0
	default:
		return false
	}
}

// DescribeKind classifies v for error messages. It names the categories
// callers are documented to distinguish: nil, booleans, the numeric kinds,
// strings, functions, channels, slices and arrays, dates, errors, plain and
// non-plain records, and pointers to any of these.
func DescribeKind(v any) string {
	if v == nil {
		return "nil"
	}
	if _, ok := v.(error); ok {
		return "error"
	}
	if _, ok := v.(time.Time); ok {
		return "date"
	}
	rv := reflect.ValueOf(v)
	t := rv.Type()
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Complex64, reflect.Complex128:
		return "complex"
	case reflect.String:
		return "string"
	case reflect.Func:
		return "function"
	case reflect.Chan:
		return "channel"
	case reflect.Slice:
		return "slice"
	case reflect.Array:
		return "array"
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return fmt.Sprintf("record (%s)", t)
		}
		return fmt.Sprintf("map (%s)", t)
	case reflect.Struct:
		if IsPlainRecord(v) {
			return fmt.Sprintf("record (%s)", t)
		}
		return fmt.Sprintf("non-plain record (%s)", t)
	case reflect.Pointer:
		if rv.IsNil() {
			return fmt.Sprintf("nil pointer (%s)", t)
		}
		return "pointer to " + DescribeKind(rv.Elem().Interface())
	default:
		return t.Kind().String()
	}
}

// SameRef reports whether a and b are the same value in the identity sense
// used for change detection: pointer identity for reference kinds,
// == for comparable values. It never panics on uncomparable inputs.
func SameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	default:
		if !ra.Comparable() {
			return false
		}
		return a == b
	}
}
