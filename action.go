package godux

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/hupe1980/godux/internal/util"
)

// Reserved action types dispatched by the store itself. User code must not
// handle these or any other type in the "@@godux/" namespace: reducers are
// expected to fall through to their default branch for them.
const (
	// ActionTypeInit bootstraps the state tree when a store is created.
	// Every reducer receives it with nil state and must return its initial
	// state.
	ActionTypeInit = "@@godux/INIT"

	// ActionTypeReplace re-seeds the state tree after ReplaceReducer so a
	// new reducer composition can populate previously absent slices.
	ActionTypeReplace = "@@godux/REPLACE"

	probeUnknownActionPrefix = "@@godux/PROBE_UNKNOWN_ACTION_"
)

// ProbeUnknownAction returns a freshly randomized action type in the
// reserved namespace. CombineReducers feeds it to each reducer to verify the
// reducer returns defined state for types it does not recognize.
func ProbeUnknownAction() string {
	return probeUnknownActionPrefix + uuid.NewString()
}

// Action is the minimal plain action record: just a type tag. Structs that
// need a payload declare their own fields next to Type (or embed Action);
// they stay plain as long as they declare no methods.
type Action struct {
	Type string
}

// TypeOf extracts the type tag from an action: the "type" entry of a
// string-keyed map, or the Type field of a (pointer to) struct. The second
// return is false when the action carries no defined type.
func TypeOf(action any) (any, bool) {
	switch a := action.(type) {
	case Action:
		return a.Type, true
	case map[string]any:
		t, ok := a["type"]
		if !ok || t == nil {
			return nil, false
		}
		return t, true
	}
	rv := reflect.ValueOf(action)
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		key := reflect.ValueOf("type").Convert(rv.Type().Key())
		t := rv.MapIndex(key)
		if !t.IsValid() || (t.Kind() == reflect.Interface && t.IsNil()) {
			return nil, false
		}
		return t.Interface(), true
	case reflect.Struct:
		f := rv.FieldByName("Type")
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		if f.Kind() == reflect.Interface && f.IsNil() {
			return nil, false
		}
		return f.Interface(), true
	default:
		return nil, false
	}
}

// IsPlainAction reports whether the value satisfies the base dispatch
// contract's record shape. Middleware is the extension point for dispatching
// anything else (functions, promises of work, typed commands).
func IsPlainAction(action any) bool {
	return util.IsPlainRecord(action)
}
