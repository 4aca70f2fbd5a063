package internal

import "reflect"

// IsTypedNil reports whether v is nil or an interface holding a typed nil
// pointer, map, slice, chan or func. Probes that return an interface value
// often hand back a typed nil, which callers would otherwise mistake for a
// ready result.
func IsTypedNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
