package Go_Collections

import "reflect"

// CanBeNil reports whether values of E can be nil: pointers, interfaces, maps, slices, funcs and channels.
func CanBeNil[E any]() bool {
	switch reflect.TypeFor[E]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// IsNil reports whether v is nil. Always false when CanBeNil[E] is false.
func IsNil[E any](v E) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
