// Package payload holds the value helpers shared by the container packages.
package payload

import "reflect"

// Assign views v as a T. It reports false when v is not assignable to T;
// a nil interface value fits only an interface T.
func Assign[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	return zero, v == nil && any(zero) == nil
}

// Equal compares a and b with ==. Interface types satisfy comparable but
// panic at runtime when their dynamic type is not comparable (slices, maps,
// funcs); those values are compared with reflect.DeepEqual instead.
func Equal[T comparable](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}
