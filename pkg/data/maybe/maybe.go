package maybe

import (
	"fmt"

	"github.com/ib-77/data/pkg/data/internal/payload"
)

// Maybe holds an optional T. The zero value is Nothing.
type Maybe[T any] struct {
	value   T
	present bool
}

func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, present: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Just the pointed-to value, or Nothing for a nil pointer.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// HasValue reports whether m is Just, including Just of a zero value.
func (m Maybe[T]) HasValue() bool {
	return m.present
}

// Get returns the payload and true, or the zero T and false on Nothing.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) OrElse(alternative T) T {
	if m.present {
		return m.value
	}
	return alternative
}

// OrElseGet calls alternative only when m is Nothing.
func (m Maybe[T]) OrElseGet(alternative func() T) T {
	if m.present {
		return m.value
	}
	return alternative()
}

// OrMaybe returns m when it is Just, otherwise alternative as a whole.
func (m Maybe[T]) OrMaybe(alternative Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alternative
}

// OrMaybeGet calls alternative only when m is Nothing.
func (m Maybe[T]) OrMaybeGet(alternative func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alternative()
}

// Filter keeps a Just whose payload satisfies predicate. The predicate is
// not called on Nothing.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.present && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Just %v", m.value)
	}
	return "Nothing"
}

// Fold calls onNothing for Nothing or onJust with the payload for Just, and
// returns its result. The other function is not called and may be nil.
func Fold[T, R any](m Maybe[T], onNothing func() R, onJust func(T) R) R {
	if m.present {
		return onJust(m.value)
	}
	return onNothing()
}

// Map wraps f's result in Just. f is not called on Nothing.
func Map[T, R any](m Maybe[T], f func(T) R) Maybe[R] {
	if m.present {
		return Just(f(m.value))
	}
	return Nothing[R]()
}

// FlatMap returns f's Maybe for a Just. f is not called on Nothing.
func FlatMap[T, R any](m Maybe[T], f func(T) Maybe[R]) Maybe[R] {
	if m.present {
		return f(m.value)
	}
	return Nothing[R]()
}

// Join collapses Just(Just(v)) to Just(v); any other shape yields Nothing.
func Join[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return FlatMap(m, func(inner Maybe[T]) Maybe[T] { return inner })
}

// Compose chains two Maybe-returning functions; g runs only when f returns Just.
func Compose[A, B, C any](f func(A) Maybe[B], g func(B) Maybe[C]) func(A) Maybe[C] {
	return func(a A) Maybe[C] {
		return FlatMap(f(a), g)
	}
}

// Lift promotes f to a function mapping over a Maybe.
func Lift[A, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		return Map(m, f)
	}
}

// Applicative applies the function held by mf to the value held by the
// argument; the result is Nothing when either is Nothing.
func Applicative[A, B any](mf Maybe[func(A) B]) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		return FlatMap(mf, func(f func(A) B) Maybe[B] {
			return Map(m, f)
		})
	}
}

// Narrow re-wraps m with its payload viewed as T, e.g. *os.PathError as
// error. It reports false when the payload is not assignable to T.
func Narrow[T, S any](m Maybe[S]) (Maybe[T], bool) {
	if !m.present {
		return Nothing[T](), true
	}
	v, ok := payload.Assign[T](m.value)
	if !ok {
		return Nothing[T](), false
	}
	return Just(v), true
}

// Equal reports whether a and b are both Nothing or both Just with equal
// payloads. Interface payloads whose dynamic type is not comparable are
// compared with reflect.DeepEqual rather than panicking.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || payload.Equal(a.value, b.value)
}

// EqualFunc compares two Maybes whose payloads are not comparable with ==.
func EqualFunc[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || eq(a.value, b.value)
}
