package pair

import (
	"fmt"

	"github.com/ib-77/data/pkg/data/internal/payload"
)

type Pair[L, R any] struct {
	left  L
	right R
}

// Of builds a pair from both values.
func Of[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{left: left, right: right}
}

// OfLeft binds the left value and returns a constructor taking the right one.
func OfLeft[L, R any](left L) func(R) Pair[L, R] {
	return func(right R) Pair[L, R] {
		return Of(left, right)
	}
}

// OfRight binds the right value and returns a constructor taking the left one.
func OfRight[L, R any](right R) func(L) Pair[L, R] {
	return func(left L) Pair[L, R] {
		return Of(left, right)
	}
}

func (p Pair[L, R]) Left() L {
	return p.left
}

func (p Pair[L, R]) Right() R {
	return p.right
}

// Unpack returns both values.
func (p Pair[L, R]) Unpack() (L, R) {
	return p.left, p.right
}

// Flip swaps the two values and their types.
func (p Pair[L, R]) Flip() Pair[R, L] {
	return Of(p.right, p.left)
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v,%v)", p.left, p.right)
}

// WithLeft replaces the left value, possibly with one of another type.
func WithLeft[L, R, T any](p Pair[L, R], left T) Pair[T, R] {
	return Of(left, p.right)
}

func WithRight[L, R, T any](p Pair[L, R], right T) Pair[L, T] {
	return Of(p.left, right)
}

// MapLeft transforms the left value with f; the right value is kept.
func MapLeft[L, R, T any](p Pair[L, R], f func(L) T) Pair[T, R] {
	return Of(f(p.left), p.right)
}

func MapRight[L, R, T any](p Pair[L, R], f func(R) T) Pair[L, T] {
	return Of(p.left, f(p.right))
}

// Map applies leftFn then rightFn. If leftFn panics, rightFn is not called
// and no pair is built.
func Map[L, R, LT, RT any](p Pair[L, R], leftFn func(L) LT, rightFn func(R) RT) Pair[LT, RT] {
	left := leftFn(p.left)
	right := rightFn(p.right)
	return Of(left, right)
}

// Narrow re-wraps p with its values viewed as L2 and R2. It reports false
// when either value is not assignable.
func Narrow[L2, R2, L, R any](p Pair[L, R]) (Pair[L2, R2], bool) {
	left, ok := payload.Assign[L2](p.left)
	if !ok {
		return Pair[L2, R2]{}, false
	}
	right, ok := payload.Assign[R2](p.right)
	if !ok {
		return Pair[L2, R2]{}, false
	}
	return Of(left, right), true
}

// Equal reports whether both slots are equal. Interface values whose dynamic
// type is not comparable are compared with reflect.DeepEqual rather than
// panicking.
func Equal[L, R comparable](a, b Pair[L, R]) bool {
	return payload.Equal(a.left, b.left) && payload.Equal(a.right, b.right)
}

func EqualFunc[L, R any](a, b Pair[L, R], eqLeft func(L, L) bool, eqRight func(R, R) bool) bool {
	return eqLeft(a.left, b.left) && eqRight(a.right, b.right)
}
