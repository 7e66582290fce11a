package either

import (
	"fmt"

	"github.com/ib-77/data/pkg/data/internal/payload"
)

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Get returns the Right payload and true, or the zero R and false on Left.
func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

// GetLeft returns the Left payload and true, or the zero L and false on Right.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// Flip turns Left(x) into Right(x) and Right(x) into Left(x).
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right %v", e.right)
	}
	return fmt.Sprintf("Left %v", e.left)
}

// Fold applies onLeft or onRight, whichever matches the variant, and returns
// its result. The other function is not called and may be nil.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map applies f to a Right payload. A Left is passed through and f is not called.
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft applies f to a Left payload. A Right is passed through and f is not called.
func MapLeft[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}
	return Left[U, R](f(e.left))
}

// FlatMap applies f to a Right payload and returns its Either as is.
// A Left is passed through and f is not called.
func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, U](e.left)
}

// Join collapses one level of nesting. An outer Left is returned re-wrapped,
// an outer Right yields the inner Either unchanged.
func Join[L, R any](outer Either[L, Either[L, R]]) Either[L, R] {
	if outer.isRight {
		return outer.right
	}
	return Left[L, R](outer.left)
}

// Forget returns the payload of either variant.
func Forget[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Compose chains two Either-returning functions; g runs only when f returns Right.
func Compose[A, B, C, L any](f func(A) Either[L, B], g func(B) Either[L, C]) func(A) Either[L, C] {
	return func(a A) Either[L, C] {
		return FlatMap(f(a), g)
	}
}

// Lift promotes f to a function mapping over the Right side of an Either.
func Lift[L, A, B any](f func(A) B) func(Either[L, A]) Either[L, B] {
	return func(e Either[L, A]) Either[L, B] {
		return Map(e, f)
	}
}

// Applicative applies the function held by fe to the value held by the
// argument when both are Right. A Left function container wins over a Left
// value.
func Applicative[L, A, B any](fe Either[L, func(A) B]) func(Either[L, A]) Either[L, B] {
	return func(e Either[L, A]) Either[L, B] {
		return FlatMap(fe, func(f func(A) B) Either[L, B] {
			return Map(e, f)
		})
	}
}

// Narrow re-wraps e with its payload viewed as L2 or R2, e.g. a concrete
// error type as error. It reports false when the payload is not assignable.
func Narrow[L2, R2, L, R any](e Either[L, R]) (Either[L2, R2], bool) {
	if e.isRight {
		r, ok := payload.Assign[R2](e.right)
		if !ok {
			return Either[L2, R2]{}, false
		}
		return Right[L2](r), true
	}
	l, ok := payload.Assign[L2](e.left)
	if !ok {
		return Either[L2, R2]{}, false
	}
	return Left[L2, R2](l), true
}

// Equal reports whether a and b are the same variant with equal payloads.
// Interface payloads whose dynamic type is not comparable are compared with
// reflect.DeepEqual rather than panicking.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return payload.Equal(a.right, b.right)
	}
	return payload.Equal(a.left, b.left)
}

// EqualFunc compares two Eithers whose payloads are not comparable with ==.
func EqualFunc[L, R any](a, b Either[L, R], eqLeft func(L, L) bool, eqRight func(R, R) bool) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return eqRight(a.right, b.right)
	}
	return eqLeft(a.left, b.left)
}
