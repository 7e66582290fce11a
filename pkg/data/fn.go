package data

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Compose is left to right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and always returns v.
func Const[B, A any](v A) func(B) A {
	return func(_ B) A {
		return v
	}
}
