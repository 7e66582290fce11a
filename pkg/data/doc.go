// Package data is the root of three small immutable containers and the
// function helpers used to compose them.
//
// Subpackages:
//   - either: Either[L, R], a right-biased two-case sum (Left/Right)
//   - maybe: Maybe[T], an optional value (Just/Nothing)
//   - pair: Pair[L, R], a two-slot product
//
// The containers share a vocabulary (Fold, Map, FlatMap, Join, Compose,
// Lift, Applicative) but no code; each subpackage can be used alone.
// Type-changing operations are package functions because Go methods cannot
// declare their own type parameters.
package data
