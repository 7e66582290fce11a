// Package either provides Either[L, R], an immutable sum holding exactly one
// of a Left or a Right payload. By convention Left carries the failure or
// alternative and Right the primary value; Map, FlatMap and the function
// combinators are right-biased.
//
// Key operations:
//   - Left/Right: construct an Either
//   - Fold: eliminate an Either; argument order is always (onLeft, onRight)
//   - Map/MapLeft/FlatMap: transform one side, never calling the function
//     for the other side
//   - Join/Forget/Flip: reshape nested or symmetric Eithers
//   - Compose/Lift/Applicative: build functions over Either
//
// A payload may be a zero or nil value; Left(nil) is a regular Left. Two
// Eithers of comparable types are == equal when they are the same variant
// with equal payloads, so they can be used as map keys.
package either
