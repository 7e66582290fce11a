// Package maybe provides Maybe[T], an immutable optional value that is
// either Just a payload or Nothing.
//
// Key operations:
//   - Just/Nothing/FromPtr: construct a Maybe
//   - Fold: eliminate a Maybe; argument order is always (onNothing, onJust)
//   - OrElse/OrElseGet, OrMaybe/OrMaybeGet: fall back eagerly or lazily
//   - Filter/Map/FlatMap/Join: transform without unpacking
//   - Compose/Lift/Applicative: build functions over Maybe
//
// The zero value is Nothing, so Nothing needs no allocation and is the same
// marker for every T. Just of a zero or nil payload is a present value and
// never equals Nothing.
package maybe
