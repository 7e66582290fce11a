// Package pair provides Pair[L, R], an immutable product of two
// independently typed values.
//
// WithLeft/WithRight substitute a slot with a new value; MapLeft/MapRight
// transform a slot; Map transforms both, evaluating the left mapper and then
// the right one on the calling goroutine. OfLeft and OfRight bind one half
// ahead of time and return a constructor for the other.
package pair
