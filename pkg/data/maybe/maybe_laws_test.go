package maybe

import (
	"testing"

	"pgregory.net/rapid"
)

func genMaybe(t *rapid.T) Maybe[int] {
	if rapid.Bool().Draw(t, "hasValue") {
		return Just(rapid.Int().Draw(t, "value"))
	}
	return Nothing[int]()
}

func TestFoldTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		fallback := rapid.Int().Draw(t, "fallback")
		onJust := func(n int) int { return n + 7 }
		onNothing := func() int { return fallback }

		if got := Fold(Just(x), onNothing, onJust); got != onJust(x) {
			t.Fatalf("Just(%d) folded to %d, want %d", x, got, onJust(x))
		}
		if got := Fold(Nothing[int](), onNothing, onJust); got != fallback {
			t.Fatalf("Nothing folded to %d, want %d", got, fallback)
		}
	})
}

func TestFunctorIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMaybe(t)
		if mapped := Map(m, func(n int) int { return n }); mapped != m {
			t.Fatalf("identity law violated: %v != %v", mapped, m)
		}
	})
}

func TestFunctorComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMaybe(t)
		multiplier := rapid.IntRange(1, 10).Draw(t, "multiplier")
		f := func(n int) int { return n * multiplier }
		g := func(n int) bool { return n%2 == 0 }

		chained := Map(Map(m, f), g)
		composed := Map(m, func(n int) bool { return g(f(n)) })
		if chained != composed {
			t.Fatalf("composition law violated: %v != %v", chained, composed)
		}
	})
}

func TestMonadLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		m := genMaybe(t)
		f := func(n int) Maybe[int] {
			if n%3 == 0 {
				return Nothing[int]()
			}
			return Just(n - 1)
		}

		if got := FlatMap(Just(x), f); got != f(x) {
			t.Fatalf("left identity violated: %v != %v", got, f(x))
		}
		if got := FlatMap(m, Just[int]); got != m {
			t.Fatalf("right identity violated: %v != %v", got, m)
		}
	})
}

func TestFilterNeverAddsValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMaybe(t)
		threshold := rapid.Int().Draw(t, "threshold")

		filtered := m.Filter(func(n int) bool { return n > threshold })
		if filtered.HasValue() && filtered != m {
			t.Fatalf("filter changed the payload: %v -> %v", m, filtered)
		}
		if !m.HasValue() && filtered.HasValue() {
			t.Fatalf("filter produced a value from Nothing")
		}
	})
}
