package data

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Identity(5))
	assert.Equal(t, "x", Identity("x"))
	assert.Nil(t, Identity[error](nil))
}

func TestCompose_LeftToRight(t *testing.T) {
	t.Parallel()

	var order []string
	f := func(n int) int {
		order = append(order, "f")
		return n + 1
	}
	g := func(n int) string {
		order = append(order, "g")
		return strconv.Itoa(n * 2)
	}

	assert.Equal(t, "8", Compose(f, g)(3))
	assert.Equal(t, []string{"f", "g"}, order)
}

func TestCompose_IdentityIsNeutral(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		f := func(x int) int { return x*3 - 1 }

		if Compose(Identity[int], f)(n) != f(n) {
			t.Fatalf("left identity violated for %d", n)
		}
		if Compose(f, Identity[int])(n) != f(n) {
			t.Fatalf("right identity violated for %d", n)
		}
	})
}

func TestConst(t *testing.T) {
	t.Parallel()

	always := Const[string](42)
	assert.Equal(t, 42, always("a"))
	assert.Equal(t, 42, always(""))
}
