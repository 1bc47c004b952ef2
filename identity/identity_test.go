package identity_test

import (
	"testing"
	"testing/quick"

	"github.com/charmingruby/funkit/fun"
	"github.com/charmingruby/funkit/identity"
	"github.com/stretchr/testify/require"
)

func TestPureGet(t *testing.T) {
	require.Equal(t, 42, identity.Pure(42).Get())
	require.Equal(t, "go", identity.Pure("go").Get())

	var zero identity.Identity[int]
	require.Zero(t, zero.Get())
}

func TestMap(t *testing.T) {
	doubled := identity.Map(identity.Pure(21), func(n int) int { return n * 2 })
	require.Equal(t, 42, doubled.Get())

	sized := identity.Map(identity.Pure("funkit"), func(s string) int { return len(s) })
	require.Equal(t, 6, sized.Get())
}

func TestFlatMap(t *testing.T) {
	out := identity.FlatMap(identity.Pure(3), func(n int) identity.Identity[string] {
		return identity.Pure(string(rune('a' + n)))
	})
	require.Equal(t, "d", out.Get())
}

func TestComposeRunsRightToLeft(t *testing.T) {
	double := identity.Pure(func(n int) int { return n * 2 })
	inc := identity.Pure(func(n int) int { return n + 1 })

	require.Equal(t, 12, identity.Apply(identity.Compose(double, inc), 5))
	require.Equal(t, 11, identity.Apply(identity.Compose(inc, double), 5))
}

func TestComposeMatchesFunComposition(t *testing.T) {
	agree := func(a, b, x int) bool {
		f := func(n int) int { return n*a + 1 }
		g := func(n int) int { return n*b + 2 }

		viaIdentity := identity.Apply(
			identity.Compose(identity.Pure(f), identity.Pure(g)), x,
		)
		viaFun := fun.Compose(fun.From(f), fun.From(g)).Apply(x)

		return viaIdentity == viaFun
	}
	if err := quick.Check(agree, nil); err != nil {
		t.Fatalf("identity and fun composition disagree: %v", err)
	}
}

func TestFunctorLaws(t *testing.T) {
	idLaw := func(x int) bool {
		i := identity.Pure(x)
		return identity.Map(i, func(n int) int { return n }).Get() == i.Get()
	}
	if err := quick.Check(idLaw, nil); err != nil {
		t.Fatalf("identity law failed: %v", err)
	}

	compLaw := func(x int) bool {
		f := func(n int) int { return n + 1 }
		g := func(n int) int { return n * 2 }
		i := identity.Pure(x)
		left := identity.Map(identity.Map(i, f), g)
		right := identity.Map(i, func(n int) int { return g(f(n)) })
		return left.Get() == right.Get()
	}
	if err := quick.Check(compLaw, nil); err != nil {
		t.Fatalf("composition law failed: %v", err)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "Identity(7)", identity.Pure(7).String())
	require.Equal(t, "Identity(go)", identity.Pure("go").String())
}
