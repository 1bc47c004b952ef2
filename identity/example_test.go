package identity_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/funkit/identity"
)

func ExampleCompose() {
	trim := identity.Pure(strings.TrimSpace)
	upper := identity.Pure(strings.ToUpper)

	normalize := identity.Compose(upper, trim)
	fmt.Println(identity.Apply(normalize, "  funkit  "))
	// Output:
	// FUNKIT
}

func ExampleMap() {
	labeled := identity.Map(identity.Pure(42), func(n int) string {
		return fmt.Sprintf("answer=%d", n)
	})
	fmt.Println(labeled.Get())
	// Output:
	// answer=42
}
