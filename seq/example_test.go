package seq_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/funkit/maybe"
	"github.com/charmingruby/funkit/seq"
)

func ExampleIterator_pipeline() {
	values := []int{1, 2, 3, 4}
	it := seq.FromSlice(values)
	it = seq.MapIter(it, func(v int) int { return v * 2 })
	it = seq.Take(it, 3)
	fmt.Println(seq.ToSlice(it))
	// Output:
	// [2 4 6]
}

func ExampleFind() {
	words := []string{"lift", "shift", "drift"}

	first := maybe.FromOk(seq.Find(words, func(s string) bool {
		return strings.HasSuffix(s, "ift")
	}))
	fmt.Println(first.OrElse("none"))
	// Output:
	// lift
}

func ExampleZip() {
	names := []string{"ana", "bia"}
	scores := []int{9, 7}

	for _, p := range seq.Zip(names, scores) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	}
	// Output:
	// ana=9
	// bia=7
}
