package graph6_test

import (
	"fmt"

	"github.com/katalvlaran/overclust/graph6"
)

// ExampleDecode parses the graph6 line for the path 0-1-2-3 and prints
// its shape.
func ExampleDecode() {
	g, err := graph6.Decode("Ch")
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Printf("n=%d m=%d\n", g.N(), g.M())
	fmt.Println(graph6.Encode(g))
	// Output:
	// n=4 m=3
	// Ch
}
