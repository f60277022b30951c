package bwt_test

import (
	"fmt"

	"github.com/katalvlaran/verialg/bwt"
)

// ExampleTransform shows the classic banana example: the transform groups
// equal characters into runs, which is what makes it useful ahead of
// run-length or move-to-front coders.
func ExampleTransform() {
	last, primary, _ := bwt.Transform("banana", bwt.WithSentinel('$'))
	fmt.Println(last, primary)

	original, _ := bwt.Inverse(last, primary, bwt.WithSentinel('$'))
	fmt.Println(original)
	// Output:
	// annb$aa 4
	// banana
}
