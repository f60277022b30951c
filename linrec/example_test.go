package linrec_test

import (
	"fmt"

	"github.com/katalvlaran/verialg/linrec"
)

// ExampleMinimalPolynomial recovers the Fibonacci recurrence from eight
// terms over GF(101) and extends it past the observed prefix.
func ExampleMinimalPolynomial() {
	seq := []uint64{1, 1, 2, 3, 5, 8, 13, 21}

	rec, err := linrec.MinimalPolynomial(seq, 101)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("order:", rec.Order())
	fmt.Println("coeffs:", rec.Coeffs)

	ext, _ := rec.Extend([]uint64{1, 1}, 12)
	fmt.Println("extended:", ext)

	// Output:
	// order: 2
	// coeffs: [1 1]
	// extended: [1 1 2 3 5 8 13 21 34 55 89 43]
}
