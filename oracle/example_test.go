package oracle_test

import (
	"fmt"

	"github.com/katalvlaran/verialg/oracle"
)

// ExampleVerify runs the built-in suites with a small trial count and a
// fixed seed, so the outcome is reproducible.
func ExampleVerify() {
	report := oracle.Verify(oracle.Suites(), oracle.WithTrials(4), oracle.WithSeed(1))

	fmt.Println("failed:", report.Failed())
	fmt.Println("properties:", len(report.Results))

	// Output:
	// failed: false
	// properties: 7
}
