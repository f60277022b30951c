package viterbi_test

import (
	"fmt"

	"github.com/katalvlaran/verialg/viterbi"
)

// ExampleDecode runs the textbook Healthy/Fever diagnosis model: given how
// the patient feels on three consecutive days, recover the most likely
// sequence of underlying conditions.
func ExampleDecode() {
	m, _ := viterbi.NewHMM(
		[]string{"Healthy", "Fever"},
		[]string{"normal", "cold", "dizzy"},
		[]float64{0.6, 0.4},
		[][]float64{
			{0.7, 0.3}, // Healthy → {Healthy, Fever}
			{0.4, 0.6}, // Fever   → {Healthy, Fever}
		},
		[][]float64{
			{0.5, 0.4, 0.1}, // Healthy emits {normal, cold, dizzy}
			{0.1, 0.3, 0.6}, // Fever   emits {normal, cold, dizzy}
		},
	)

	res, _ := viterbi.Decode(m, []string{"normal", "cold", "dizzy"})
	fmt.Println(res.Path)
	// Output:
	// [Healthy Healthy Fever]
}
