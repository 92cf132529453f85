package baumwelch_test

import (
	"fmt"

	"github.com/katalvlaran/hmm/baumwelch"
	"github.com/katalvlaran/hmm/core"
	"github.com/katalvlaran/hmm/viterbi"
)

// ExampleTrain fits a two-state model to repeated observations of [0,1,1]
// and then decodes the training sequence with the learned parameters.
func ExampleTrain() {
	mdl, err := core.NewModel(
		[][]float64{{0.6, 0.4}, {0.3, 0.7}},
		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
		[]float64{0.6, 0.4},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	data := [][]int{{0, 1, 1}, {0, 1, 1}, {0, 1, 1}, {0, 1, 1}, {0, 1, 1}}
	history, err := baumwelch.Train(mdl, data, 20, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_, path, err := viterbi.Decode(mdl, []int{0, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("iterations = %d\ndecoded path = %v\n", len(history), path)
	// Output:
	// iterations = 20
	// decoded path = [0 1 1]
}
