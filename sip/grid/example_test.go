package grid_test

import (
	"fmt"

	"github.com/cwbudde/algo-sip/sip/grid"
)

func ExampleFrequencies() {
	f, _ := grid.Frequencies(0.01, 100, 5)
	for _, v := range f {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()

	// Output:
	// 0.01 0.10 1.00 10.00 100.00
}
