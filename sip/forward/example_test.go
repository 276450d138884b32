package forward_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sip/sip/forward"
)

func ExampleNewDebyeComplex() {
	op, err := forward.NewDebyeComplex([]float64{1}, []float64{1 / (2 * math.Pi)})
	if err != nil {
		fmt.Println(err)
		return
	}

	j := op.Jacobian()
	fmt.Printf("amplitude block %.2f, phase block %.2f\n", j.At(0, 0), j.At(1, 0))

	d, _ := op.Response([]float64{0.2})
	fmt.Printf("data %.2f %.2f\n", d[0], d[1])

	// Output:
	// amplitude block 0.50, phase block 0.50
	// data 0.10 0.10
}

func ExampleColeColePhi_Response() {
	op, _ := forward.NewColeColePhi([]float64{0.1, 1, 10, 100})
	phi, _ := op.Response([]float64{0.5, 0.1, 1})
	for _, v := range phi {
		fmt.Printf("%.1f mrad\n", v*1000)
	}

	// Output:
	// 31.3 mrad
	// 256.6 mrad
	// 150.3 mrad
	// 15.9 mrad
}

func ExampleWithModelling() {
	base := &forward.Base{}
	_, _ = forward.NewDoubleColeColePhi([]float64{1, 10}, forward.WithModelling(base))
	fmt.Println(base.Mesh().ParameterCount())

	// Output:
	// 6
}
