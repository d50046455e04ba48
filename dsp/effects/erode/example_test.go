package erode_test

import (
	"fmt"

	"github.com/cwbudde/erode/dsp/effects/erode"
)

func ExampleProcessor_ProcessBlock() {
	params := erode.NewParameters()
	params.Apply(erode.Params{Freq: 1000, Width: 0, Amount: 0, Mix: 1, Cut: erode.MinCut})

	p, err := erode.New(erode.WithParamSource(params))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := p.Prepare(48000, 4800, 1); err != nil {
		fmt.Println(err)
		return
	}

	block := make([]float64, 4800)
	block[0] = 1
	p.ProcessBlock([][]float64{block})

	for i, v := range block {
		if v != 0 {
			fmt.Printf("impulse at sample %d (delay %d)\n", i, p.DelaySamples())
		}
	}
	// Output:
	// impulse at sample 2400 (delay 2400)
}

func ExampleShapeQ() {
	for _, w := range []float64{0, 0.5, 1} {
		fmt.Printf("width %.1f -> Q %.2f\n", w, erode.ShapeQ(w))
	}
	// Output:
	// width 0.0 -> Q 30.00
	// width 0.5 -> Q 3.87
	// width 1.0 -> Q 0.50
}
