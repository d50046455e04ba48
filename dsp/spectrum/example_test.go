package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/erode/dsp/spectrum"
)

func ExampleAnalyzer_AnalyzeFrame() {
	const sr, n = 48000.0, 1024

	frame := make([]float64, n)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 3000 * float64(i) / sr)
	}

	a, err := spectrum.NewAnalyzer(n)
	if err != nil {
		fmt.Println(err)
		return
	}

	mags := make([]float64, a.Bins())
	if err := a.AnalyzeFrame(mags, frame); err != nil {
		fmt.Println(err)
		return
	}

	peak := spectrum.PeakBin(mags, sr, n)
	fmt.Printf("peak at %.0f Hz\n", spectrum.BinFrequency(peak, sr, n))
	// Output:
	// peak at 3000 Hz
}

func ExampleFrequencyToX() {
	for _, hz := range []float64{20, 200, 2000, 20000} {
		fmt.Printf("%5.0f Hz -> %.3f\n", hz, spectrum.FrequencyToX(hz))
	}
	// Output:
	//    20 Hz -> 0.000
	//   200 Hz -> 0.333
	//  2000 Hz -> 0.667
	// 20000 Hz -> 1.000
}
