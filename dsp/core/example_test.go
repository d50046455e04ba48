package core_test

import (
	"fmt"

	"github.com/cwbudde/erode/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
		core.WithChannels(1),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d channels=%d\n", cfg.SampleRate, cfg.BlockSize, cfg.Channels)

	// Output:
	// sampleRate=44100 blockSize=256 channels=1
}

func ExampleGainToDB() {
	fmt.Printf("%.1f %.1f\n", core.GainToDB(0.1, -120), core.GainToDB(0, -120))

	// Output:
	// -20.0 -120.0
}
