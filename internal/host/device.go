package host

import (
	"fmt"

	"github.com/gen2brain/malgo"
	"github.com/rs/zerolog"
)

// DeviceConfig selects the duplex stream format.
type DeviceConfig struct {
	SampleRate   int
	Channels     int
	PeriodFrames int
}

// Device is a running duplex stream feeding an Engine.
type Device struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device
	log    zerolog.Logger
}

// deviceConfig maps cfg onto a malgo duplex configuration with float32
// samples on both sides.
func deviceConfig(cfg DeviceConfig) malgo.DeviceConfig {
	dc := malgo.DefaultDeviceConfig(malgo.Duplex)
	dc.Capture.Format = malgo.FormatF32
	dc.Capture.Channels = uint32(cfg.Channels)
	dc.Playback.Format = malgo.FormatF32
	dc.Playback.Channels = uint32(cfg.Channels)
	dc.SampleRate = uint32(cfg.SampleRate)
	dc.PeriodSizeInFrames = uint32(cfg.PeriodFrames)
	dc.Alsa.NoMMap = 1
	return dc
}

// Open initializes the default duplex device. The stream is not started.
func Open(cfg DeviceConfig, engine *Engine, log zerolog.Logger) (*Device, error) {
	if cfg.Channels != engine.Channels() {
		return nil, fmt.Errorf("host: device has %d channels, engine %d", cfg.Channels, engine.Channels())
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Debug().Str("backend", "malgo").Msg(message)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio context: %w", err)
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig(cfg), malgo.DeviceCallbacks{
		Data: func(output, input []byte, frameCount uint32) {
			engine.Process(output, input, int(frameCount))
		},
	})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("failed to initialize audio device: %w", err)
	}

	return &Device{ctx: ctx, device: device, log: log}, nil
}

// Start begins streaming.
func (d *Device) Start() error {
	if err := d.device.Start(); err != nil {
		return fmt.Errorf("failed to start audio device: %w", err)
	}
	d.log.Info().Msg("audio device started")
	return nil
}

// Close stops the stream and releases the device and context.
func (d *Device) Close() error {
	if d.device.IsStarted() {
		if err := d.device.Stop(); err != nil {
			d.log.Warn().Err(err).Msg("failed to stop audio device")
		}
	}
	d.device.Uninit()

	err := d.ctx.Uninit()
	d.ctx.Free()
	if err != nil {
		return fmt.Errorf("failed to release audio context: %w", err)
	}
	return nil
}
