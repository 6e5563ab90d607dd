package main

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/internal/mathutil"
)

// fadeStats summarizes a completed fade job.
type fadeStats struct {
	rate          int
	channels      int
	bitDepth      int
	frames        int
	fadeInFrames  int
	fadeOutFrames int
	clipped       int
}

// wavInput holds an open, validated WAV file.
type wavInput struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if format.NumChannels < 1 {
		_ = f.Close()
		return nil, fmt.Errorf("no audio channels in %s", path)
	}
	bitDepth := int(decoder.BitDepth)
	if !supportedBitDepth(bitDepth) {
		_ = f.Close()
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	return &wavInput{
		file:     f,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInput) Close() error {
	return w.file.Close()
}

func supportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return true
	default:
		return false
	}
}

// getMaxValue returns the full-scale sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// framesFor converts a duration to a frame count at rate, capped at total.
func framesFor(d time.Duration, rate, total int) int {
	n := int(d.Seconds()*float64(rate) + 0.5)
	return min(max(n, 0), total)
}

// buildEnvelope returns one gain value per frame. The first inFrames ramp up
// along curve, the last outFrames ramp down along the same curve reversed.
// Overlapping ramps multiply.
func buildEnvelope(curve tween.Tweener, frames, inFrames, outFrames int) []float64 {
	env := make([]float64, frames)
	fadeOutStart := frames - outFrames
	for i := range env {
		gain := 1.0
		if i < inFrames {
			gain *= curve.Tween(mathutil.Unlerp(0, float64(inFrames), float64(i)))
		}
		if i >= fadeOutStart {
			gain *= curve.Tween(mathutil.Unlerp(float64(frames), float64(fadeOutStart), float64(i)))
		}
		env[i] = gain
	}
	return env
}

// deinterleave converts interleaved int samples to normalized per-channel slices.
func deinterleave(data []int, numChannels int, invMaxVal float64) [][]float64 {
	frames := len(data) / numChannels
	out := make([][]float64, numChannels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}

	// Fast path for mono
	if numChannels == monoChannels {
		buf := out[0]
		for i := range frames {
			buf[i] = float64(data[i]) * invMaxVal
		}
		return out
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		buf0, buf1 := out[0], out[1]
		for i := range frames {
			idx := i * stereoChannels
			buf0[i] = float64(data[idx]) * invMaxVal
			buf1[i] = float64(data[idx+1]) * invMaxVal
		}
		return out
	}

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			out[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
	return out
}

// applyEnvelope multiplies every channel by env in place.
func applyEnvelope(channels [][]float64, env []float64, parallel bool) {
	apply := func(buf []float64) {
		for i := range buf {
			buf[i] *= env[i]
		}
	}

	if !parallel || len(channels) <= 1 {
		for _, buf := range channels {
			apply(buf)
		}
		return
	}

	var wg sync.WaitGroup
	for _, buf := range channels {
		wg.Add(1)
		go func(b []float64) {
			defer wg.Done()
			apply(b)
		}(buf)
	}
	wg.Wait()
}

// interleave converts per-channel samples back to ints, clipping to full scale.
// Returns the interleaved data and the number of clipped samples.
func interleave(channels [][]float64, maxVal float64) (data []int, clipped int) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, 0
	}

	numChannels := len(channels)
	frames := len(channels[0])
	data = make([]int, frames*numChannels)

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			sample := channels[ch][i]
			if sample > 1.0 {
				sample = 1.0
				clipped++
			} else if sample < -1.0 {
				sample = -1.0
				clipped++
			}
			data[base+ch] = int(math.Round(sample * maxVal))
		}
	}
	return data, clipped
}

// writeWAV encodes data as integer PCM into path.
func writeWAV(path string, data []int, rate, bitDepth, channels int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close rewrites the header sizes
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// fadeWAV runs the whole job: read, envelope, write.
func fadeWAV(cfg *config, log *logrus.Logger) (*fadeStats, error) {
	input, err := openWAVInput(cfg.inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	log.WithFields(logrus.Fields{
		"rate":      input.rate,
		"channels":  input.channels,
		"bit_depth": input.bitDepth,
	}).Debug("input format")

	pcm, err := input.decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	maxVal := getMaxValue(input.bitDepth)
	channels := deinterleave(pcm.Data, input.channels, 1/maxVal)

	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	stats := &fadeStats{
		rate:          input.rate,
		channels:      input.channels,
		bitDepth:      input.bitDepth,
		frames:        frames,
		fadeInFrames:  framesFor(cfg.fadeIn, input.rate, frames),
		fadeOutFrames: framesFor(cfg.fadeOut, input.rate, frames),
	}
	if stats.fadeInFrames+stats.fadeOutFrames > frames {
		log.WithField("frames", frames).Warn("fade-in and fade-out overlap")
	}

	env := buildEnvelope(cfg.curve, frames, stats.fadeInFrames, stats.fadeOutFrames)
	applyEnvelope(channels, env, cfg.parallel)

	data, clipped := interleave(channels, maxVal)
	stats.clipped = clipped
	if clipped > 0 {
		log.WithField("samples", clipped).Warn("curve overshoot clipped at full scale")
	}

	if err := writeWAV(cfg.outputPath, data, input.rate, input.bitDepth, input.channels); err != nil {
		return nil, err
	}
	return stats, nil
}
