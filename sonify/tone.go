// SPDX-License-Identifier: MIT

package sonify

import (
	"math"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"

	"github.com/katalvlaran/sortsteps/step"
)

// Config controls how a step sounds.
type Config struct {
	SampleRate beep.SampleRate
	// Duration is the length of one step's sound.
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	// MinFreq and MaxFreq bound the pitch: the smallest value of a step
	// plays at MinFreq, the largest at MaxFreq.
	MinFreq float64
	MaxFreq float64
	// Volume is the linear gain of the mixed tones, in (0, 1].
	Volume float64
	Wave   Wave
}

// DefaultConfig returns a short, soft sine blip between A3 and A5.
func DefaultConfig() Config {
	return Config{
		SampleRate: beep.SampleRate(44100),
		Duration:   80 * time.Millisecond,
		Attack:     5 * time.Millisecond,
		Release:    30 * time.Millisecond,
		MinFreq:    220,
		MaxFreq:    880,
		Volume:     0.5,
		Wave:       WaveSine,
	}
}

// Validate reports a configuration that cannot produce sound.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return errors.Newf("sonify: sample rate %d", c.SampleRate)
	case c.Duration <= 0:
		return errors.Newf("sonify: duration %s", c.Duration)
	case !(c.MinFreq > 0 && c.MinFreq <= c.MaxFreq):
		return errors.Newf("sonify: frequency range [%g, %g]", c.MinFreq, c.MaxFreq)
	}
	return nil
}

// Tone returns the sound of s: one tone per highlighted index, mixed, each
// pitched by its value within the step's value range. Steps without a
// highlight, or whose highlighted values are all NaN, are silent. The
// stream always lasts exactly cfg.Duration.
func Tone(s step.Step, cfg Config) beep.Streamer {
	length := cfg.SampleRate.N(cfg.Duration)
	freqs := Pitches(s, cfg)
	if len(freqs) == 0 {
		return beep.Silence(length)
	}

	voices := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		osc := NewOscillator(f, cfg.Duration, cfg.Wave, cfg.SampleRate)
		voices[i] = NewEnvelope(osc, cfg.Duration, cfg.Attack, cfg.Release, cfg.SampleRate)
	}
	mixed := newVolume(beep.Mix(voices...), cfg.Volume/float64(len(voices)))
	return beep.Take(length, mixed)
}

// Pitches returns the frequency of every distinct highlighted index of s
// in ascending index order. NaN values are skipped.
func Pitches(s step.Step, cfg Config) []float64 {
	refs := slices.Compact(slices.Sorted(slices.Values(s.Highlight().Refs())))
	if len(refs) == 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < s.Len(); i++ {
		if v := s.At(i); !math.IsNaN(v) && !math.IsInf(v, 0) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}

	out := make([]float64, 0, len(refs))
	for _, i := range refs {
		if i < 0 || i >= s.Len() || math.IsNaN(s.At(i)) {
			continue
		}
		out = append(out, Frequency(s.At(i), lo, hi, cfg))
	}
	return out
}

// Frequency maps v from [lo, hi] linearly onto [cfg.MinFreq, cfg.MaxFreq],
// clamping values outside the range. A degenerate range maps to the middle.
func Frequency(v, lo, hi float64, cfg Config) float64 {
	if !(hi > lo) {
		return (cfg.MinFreq + cfg.MaxFreq) / 2
	}
	t := math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
	return cfg.MinFreq + t*(cfg.MaxFreq-cfg.MinFreq)
}
