// SPDX-License-Identifier: MIT

package sonify

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/sortsteps/step"
)

// bufferDuration is the speaker buffer: lower means less latency and more
// risk of underruns.
const bufferDuration = 50 * time.Millisecond

// Speaker plays step tones on the default audio device. The device is
// opened lazily by the first Init; a Speaker that failed to open stays
// silent.
type Speaker struct {
	mu          sync.Mutex
	cfg         Config
	initialized bool
}

// NewSpeaker returns a Speaker that renders tones with cfg.
func NewSpeaker(cfg Config) (*Speaker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Speaker{cfg: cfg}, nil
}

// Init opens the audio device. Calling it again is a no-op.
func (sp *Speaker) Init() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.initialized {
		return nil
	}
	rate := sp.cfg.SampleRate
	if err := speaker.Init(rate, rate.N(bufferDuration)); err != nil {
		return errors.Wrap(err, "sonify: opening speaker")
	}
	sp.initialized = true
	return nil
}

// Play cuts off whatever is sounding and plays the tone of s.
func (sp *Speaker) Play(s step.Step) {
	sp.Stream(Tone(s, sp.cfg))
}

// Stream plays an arbitrary streamer, replacing the current one.
func (sp *Speaker) Stream(st beep.Streamer) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return
	}
	speaker.Clear()
	speaker.Play(st)
}

// Close stops playback and releases the device.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.initialized = false
}
