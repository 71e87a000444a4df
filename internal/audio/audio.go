// Package audio tracks background music intents. Playback itself belongs to
// whatever sits behind a Controller.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
)

// Mixer defaults.
const (
	DefaultVolume = 0.5
	DefaultStep   = 0.1
)

// Intent is a music request typed by the player.
type Intent string

const (
	IntentPlay   Intent = "play"
	IntentPause  Intent = "pause"
	IntentToggle Intent = "toggle"
	IntentUp     Intent = "up"
	IntentDown   Intent = "down"
)

// ParseIntent converts a typed argument into an Intent.
func ParseIntent(s string) (Intent, error) {
	switch i := Intent(s); i {
	case IntentPlay, IntentPause, IntentToggle, IntentUp, IntentDown:
		return i, nil
	default:
		return "", fmt.Errorf("unknown music command %q", s)
	}
}

// Status is the controller's current playback state.
type Status struct {
	Playing bool
	Volume  float64
}

func (s Status) String() string {
	state := "paused"
	if s.Playing {
		state = "playing"
	}
	return fmt.Sprintf("Music %s, volume %d%%.", state, int(math.Round(s.Volume*100)))
}

// Controller receives music intents.
type Controller interface {
	Apply(Intent) (Status, error)
	Status() Status
}

// Mixer is a Controller that keeps volume and play state and logs each
// change. Volume stays within 0 and 1.
type Mixer struct {
	mu      sync.Mutex
	playing bool
	volume  float64
	step    float64
	log     logrus.FieldLogger
}

// NewMixer creates a playing Mixer at volume, moving by step per intent.
func NewMixer(volume, step float64, log logrus.FieldLogger) *Mixer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Mixer{
		playing: true,
		volume:  clamp(volume),
		step:    step,
		log:     log,
	}
}

func (m *Mixer) Apply(i Intent) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch i {
	case IntentPlay:
		m.playing = true
	case IntentPause:
		m.playing = false
	case IntentToggle:
		m.playing = !m.playing
	case IntentUp:
		m.volume = clamp(m.volume + m.step)
	case IntentDown:
		m.volume = clamp(m.volume - m.step)
	default:
		return m.status(), fmt.Errorf("unknown music command %q", i)
	}

	st := m.status()
	m.log.WithFields(logrus.Fields{
		"intent":  i,
		"playing": st.Playing,
		"volume":  st.Volume,
	}).Debug("music changed")
	return st, nil
}

func (m *Mixer) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status()
}

func (m *Mixer) status() Status {
	return Status{Playing: m.playing, Volume: m.volume}
}

// clamp bounds v to [0, 1], rounding to two places so repeated steps do
// not drift.
func clamp(v float64) float64 {
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(1, v))
}
