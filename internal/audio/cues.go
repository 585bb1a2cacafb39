package audio

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"showroom/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names one interface sound.
type Cue int

const (
	CueHover Cue = iota
	CueOpen
	CueClose
)

func (c Cue) String() string {
	switch c {
	case CueHover:
		return "hover"
	case CueOpen:
		return "open"
	case CueClose:
		return "close"
	}
	return "unknown"
}

var cueNotes = map[Cue][]note{
	CueHover: {{freq: 1320, duration: 50 * time.Millisecond}},
	CueOpen:  {{freq: 660, duration: 80 * time.Millisecond}, {freq: 990, duration: 120 * time.Millisecond}},
	CueClose: {{freq: 990, duration: 70 * time.Millisecond}, {freq: 550, duration: 110 * time.Millisecond}},
}

// hearingDistance is where a positioned cue fades out completely.
const hearingDistance = 40

// Player hands a finished stream to the output device.
type Player interface {
	Play(s beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }

type Config struct {
	Enabled bool
	Volume  float32
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Cues synthesizes and plays interface sounds.
type Cues struct {
	player   Player
	volume   float64
	listener Listener
	speaker  bool
	log      *slog.Logger
}

// NewCues opens the default output device. When audio is disabled or the
// device cannot be opened, the returned Cues is silent; the error says why.
func NewCues(cfg Config) (*Cues, error) {
	if !cfg.Enabled {
		return NewCuesWithPlayer(nil, cfg), nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return NewCuesWithPlayer(nil, cfg), fmt.Errorf("open audio device: %w", err)
	}
	c := NewCuesWithPlayer(speakerPlayer{}, cfg)
	c.speaker = true
	return c, nil
}

// NewCuesWithPlayer plays through p at cfg.Volume. A nil p gives silent
// cues. cfg.Enabled is not consulted.
func NewCuesWithPlayer(p Player, cfg Config) *Cues {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Cues{player: p, volume: float64(cfg.Volume), log: log}
}

func (c *Cues) Enabled() bool {
	return c.player != nil && c.volume > 0
}

// SetListener moves the ear to the camera.
func (c *Cues) SetListener(p camera.Pose) {
	c.listener = ListenerFromPose(p)
}

// Play plays cue centered at full configured volume.
func (c *Cues) Play(cue Cue) {
	c.play(cue, 1, 0)
}

// PlayAt plays cue as if emitted at pos.
func (c *Cues) PlayAt(cue Cue, pos rl.Vector3) {
	gain, pan := c.listener.Spatialize(pos, hearingDistance)
	c.play(cue, float64(gain), float64(pan))
}

func (c *Cues) play(cue Cue, gain, pan float64) {
	if !c.Enabled() || gain <= 0 {
		return
	}
	notes, ok := cueNotes[cue]
	if !ok {
		c.log.Warn("unknown audio cue", "cue", int(cue))
		return
	}
	var s beep.Streamer = melody(sampleRate, notes...)
	s = &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(c.volume * gain)}
	if pan != 0 {
		s = &effects.Pan{Streamer: s, Pan: pan}
	}
	c.player.Play(s)
}

// Close stops playback and releases the device.
func (c *Cues) Close() {
	if !c.speaker {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.speaker = false
	c.player = nil
}
