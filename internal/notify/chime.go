package notify

import (
	"io"
	"time"

	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/joomcode/errorx"
)

// Errors is the namespace of notification errors.
var (
	Errors = errorx.NewNamespace("notify")

	// ErrCue means a chime cue could not be built.
	ErrCue = Errors.NewType("cue")
)

// DefaultSampleRate is the chime output sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

const toneDuration = 60 * time.Millisecond

// Tone frequencies per notification key; anything else uses the scale tone.
var toneFreqs = map[string]float64{
	KeyEnabled:  880,
	KeyDisabled: 660,
	KeyFixed:    990,
	KeyUnfixed:  740,
	KeyScale:    784,
}

// Player starts playback of a streamer without blocking.
type Player func(beep.Streamer)

// SpeakerPlayer initializes the speaker at rate and returns a Player for it.
func SpeakerPlayer(rate beep.SampleRate) (Player, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, errorx.Decorate(err, "speaker init")
	}
	return func(s beep.Streamer) {
		speaker.Play(s)
	}, nil
}

// Chime is a Sink that plays a short audible cue for every message.
type Chime struct {
	rate   beep.SampleRate
	cues   map[string]*beep.Buffer
	cue    *beep.Buffer
	play   Player
	volume float64
}

// ChimeOption configures a Chime.
type ChimeOption func(*Chime)

// WithVolume sets the cue volume as a power of two; 0 leaves it unchanged, -1 halves it.
func WithVolume(v float64) ChimeOption {
	return func(c *Chime) {
		c.volume = v
	}
}

func newChime(rate beep.SampleRate, play Player, options []ChimeOption) *Chime {
	c := &Chime{
		rate: rate,
		cues: make(map[string]*beep.Buffer),
		play: play,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func format(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// NewToneChime creates a chime that plays a sine tone, pitched per message kind.
func NewToneChime(rate beep.SampleRate, play Player, options ...ChimeOption) (*Chime, error) {
	c := newChime(rate, play, options)

	for key, freq := range toneFreqs {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, ErrCue.Wrap(err, "tone %v Hz", freq)
		}
		buf := beep.NewBuffer(format(rate))
		buf.Append(beep.Take(rate.N(toneDuration), sine))
		c.cues[key] = buf
	}
	c.cue = c.cues[KeyScale]

	return c, nil
}

// NewWAVChime creates a chime that plays a WAV cue for every message.
func NewWAVChime(r io.ReadSeeker, rate beep.SampleRate, play Player, options ...ChimeOption) (*Chime, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrCue.New("invalid wav file")
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, ErrCue.Wrap(err, "decode wav")
	}

	channels := pcm.Format.NumChannels
	if channels < 1 {
		return nil, ErrCue.New("wav has no channels")
	}

	bitDepth := pcm.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(decoder.BitDepth)
	}
	if bitDepth < 2 {
		return nil, ErrCue.New("unsupported bit depth %d", bitDepth)
	}
	peak := float64(int(1)<<(bitDepth-1) - 1)

	frames := make([][2]float64, len(pcm.Data)/channels)
	for i := range frames {
		left := float64(pcm.Data[i*channels]) / peak
		right := left
		if channels > 1 {
			right = float64(pcm.Data[i*channels+1]) / peak
		}
		frames[i] = [2]float64{left, right}
	}

	var s beep.Streamer = &frameStreamer{frames: frames}
	if src := beep.SampleRate(decoder.SampleRate); src != rate {
		s = beep.Resample(4, src, rate, s)
	}

	c := newChime(rate, play, options)
	c.cue = beep.NewBuffer(format(rate))
	c.cue.Append(s)

	return c, nil
}

// Append plays the cue for m.
func (c *Chime) Append(m Message) {
	buf, ok := c.cues[m.Key]
	if !ok {
		buf = c.cue
	}
	if buf == nil || c.play == nil {
		return
	}
	c.play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   c.volume,
	})
}

type frameStreamer struct {
	frames [][2]float64
	pos    int
}

func (s *frameStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.frames) {
		return 0, false
	}
	n = copy(samples, s.frames[s.pos:])
	s.pos += n
	return n, true
}

func (s *frameStreamer) Err() error {
	return nil
}
