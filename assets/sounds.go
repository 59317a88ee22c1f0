package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

const (
	SoundPluck     = "pluck"
	SoundExplosion = "explosion"
	SoundLaser     = "laser"
	SoundDrop      = "drop"
	SoundSelect    = "select"
)

type voice struct {
	seconds float64
	sample  func(t, p float64, rng *rand.Rand) float64
}

// voices are small procedural stand-ins for the arcade sound effects. t is
// the time in seconds, p the progress through the clip in [0,1).
var voices = map[string]voice{
	SoundPluck: {0.12, func(t, p float64, _ *rand.Rand) float64 {
		return math.Sin(2*math.Pi*660*t) * math.Exp(-p*6)
	}},
	SoundExplosion: {0.6, func(_, p float64, rng *rand.Rand) float64 {
		return (rng.Float64()*2 - 1) * math.Pow(1-p, 2)
	}},
	SoundLaser: {0.18, func(t, p float64, _ *rand.Rand) float64 {
		freq := 1400 - 900*p
		return square(freq*t) * 0.6 * (1 - p)
	}},
	SoundDrop: {0.3, func(t, p float64, _ *rand.Rand) float64 {
		freq := 420 - 260*p
		return math.Sin(2*math.Pi*freq*t) * (1 - p)
	}},
	SoundSelect: {0.16, func(t, p float64, _ *rand.Rand) float64 {
		freq := 880.0
		if p > 0.5 {
			freq = 1320
		}
		return math.Sin(2*math.Pi*freq*t) * 0.7 * (1 - p)
	}},
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

// Synthesize renders a named clip as 16-bit little-endian stereo PCM, the
// format Ebiten's audio context consumes.
func Synthesize(name string) ([]byte, error) {
	v, ok := voices[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
	n := int(v.seconds * SampleRate)
	rng := rand.New(rand.NewPCG(uint64(len(name)), 0x5eed))
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		s := v.sample(t, float64(i)/float64(n), rng)
		s = math.Max(-1, math.Min(1, s))
		pcm := uint16(int16(s * 0.8 * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], pcm)
		binary.LittleEndian.PutUint16(out[i*4+2:], pcm)
	}
	return out, nil
}

// SoundNames lists every clip Synthesize knows.
func SoundNames() []string {
	return []string{SoundPluck, SoundExplosion, SoundLaser, SoundDrop, SoundSelect}
}

// SoundBank plays synthesized clips. Each Play starts a fresh player so
// overlapping requests mix instead of cutting each other off.
type SoundBank struct {
	ctx    *audio.Context
	volume float64

	mu      sync.Mutex
	clips   map[string][]byte
	playing []*audio.Player
}

func NewSoundBank(volume float64) (*SoundBank, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	bank := &SoundBank{ctx: ctx, volume: volume, clips: make(map[string][]byte)}
	for _, name := range SoundNames() {
		pcm, err := Synthesize(name)
		if err != nil {
			return nil, err
		}
		bank.clips[name] = pcm
	}
	return bank, nil
}

func (b *SoundBank) Play(name string) error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	pcm, ok := b.clips[name]
	if !ok {
		return fmt.Errorf("assets: unknown sound %q", name)
	}

	alive := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			alive = append(alive, p)
		}
	}
	b.playing = alive

	player := b.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(b.volume)
	player.Play()
	b.playing = append(b.playing, player)
	return nil
}

func (b *SoundBank) SetVolume(volume float64) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.volume = volume
	b.mu.Unlock()
}
