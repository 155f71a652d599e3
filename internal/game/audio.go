package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const sfxVolume = 0.6

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundPour SoundKind = iota
	SoundSettle
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeGrains limits simultaneous grain sounds to avoid speaker clipping.
var activeGrains int32
var grainVariantCounter uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	// Limit simultaneous grain sounds to 3.
	if atomic.LoadInt32(&activeGrains) >= 3 {
		return
	}
	atomic.AddInt32(&activeGrains, 1)
	samples := generateSound(kind)
	if len(samples) == 0 {
		atomic.AddInt32(&activeGrains, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeGrains, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPour:
		return genPour()
	case SoundSettle:
		return genSettle()
	}
	return nil
}

// genPour is a short, soft noise burst: sand leaving the pointer.
func genPour() []byte {
	variant := atomic.AddUint64(&grainVariantCounter, 1)
	seed := splitmix64(variant)

	dur := 0.06
	n := int(dur * SampleRate)
	buf := makeBuf(n)

	// Low-pass state for a muffled hiss.
	lp := 0.0
	cutoff := 0.12 + 0.04*float64(seed&0xFF)/255.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		env := adsr(progress, 0.15, 0.25, 0.4, 0.45)
		lp += cutoff * (lcg(&seed) - lp)
		putStereoF32(buf, i, lp*env*0.5)
	}
	return buf
}

// genSettle is a dull low tick: a grain coming to rest.
func genSettle() []byte {
	variant := atomic.AddUint64(&grainVariantCounter, 1)
	seed := splitmix64(variant ^ 0x5E771E)

	dur := 0.05
	n := int(dur * SampleRate)
	buf := makeBuf(n)

	freq := 140.0 + 40.0*float64(seed&0xFF)/255.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := float64(i) / float64(n)
		env := adsr(progress, 0.04, 0.3, 0.2, 0.5)
		tone := math.Sin(2 * math.Pi * freq * t)
		click := lcg(&seed) * 0.2
		putStereoF32(buf, i, (tone*0.7+click)*env*0.4)
	}
	return buf
}
