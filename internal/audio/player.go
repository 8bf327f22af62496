// Package audio plays background music and pop sounds through beep.
// Every failure degrades to silence; the game never waits on audio.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"path"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/credit-balloons/internal/assets"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Sink is the output device the mixer is attached to.
type Sink interface {
	// Start begins pulling samples from s. Called at most once.
	Start(sr beep.SampleRate, s beep.Streamer) error
	// Lock and Unlock guard changes to streamers the sink is reading.
	Lock()
	Unlock()
}

// speakerSink plays through the system audio device.
type speakerSink struct{}

// SpeakerSink returns the default sink backed by beep/speaker.
func SpeakerSink() Sink {
	return speakerSink{}
}

func (speakerSink) Start(sr beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (speakerSink) Lock()   { speaker.Lock() }
func (speakerSink) Unlock() { speaker.Unlock() }

// Player owns the mixer, the looping music track and the pop sample.
type Player struct {
	mu       sync.Mutex
	sink     Sink
	resolver *assets.Resolver
	logger   *log.Logger

	musicChain *assets.Chain
	popChain   *assets.Chain

	mixer     *beep.Mixer
	musicCtrl *beep.Ctrl
	musicVol  *effects.Volume
	popBuf    *beep.Buffer
	popFailed bool

	started bool
	enabled bool

	musicVolume float64 // 0..1
	soundVolume float64 // 0..1
}

// NewPlayer creates a disabled player. Nothing touches the audio device
// until SetEnabled(true).
func NewPlayer(resolver *assets.Resolver, sink Sink, logger *log.Logger) *Player {
	if sink == nil {
		sink = SpeakerSink()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		sink:        sink,
		resolver:    resolver,
		logger:      logger,
		musicChain:  assets.NewChain("music", assets.MusicCandidates()...),
		popChain:    assets.NewChain("pop", assets.PopCandidates()...),
		mixer:       &beep.Mixer{},
		musicVolume: 0.35,
		soundVolume: 0.8,
	}
}

// Enabled reports whether audio is currently on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetEnabled turns background music on or off and returns the resulting
// state. Turning on fails, and leaves audio off, when the device cannot
// start or no music candidate can be decoded.
func (p *Player) SetEnabled(on bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !on {
		p.enabled = false
		p.setMusicPaused(true)
		return false
	}

	if err := p.start(); err != nil {
		p.logger.Warn("audio device unavailable", "err", err)
		p.enabled = false
		return false
	}
	if p.musicCtrl == nil {
		if err := p.loadMusic(); err != nil {
			p.logger.Warn("no playable music, audio off", "err", err)
			p.enabled = false
			return false
		}
	}

	p.setMusicPaused(false)
	p.enabled = true
	return true
}

// Toggle flips the audio state and returns the new one.
func (p *Player) Toggle() bool {
	return p.SetEnabled(!p.Enabled())
}

// Volumes returns the music and sound effect levels.
func (p *Player) Volumes() (music, sound float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicVolume, p.soundVolume
}

// SetVolumes sets music and sound effect levels in [0, 1].
func (p *Player) SetVolumes(music, sound float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicVolume = clamp01(music)
	p.soundVolume = clamp01(sound)
	if p.musicVol != nil {
		p.sink.Lock()
		p.musicVol.Volume, p.musicVol.Silent = gain(p.musicVolume)
		p.sink.Unlock()
	}
}

// PlayPop plays the pop sample once. It is silent while audio is off or
// when no pop sound could be loaded.
func (p *Player) PlayPop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	if p.popBuf == nil && !p.popFailed {
		if err := p.loadPop(); err != nil {
			p.logger.Warn("no playable pop sound", "err", err)
			p.popFailed = true
		}
	}
	if p.popBuf == nil {
		return
	}

	var s beep.Streamer = p.popBuf.Streamer(0, p.popBuf.Len())
	if sr := p.popBuf.Format().SampleRate; sr != sampleRate {
		s = beep.Resample(resampleQuality, sr, sampleRate, s)
	}
	vol := &effects.Volume{Streamer: s, Base: 2}
	vol.Volume, vol.Silent = gain(p.soundVolume)

	p.sink.Lock()
	p.mixer.Add(vol)
	p.sink.Unlock()
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = false
	if !p.started {
		return
	}
	p.sink.Lock()
	p.mixer.Clear()
	p.sink.Unlock()
	p.musicCtrl = nil
	p.musicVol = nil
}

func (p *Player) start() error {
	if p.started {
		return nil
	}
	if err := p.sink.Start(sampleRate, p.mixer); err != nil {
		return fmt.Errorf("audio: start: %w", err)
	}
	p.started = true
	return nil
}

// loadMusic decodes the first usable music candidate and adds it to the
// mixer, paused. Candidates that read but fail to decode are skipped.
func (p *Player) loadMusic() error {
	for {
		data, name, err := p.resolver.ReadFile(p.musicChain)
		if err != nil {
			return err
		}
		stream, format, err := decode(name, data)
		if err != nil {
			p.logger.Debug("music candidate undecodable", "path", name, "err", err)
			p.musicChain.Advance()
			continue
		}

		var s beep.Streamer = beep.Loop(-1, stream)
		if format.SampleRate != sampleRate {
			s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
		}
		vol := &effects.Volume{Streamer: s, Base: 2}
		vol.Volume, vol.Silent = gain(p.musicVolume)
		ctrl := &beep.Ctrl{Streamer: vol, Paused: true}

		p.sink.Lock()
		p.mixer.Add(ctrl)
		p.sink.Unlock()

		p.musicCtrl = ctrl
		p.musicVol = vol
		p.logger.Info("music loaded", "path", name)
		return nil
	}
}

// loadPop buffers the first usable pop candidate in memory so it can be
// replayed without decoding again.
func (p *Player) loadPop() error {
	for {
		data, name, err := p.resolver.ReadFile(p.popChain)
		if err != nil {
			return err
		}
		stream, format, err := decode(name, data)
		if err != nil {
			p.logger.Debug("pop candidate undecodable", "path", name, "err", err)
			p.popChain.Advance()
			continue
		}

		buf := beep.NewBuffer(format)
		buf.Append(stream)
		stream.Close()
		p.popBuf = buf
		return nil
	}
}

func (p *Player) setMusicPaused(paused bool) {
	if p.musicCtrl == nil {
		return
	}
	p.sink.Lock()
	p.musicCtrl.Paused = paused
	p.sink.Unlock()
}

// decode picks a decoder from the file extension.
func decode(name string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	switch path.Ext(name) {
	case ".mp3":
		return mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".wav":
		return wav.Decode(bytes.NewReader(data))
	default:
		return nil, beep.Format{}, fmt.Errorf("audio: unsupported format %q", name)
	}
}

// gain converts a linear level to a base-2 effects.Volume setting.
func gain(level float64) (volume float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(level), false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
