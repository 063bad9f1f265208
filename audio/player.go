package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
)

// Sink plays streamers.
type Sink interface {
	Play(beep.Streamer)
}

// Player turns game notices into sounds. It implements game.Observer.
type Player struct {
	sink   Sink
	rate   beep.SampleRate
	volume float64
	logger *zap.Logger
}

// NewPlayer plays tones on sink at the given sample rate and volume.
func NewPlayer(sink Sink, rate beep.SampleRate, volume float64, logger *zap.Logger) *Player {
	return &Player{sink: sink, rate: rate, volume: volume, logger: logger}
}

// Observe plays the tone for n, if it has one.
func (p *Player) Observe(n game.Notice) {
	s := Sound(n, p.rate)
	if s == nil {
		return
	}
	p.logger.Debug("play", zap.Stringer("notice", n.Kind))
	p.sink.Play(withVolume(s, p.volume))
}

// Speaker mixes streamers into the system audio output.
type Speaker struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the speaker at rate.
func OpenSpeaker(rate beep.SampleRate) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes streamer into the speaker output.
func (s *Speaker) Play(streamer beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// Open returns a Player on the system speaker, or a nil Player and the
// error when no audio device is available. Callers keep running silently.
func Open(rate int, volume float64, logger *zap.Logger) (*Player, func(), error) {
	sampleRate := beep.SampleRate(rate)
	spk, err := OpenSpeaker(sampleRate)
	if err != nil {
		return nil, func() {}, err
	}
	logger.Info("audio enabled", zap.Int("sample_rate", rate), zap.Float64("volume", volume))
	return NewPlayer(spk, sampleRate, volume, logger.Named("audio")), spk.Close, nil
}
