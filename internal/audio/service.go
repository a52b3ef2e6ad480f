// Package audio plays sound effects and the ambient garden loop. Missing
// files or an unavailable sound device degrade to silence; audio problems
// must never stop the game from launching.
package audio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/aetherial/gardens/internal/logger"
)

// Sound effect keys used across the UI.
const (
	SFXMove     = "move"
	SFXPlace    = "place"
	SFXComplete = "complete"
	SFXUI       = "ui"
)

// AmbientBaseName is the background music file (wav preferred, mp3 fallback).
const AmbientBaseName = "ambient"

// UISoftening makes interface clicks a little quieter than game sounds.
const UISoftening = 0.5

const speakerBufferLen = 200 * time.Millisecond

// sfxFiles maps each effect key to candidate filenames, wav preferred with
// mp3 fallback like the ambient track.
var sfxFiles = map[string][]string{
	SFXMove:     {"move.wav", "move.mp3"},
	SFXPlace:    {"place.wav", "place.mp3"},
	SFXComplete: {"complete.wav", "complete.mp3"},
	SFXUI:       {"ui_click.wav", "ui_click.mp3"},
}

// Service handles audio playback.
type Service struct {
	log        logger.Logger
	enabled    bool
	sampleRate beep.SampleRate

	buffers map[string]*beep.Buffer

	ambientStreamer beep.StreamSeekCloser
	ambientVolume   *effects.Volume

	mutex  sync.Mutex
	volume float64
	muted  bool
}

// NewService loads sound effects and music from dir (the assets/audio
// folder) and initializes the speaker. On any failure the returned service
// is silent but fully usable.
func NewService(dir string, volume float64, muted bool, log logger.Logger) *Service {
	s := &Service{
		log:        log,
		buffers:    make(map[string]*beep.Buffer),
		sampleRate: beep.SampleRate(44100),
		volume:     volume,
		muted:      muted,
	}

	if err := speaker.Init(s.sampleRate, s.sampleRate.N(speakerBufferLen)); err != nil {
		log.Warn("audio device unavailable, running silent", logger.Err(err))
		return s
	}
	s.enabled = true

	for key, candidates := range sfxFiles {
		buffer, err := s.loadBuffer(dir, candidates)
		if err != nil {
			log.Warn("sound effect not loaded", logger.String("key", key), logger.Err(err))
			continue
		}
		s.buffers[key] = buffer
	}

	s.loadAmbient(dir)
	return s
}

// loadBuffer decodes the first candidate file that exists into memory,
// resampled to the speaker rate so effects can play instantly.
func (s *Service) loadBuffer(dir string, candidates []string) (*beep.Buffer, error) {
	var lastErr error = os.ErrNotExist
	for _, name := range candidates {
		streamer, format, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			lastErr = err
			continue
		}

		buffer := beep.NewBuffer(beep.Format{
			SampleRate:  s.sampleRate,
			NumChannels: format.NumChannels,
			Precision:   format.Precision,
		})
		if format.SampleRate == s.sampleRate {
			buffer.Append(streamer)
		} else {
			buffer.Append(beep.Resample(4, format.SampleRate, s.sampleRate, streamer))
		}
		streamer.Close()
		return buffer, nil
	}
	return nil, lastErr
}

func (s *Service) loadAmbient(dir string) {
	for _, name := range []string{AmbientBaseName + ".wav", AmbientBaseName + ".mp3"} {
		streamer, format, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}

		loop, err := beep.Loop2(streamer)
		if err != nil {
			streamer.Close()
			s.log.Warn("ambient music not loopable", logger.Err(err))
			return
		}

		var playable beep.Streamer = loop
		if format.SampleRate != s.sampleRate {
			playable = beep.Resample(4, format.SampleRate, s.sampleRate, loop)
		}

		s.ambientStreamer = streamer
		s.ambientVolume = &effects.Volume{
			Streamer: playable,
			Base:     2,
			Volume:   gainFor(s.volume),
			Silent:   s.silentFor(s.volume),
		}
		return
	}
	s.log.Warn("ambient music not found", logger.String("dir", dir))
}

func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".mp3") {
		streamer, format, err := mp3.Decode(file)
		if err != nil {
			file.Close()
			return nil, beep.Format{}, err
		}
		return streamer, format, nil
	}

	streamer, format, err := wav.Decode(file)
	if err != nil {
		file.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

// Play plays a sound effect by key. Unknown keys are silently ignored.
func (s *Service) Play(name string) {
	if !s.enabled {
		return
	}

	buffer, ok := s.buffers[name]
	if !ok {
		return
	}

	s.mutex.Lock()
	volume := s.volume
	if name == SFXUI {
		volume *= UISoftening
	}
	silent := s.muted || s.silentFor(volume)
	s.mutex.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Base:     2,
		Volume:   gainFor(volume),
		Silent:   silent,
	})
}

// StartAmbient begins the background music loop.
func (s *Service) StartAmbient() {
	if !s.enabled || s.ambientVolume == nil {
		return
	}
	speaker.Play(s.ambientVolume)
}

// SetVolume sets the master volume (0..1) for music and effects.
func (s *Service) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	s.mutex.Lock()
	s.volume = volume
	muted := s.muted
	s.mutex.Unlock()

	s.updateAmbient(volume, muted)
}

// SetMuted mutes or unmutes all output. The stored volume is unchanged so
// un-muting restores the previous level.
func (s *Service) SetMuted(muted bool) {
	s.mutex.Lock()
	s.muted = muted
	volume := s.volume
	s.mutex.Unlock()

	s.updateAmbient(volume, muted)
}

func (s *Service) updateAmbient(volume float64, muted bool) {
	if !s.enabled || s.ambientVolume == nil {
		return
	}
	speaker.Lock()
	s.ambientVolume.Volume = gainFor(volume)
	s.ambientVolume.Silent = muted || s.silentFor(volume)
	speaker.Unlock()
}

// Close stops playback and releases the ambient stream.
func (s *Service) Close() {
	if !s.enabled {
		return
	}
	speaker.Clear()
	if s.ambientStreamer != nil {
		s.ambientStreamer.Close()
	}
}

// gainFor converts a linear 0..1 volume to the exponential gain used by
// effects.Volume (Base 2): 2^gain equals the linear level.
func gainFor(volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Log2(volume)
}

func (s *Service) silentFor(volume float64) bool {
	return volume <= 0
}
