package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// MinPlay is the default minimum wait per clip. Short recordings would
// otherwise be cut off by the console prompt that follows.
const MinPlay = 1750 * time.Millisecond

// Player plays one decoded audio clip to completion. The call blocks until
// the clip has finished.
type Player interface {
	Play(data []byte) error
}

// SpeakerPlayer plays mp3 clips through the default output device. The
// speaker is opened once at a fixed sample rate; clips are resampled onto it.
type SpeakerPlayer struct {
	sampleRate beep.SampleRate
	minPlay    time.Duration

	initOnce sync.Once
	initErr  error
}

// NewSpeakerPlayer builds a player with the given minimum wait per clip.
func NewSpeakerPlayer(minPlay time.Duration) *SpeakerPlayer {
	return &SpeakerPlayer{
		sampleRate: beep.SampleRate(44100),
		minPlay:    minPlay,
	}
}

// Play decodes and plays one clip, returning after natural completion but
// never before the minimum wait has passed.
func (p *SpeakerPlayer) Play(data []byte) error {
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode mp3: %w", err)
	}
	defer streamer.Close()

	p.initOnce.Do(func() {
		p.initErr = speaker.Init(p.sampleRate, p.sampleRate.N(100*time.Millisecond))
	})
	if p.initErr != nil {
		return fmt.Errorf("open speaker: %w", p.initErr)
	}

	start := time.Now()
	done := make(chan struct{})
	resampled := beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	speaker.Play(beep.Seq(resampled, beep.Callback(func() {
		close(done)
	})))
	<-done

	if rest := p.minPlay - time.Since(start); rest > 0 {
		time.Sleep(rest)
	}
	return nil
}
