package player

import (
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/netradioapp/netradio/internal/shoutcast"
)

// engineStream is the controller's view of an open station stream.
type engineStream interface {
	io.ReadCloser
	OnMetadata(fn func(title string))
}

type openFunc func(url string) (engineStream, error)

type decodeFunc func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// Output is the audio device boundary. The real implementation drives the
// beep speaker; tests substitute a fake so no device is opened.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// icyStream adapts a shoutcast stream to the engineStream interface.
type icyStream struct {
	*shoutcast.Stream
}

func (s *icyStream) OnMetadata(fn func(title string)) {
	s.MetadataCallbackFunc = func(m *shoutcast.Metadata) {
		fn(m.StreamTitle)
	}
}

func openICY(url string) (engineStream, error) {
	stream, err := shoutcast.Open(url)
	if err != nil {
		return nil, err
	}
	return &icyStream{Stream: stream}, nil
}

func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return mp3.Decode(rc)
}

// speakerOutput is the production Output. The speaker is initialized once per
// sample rate; re-initializing with the same rate is a no-op.
type speakerOutput struct {
	initialized bool
	sampleRate  beep.SampleRate
}

func (o *speakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	if o.initialized && o.sampleRate == sampleRate {
		return nil
	}
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return err
	}
	o.initialized = true
	o.sampleRate = sampleRate
	return nil
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (o *speakerOutput) Clear()               { speaker.Clear() }
func (o *speakerOutput) Lock()                { speaker.Lock() }
func (o *speakerOutput) Unlock()              { speaker.Unlock() }
