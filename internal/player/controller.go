package player

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog/log"

	"github.com/netradioapp/netradio/internal/model"
)

// speakerBufferSize trades latency for underrun resilience on slow streams.
const speakerBufferSize = 200 * time.Millisecond

// StreamLoadError reports a station whose stream could not be opened or
// decoded. The controller is back in the Idle state when it is returned.
type StreamLoadError struct {
	URL string
	Err error
}

func (e *StreamLoadError) Error() string {
	return fmt.Sprintf("failed to load stream %s: %v", e.URL, e.Err)
}

func (e *StreamLoadError) Unwrap() error { return e.Err }

// StreamRecorder is the recording side as seen by the controller. Stop is
// called synchronously before the underlying stream is closed so the tap
// never writes into a finalized file.
type StreamRecorder interface {
	Active() bool
	Stop() error
}

// StateCallbackFunc receives every player state transition.
type StateCallbackFunc func(state model.PlayerState)

// MetadataCallbackFunc receives now-playing updates from the stream.
type MetadataCallbackFunc func(np model.NowPlaying)

// Controller drives a single station stream through the audio engine. All
// methods are safe for concurrent use; callbacks are invoked outside the
// controller lock and may run on engine goroutines.
type Controller struct {
	// loadMu serializes Load and Stop end to end so at most one stream is
	// ever active and a losing Load can never leak its stream.
	loadMu sync.Mutex

	mu sync.Mutex

	state   model.PlayerState
	station model.Station
	loaded  bool
	volume  int

	// session identifies the current stream so callbacks from a stream that
	// was already replaced or stopped are discarded.
	session string

	stream     engineStream
	streamer   beep.StreamSeekCloser
	volumeFX   *effects.Volume
	ctrl       *beep.Ctrl
	nowPlaying model.NowPlaying

	tapMu sync.Mutex
	tap   io.Writer

	recorder      StreamRecorder
	stateCallback StateCallbackFunc
	metaCallback  MetadataCallbackFunc
	open          openFunc
	decode        decodeFunc
	output        Output
}

// New creates an idle controller bound to the real shoutcast client and
// speaker output.
func New() *Controller {
	return &Controller{
		state:  model.StateIdle,
		volume: DefaultVolume,
		open:   openICY,
		decode: decodeMP3,
		output: &speakerOutput{},
	}
}

// SetRecorder wires the recorder that must be stopped before any stream
// teardown. Must be called before playback starts.
func (c *Controller) SetRecorder(r StreamRecorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorder = r
}

// SetStateCallback registers the state transition listener.
func (c *Controller) SetStateCallback(fn StateCallbackFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stateCallback = fn
}

// SetMetadataCallback registers the now-playing listener.
func (c *Controller) SetMetadataCallback(fn MetadataCallbackFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metaCallback = fn
}

// State returns the current player state.
func (c *Controller) State() model.PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentStation returns the loaded station, if any.
func (c *Controller) CurrentStation() (model.Station, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station, c.loaded
}

// NowPlaying returns the latest stream metadata for the loaded station.
func (c *Controller) NowPlaying() model.NowPlaying {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowPlaying
}

// Volume returns the current volume percent.
func (c *Controller) Volume() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Load stops whatever is playing, opens the station stream and starts
// playback. On success the controller is Playing; on failure it is Idle and
// the returned error wraps the cause in a StreamLoadError.
func (c *Controller) Load(station model.Station) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.stopSession("")
	c.setState(model.StateLoading)

	log.Info().Str("station", station.Name).Str("url", station.URL).Msg("loading stream")

	stream, err := c.open(station.URL)
	if err != nil {
		c.setState(model.StateIdle)
		return &StreamLoadError{URL: station.URL, Err: err}
	}

	session := uuid.NewString()
	stream.OnMetadata(func(title string) {
		c.handleMetadata(session, station.Name, title)
	})

	tapped := &tapReadCloser{src: stream, tap: c.tapWrite}
	streamer, format, err := c.decode(tapped)
	if err != nil {
		stream.Close()
		c.setState(model.StateIdle)
		return &StreamLoadError{URL: station.URL, Err: err}
	}

	if err := c.output.Init(format.SampleRate, format.SampleRate.N(speakerBufferSize)); err != nil {
		streamer.Close()
		stream.Close()
		c.setState(model.StateIdle)
		return &StreamLoadError{URL: station.URL, Err: err}
	}

	c.mu.Lock()
	c.stream = stream
	c.streamer = streamer
	c.station = station
	c.loaded = true
	c.session = session
	c.nowPlaying = model.NowPlaying{StationName: station.Name}
	c.volumeFX = &effects.Volume{
		Streamer: streamer,
		Base:     volumeBase,
		Volume:   percentToGain(c.volume),
		Silent:   c.volume == MinVolume,
	}
	c.ctrl = &beep.Ctrl{Streamer: c.volumeFX}
	ctrl := c.ctrl
	c.mu.Unlock()

	c.output.Play(beep.Seq(ctrl, beep.Callback(func() {
		c.handleStreamEnd(session)
	})))
	c.setState(model.StatePlaying)
	return nil
}

// Play resumes a paused stream. It is a no-op in any other state.
func (c *Controller) Play() {
	c.mu.Lock()
	if !c.loaded || c.state != model.StatePaused {
		c.mu.Unlock()
		return
	}
	ctrl := c.ctrl
	c.mu.Unlock()

	c.output.Lock()
	ctrl.Paused = false
	c.output.Unlock()
	c.setState(model.StatePlaying)
}

// Pause suspends audio output while keeping the stream open. It is a no-op
// unless the controller is Playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	if !c.loaded || c.state != model.StatePlaying {
		c.mu.Unlock()
		return
	}
	ctrl := c.ctrl
	c.mu.Unlock()

	c.output.Lock()
	ctrl.Paused = true
	c.output.Unlock()
	c.setState(model.StatePaused)
}

// TogglePlayPause flips between Playing and Paused.
func (c *Controller) TogglePlayPause() {
	switch c.State() {
	case model.StatePlaying:
		c.Pause()
	case model.StatePaused:
		c.Play()
	}
}

// Stop halts playback and closes the stream. An active recording is stopped
// first. With nothing loaded Stop does nothing.
func (c *Controller) Stop() {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	c.stopSession("")
}

// stopSession tears down the current stream. A non-empty session restricts
// the teardown to that stream, so a late end-of-stream notification cannot
// stop a replacement that loaded in the meantime. Callers hold loadMu.
func (c *Controller) stopSession(session string) {
	c.mu.Lock()
	recorder := c.recorder
	loaded := c.loaded && (session == "" || c.session == session)
	c.mu.Unlock()
	if !loaded {
		return
	}

	if recorder != nil && recorder.Active() {
		if err := recorder.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop recording on playback stop")
		}
	}

	c.mu.Lock()
	stream := c.stream
	streamer := c.streamer
	station := c.station
	c.stream = nil
	c.streamer = nil
	c.volumeFX = nil
	c.ctrl = nil
	c.loaded = false
	c.session = ""
	c.nowPlaying = model.NowPlaying{}
	c.mu.Unlock()

	c.output.Clear()
	if streamer != nil {
		streamer.Close()
	}
	if stream != nil {
		stream.Close()
	}

	log.Info().Str("station", station.Name).Msg("playback stopped")
	c.setState(model.StateStopped)
}

// SetVolume clamps the given percent to 0-100 and applies it. The value is
// remembered across loads; with no stream loaded it only updates state.
func (c *Controller) SetVolume(percent int) {
	percent = clampVolume(percent)

	c.mu.Lock()
	c.volume = percent
	fx := c.volumeFX
	c.mu.Unlock()

	if fx == nil {
		return
	}
	c.output.Lock()
	fx.Volume = percentToGain(percent)
	fx.Silent = percent == MinVolume
	c.output.Unlock()
}

// AttachTap connects a raw-stream sink. Only one tap may be attached at a
// time.
func (c *Controller) AttachTap(w io.Writer) error {
	c.tapMu.Lock()
	defer c.tapMu.Unlock()
	if c.tap != nil {
		return fmt.Errorf("stream tap already attached")
	}
	c.tap = w
	return nil
}

// DetachTap disconnects the sink if it is the one currently attached.
func (c *Controller) DetachTap(w io.Writer) {
	c.tapMu.Lock()
	defer c.tapMu.Unlock()
	if c.tap == w {
		c.tap = nil
	}
}

func (c *Controller) tapWrite(p []byte) {
	c.tapMu.Lock()
	w := c.tap
	c.tapMu.Unlock()
	if w != nil {
		// Sink write errors are the recorder's concern, not playback's.
		w.Write(p) //nolint:errcheck
	}
}

func (c *Controller) setState(state model.PlayerState) {
	c.mu.Lock()
	c.state = state
	fn := c.stateCallback
	c.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

func (c *Controller) handleMetadata(session, stationName, title string) {
	c.mu.Lock()
	if c.session != session {
		c.mu.Unlock()
		return
	}
	c.nowPlaying = model.NowPlaying{StationName: stationName, SongTitle: title}
	np := c.nowPlaying
	fn := c.metaCallback
	c.mu.Unlock()

	log.Debug().Str("station", stationName).Str("title", title).Msg("metadata update")
	if fn != nil {
		fn(np)
	}
}

// handleStreamEnd runs on the engine goroutine when the stream drains, which
// for live radio means the connection dropped. No reconnect is attempted.
// The speaker fires this callback while holding its own lock, so the teardown
// must happen on another goroutine: Stop clears the output, and clearing from
// inside the callback would deadlock the audio pull.
func (c *Controller) handleStreamEnd(session string) {
	c.mu.Lock()
	if c.session != session || !c.loaded {
		c.mu.Unlock()
		return
	}
	station := c.station
	c.mu.Unlock()

	log.Warn().Str("station", station.Name).Msg("stream ended unexpectedly")
	go func() {
		c.loadMu.Lock()
		defer c.loadMu.Unlock()
		c.stopSession(session)
	}()
}
