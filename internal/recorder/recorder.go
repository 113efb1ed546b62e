package recorder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/netradioapp/netradio/internal/model"
)

const (
	// timestampLayout names recording files down to the second, which is
	// enough to keep successive recordings of one station apart.
	timestampLayout = "20060102_150405"

	writeBufferSize = 64 * 1024
)

// ErrBusy is returned by Start while a recording is already running.
var ErrBusy = errors.New("recording already in progress")

// ErrNoActiveStream is returned by Start when no stream is playing or paused.
var ErrNoActiveStream = errors.New("no active stream to record")

// RecordingIOError reports a disk failure during a recording. The recorder is
// inactive once it has been reported.
type RecordingIOError struct {
	Path string
	Err  error
}

func (e *RecordingIOError) Error() string {
	return fmt.Sprintf("recording failed for %s: %v", e.Path, e.Err)
}

func (e *RecordingIOError) Unwrap() error { return e.Err }

// Source is the playback side the recorder taps into.
type Source interface {
	State() model.PlayerState
	AttachTap(w io.Writer) error
	DetachTap(w io.Writer)
}

// StateCallbackFunc receives recording state changes.
type StateCallbackFunc func(state model.RecordingState)

// ErrorCallbackFunc receives failures from the background writer.
type ErrorCallbackFunc func(err error)

// recordingFile is the slice of *os.File the writer needs. Tests swap the
// create hook to inject disk failures.
type recordingFile interface {
	io.WriteCloser
	Sync() error
}

func createRecordingFile(path string) (recordingFile, error) {
	return os.Create(path)
}

// Recorder captures one stream at a time into the recordings directory.
// Methods are safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	source Source
	dir    string

	active    bool
	id        string
	filePath  string
	tempPath  string
	startedAt time.Time
	sink      *chanSink
	writeErr  error
	wg        sync.WaitGroup

	stateCallback StateCallbackFunc
	errorCallback ErrorCallbackFunc

	create func(path string) (recordingFile, error)
}

// New creates an inactive recorder writing into dir.
func New(source Source, dir string) *Recorder {
	return &Recorder{source: source, dir: dir, create: createRecordingFile}
}

// SetDirectory changes where future recordings are written. A recording in
// progress keeps its original path.
func (r *Recorder) SetDirectory(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dir = dir
}

// SetStateCallback registers the recording state listener.
func (r *Recorder) SetStateCallback(fn StateCallbackFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stateCallback = fn
}

// SetErrorCallback registers the listener for writer failures.
func (r *Recorder) SetErrorCallback(fn ErrorCallbackFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorCallback = fn
}

// Active reports whether a recording is running.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// State returns a snapshot of the current recording.
func (r *Recorder) State() model.RecordingState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return model.RecordingState{}
	}
	return model.RecordingState{Active: true, FilePath: r.filePath, StartedAt: r.startedAt}
}

// Start begins capturing the stream of the named station. It fails with
// ErrBusy while a recording runs and with ErrNoActiveStream unless the
// source is playing or paused.
func (r *Recorder) Start(stationName string) error {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return ErrBusy
	}
	if !r.source.State().CanRecord() {
		r.mu.Unlock()
		return ErrNoActiveStream
	}
	dir := r.dir
	r.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &RecordingIOError{Path: dir, Err: err}
	}

	startedAt := time.Now()
	filePath := filepath.Join(dir, FileName(stationName, startedAt))
	tempPath := filePath + ".part"

	f, err := r.create(tempPath)
	if err != nil {
		return &RecordingIOError{Path: tempPath, Err: err}
	}

	sink := newChanSink()

	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		f.Close()
		os.Remove(tempPath)
		return ErrBusy
	}
	id := uuid.NewString()
	r.active = true
	r.id = id
	r.filePath = filePath
	r.tempPath = tempPath
	r.startedAt = startedAt
	r.sink = sink
	r.writeErr = nil
	r.mu.Unlock()

	if err := r.source.AttachTap(sink); err != nil {
		sink.Close()
		f.Close()
		os.Remove(tempPath)
		r.mu.Lock()
		r.active = false
		r.sink = nil
		r.mu.Unlock()
		return ErrBusy
	}

	r.wg.Add(1)
	go r.writeLoop(f, sink, tempPath)

	log.Info().Str("session", id).Str("station", stationName).Str("path", filePath).Msg("recording started")
	r.notifyState()
	return nil
}

// Stop ends the current recording and moves the file into place. Stopping an
// inactive recorder is a no-op.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return nil
	}
	sink := r.sink
	tempPath := r.tempPath
	filePath := r.filePath
	id := r.id
	r.active = false
	r.mu.Unlock()

	r.source.DetachTap(sink)
	sink.Close()
	r.wg.Wait()

	r.mu.Lock()
	werr := r.writeErr
	r.sink = nil
	r.mu.Unlock()

	if werr != nil {
		os.Remove(tempPath)
		r.notifyState()
		return werr
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		os.Remove(tempPath)
		r.notifyState()
		return &RecordingIOError{Path: filePath, Err: err}
	}

	log.Info().Str("session", id).Str("path", filePath).Msg("recording saved")
	r.notifyState()
	return nil
}

// writeLoop drains the sink into the temp file. The first write is aligned to
// an MP3 frame boundary so the file does not open with a partial frame.
func (r *Recorder) writeLoop(f recordingFile, sink *chanSink, tempPath string) {
	defer r.wg.Done()

	w := bufio.NewWriterSize(f, writeBufferSize)
	synced := false
	scanned := 0

	for chunk := range sink.ch {
		if !synced {
			off := findFrameSync(chunk)
			if off < 0 {
				scanned += len(chunk)
				if scanned < syncSearchLimit {
					continue
				}
				// No sync word in the leading bytes, capture as-is.
				synced = true
			} else {
				chunk = chunk[off:]
				synced = true
			}
		}
		if _, err := w.Write(chunk); err != nil {
			r.failWrite(f, sink, tempPath, err)
			return
		}
	}

	if err := w.Flush(); err != nil {
		r.failWrite(f, sink, tempPath, err)
		return
	}
	if err := f.Sync(); err != nil {
		r.failWrite(f, sink, tempPath, err)
		return
	}
	if err := f.Close(); err != nil {
		r.failWrite(f, sink, tempPath, err)
	}
}

// failWrite tears the recording down after a disk failure. When the failure
// happens mid-recording (not during Stop) the error callback is notified.
func (r *Recorder) failWrite(f recordingFile, sink *chanSink, tempPath string, err error) {
	ioErr := &RecordingIOError{Path: tempPath, Err: err}
	f.Close()
	os.Remove(tempPath)

	r.mu.Lock()
	wasActive := r.active
	r.active = false
	r.writeErr = ioErr
	errCb := r.errorCallback
	r.mu.Unlock()

	r.source.DetachTap(sink)
	sink.Close()

	log.Error().Err(err).Str("path", tempPath).Msg("recording write failed")
	if wasActive {
		if errCb != nil {
			errCb(ioErr)
		}
		r.notifyState()
	}
}

func (r *Recorder) notifyState() {
	state := r.State()
	r.mu.Lock()
	fn := r.stateCallback
	r.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

// FileName derives the recording file name from the station and start time,
// e.g. "Jazz FM_20240101_120000.mp3".
func FileName(stationName string, startedAt time.Time) string {
	return fmt.Sprintf("%s_%s.mp3", sanitizeStationName(stationName), startedAt.Format(timestampLayout))
}

var unsafeNameChars = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
	"\"", "-", "<", "-", ">", "-", "|", "-",
)

// sanitizeStationName keeps station names readable while replacing characters
// that are hostile to common filesystems.
func sanitizeStationName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "station"
	}
	name = unsafeNameChars.Replace(name)
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '-'
		}
		return r
	}, name)
}
