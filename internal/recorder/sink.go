package recorder

import (
	"io"
	"sync"
)

// sinkBufferChunks bounds how far the file writer may fall behind before
// chunks are dropped. At typical stream bitrates this is well over a minute
// of audio.
const sinkBufferChunks = 1024

// chanSink is the io.Writer handed to the playback tap. Writes never block:
// when the buffer is full the chunk is dropped so a stalled disk can not
// stall audio.
type chanSink struct {
	mu     sync.Mutex
	ch     chan []byte
	closed bool
}

func newChanSink() *chanSink {
	return &chanSink{ch: make(chan []byte, sinkBufferChunks)}
}

func (s *chanSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, io.ErrClosedPipe
	}
	// The caller reuses p between reads, so the chunk must be copied before
	// it crosses the channel.
	buf := make([]byte, len(p))
	copy(buf, p)
	select {
	case s.ch <- buf:
	default:
	}
	return len(p), nil
}

func (s *chanSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.ch)
	return nil
}
