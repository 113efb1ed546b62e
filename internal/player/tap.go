package player

import "io"

// tapReadCloser mirrors every byte the decoder reads from the stream into the
// tap before handing it on. The tap sees the raw MP3 bytes, not decoded PCM.
type tapReadCloser struct {
	src io.ReadCloser
	tap func(p []byte)
}

func (t *tapReadCloser) Read(p []byte) (int, error) {
	n, err := t.src.Read(p)
	if n > 0 {
		t.tap(p[:n])
	}
	return n, err
}

func (t *tapReadCloser) Close() error {
	return t.src.Close()
}
