package shoutcast

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	userAgent   = "NetRadio/1.0"
	dialTimeout = 5 * time.Second
	// Timeout for the response headers only; the body is a live stream and
	// must never time out.
	headerTimeout = 10 * time.Second
)

// MetadataCallbackFunc is called when the in-band stream metadata changes
type MetadataCallbackFunc func(m *Metadata)

// Stream is an open Icecast/Shoutcast stream. Read returns audio bytes only;
// ICY metadata blocks are parsed out and reported via MetadataCallbackFunc.
type Stream struct {
	// Station info from the ICY response headers
	Name        string
	Genre       string
	Description string
	Bitrate     int
	ContentType string

	// Optional function invoked when stream metadata changes
	MetadataCallbackFunc MetadataCallbackFunc

	// Bytes of audio between metadata blocks; 0 if the server sends none
	metaint int

	// Audio bytes read since the last metadata block
	pos int

	metadata *Metadata

	r    *bufio.Reader
	body io.Closer
}

// Open establishes a connection to a remote station. Playlist URLs
// (.pls, .m3u) are resolved to the stream URL they point at.
func Open(url string) (*Stream, error) {
	resolved, err := resolveStreamURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve stream URL: %w", err)
	}
	if resolved != url {
		log.Debug().Str("url", url).Str("resolved", resolved).Msg("Resolved playlist to stream URL")
		url = resolved
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Icy-MetaData", "1")

	client := &http.Client{Transport: streamTransport()}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("stream returned status %d: %s", resp.StatusCode, resp.Status)
	}

	// Stations that send no icy-metaint deliver raw audio with no metadata.
	metaint := 0
	if raw := resp.Header.Get("icy-metaint"); raw != "" {
		metaint, err = strconv.Atoi(raw)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("cannot parse icy-metaint %q: %w", raw, err)
		}
	}

	bitrate := 0
	if raw := resp.Header.Get("icy-br"); raw != "" {
		// Some stations send junk here; treat it as absent.
		if br, brErr := strconv.Atoi(raw); brErr == nil {
			bitrate = br
		}
	}

	s := &Stream{
		Name:        resp.Header.Get("icy-name"),
		Genre:       resp.Header.Get("icy-genre"),
		Description: resp.Header.Get("icy-description"),
		Bitrate:     bitrate,
		ContentType: resp.Header.Get("Content-Type"),
		metaint:     metaint,
		r:           bufio.NewReader(resp.Body),
		body:        resp.Body,
	}

	log.Info().
		Str("name", s.Name).
		Str("content_type", s.ContentType).
		Int("bitrate", s.Bitrate).
		Int("metaint", s.metaint).
		Msg("Stream opened")

	return s, nil
}

// streamTransport dials with a timeout but leaves the open stream untimed
func streamTransport() *http.Transport {
	return &http.Transport{
		DialContext:           (&net.Dialer{Timeout: dialTimeout}).DialContext,
		ResponseHeaderTimeout: headerTimeout,
		DisableCompression:    true,
	}
}

// Read implements io.Reader, returning only audio bytes
func (s *Stream) Read(p []byte) (int, error) {
	if s.metaint <= 0 {
		return s.r.Read(p)
	}

	if s.pos == s.metaint {
		if err := s.readMetaBlock(); err != nil {
			return 0, err
		}
		s.pos = 0
	}

	// Never read past the next metadata boundary.
	limit := s.metaint - s.pos
	if limit > len(p) {
		limit = len(p)
	}

	n, err := s.r.Read(p[:limit])
	s.pos += n
	return n, err
}

// readMetaBlock consumes one ICY metadata block at the current boundary
func (s *Stream) readMetaBlock() error {
	lenByte, err := s.r.ReadByte()
	if err != nil {
		return err
	}

	blockLen := int(lenByte) * 16
	if blockLen == 0 {
		return nil
	}

	raw := make([]byte, blockLen)
	if _, err := io.ReadFull(s.r, raw); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	if m := NewMetadata(raw); !m.Equals(s.metadata) {
		s.metadata = m
		log.Debug().Str("title", m.StreamTitle).Msg("Stream metadata changed")
		if s.MetadataCallbackFunc != nil {
			s.MetadataCallbackFunc(m)
		}
	}
	return nil
}

// Close closes the underlying connection
func (s *Stream) Close() error {
	log.Debug().Str("name", s.Name).Msg("Closing stream")
	return s.body.Close()
}
