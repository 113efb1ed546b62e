package shoutcast

import (
	"bufio"
	"bytes"
	"io"
	"testing"
)

// buildICYBody frames audio chunks with ICY metadata blocks every metaint bytes
func buildICYBody(metaint int, audio []byte, titles []string) []byte {
	var out bytes.Buffer
	pos := 0
	block := 0
	for pos < len(audio) {
		end := pos + metaint
		if end > len(audio) {
			// Trailing partial chunk without a metadata block
			out.Write(audio[pos:])
			break
		}
		out.Write(audio[pos:end])
		pos = end

		if block < len(titles) {
			meta := []byte("StreamTitle='" + titles[block] + "';")
			for len(meta)%16 != 0 {
				meta = append(meta, 0)
			}
			out.WriteByte(byte(len(meta) / 16))
			out.Write(meta)
		} else {
			out.WriteByte(0)
		}
		block++
	}
	return out.Bytes()
}

func newTestStream(body []byte, metaint int) *Stream {
	rc := io.NopCloser(bytes.NewReader(body))
	return &Stream{
		metaint: metaint,
		r:       bufio.NewReader(rc),
		body:    rc,
	}
}

func TestStream_Read_StripsMetadata(t *testing.T) {
	audio := bytes.Repeat([]byte{0xAB}, 64)
	body := buildICYBody(16, audio, []string{"First Song", "Second Song"})

	s := newTestStream(body, 16)

	var titles []string
	s.MetadataCallbackFunc = func(m *Metadata) {
		titles = append(titles, m.StreamTitle)
	}

	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}

	if !bytes.Equal(got, audio) {
		t.Errorf("Read returned %d bytes, expected %d clean audio bytes", len(got), len(audio))
	}
	for _, b := range got {
		if b != 0xAB {
			t.Fatal("metadata bytes leaked into audio output")
		}
	}

	if len(titles) != 2 || titles[0] != "First Song" || titles[1] != "Second Song" {
		t.Errorf("metadata callbacks = %v, expected both titles in order", titles)
	}
}

func TestStream_Read_NoCallbackWhenUnchanged(t *testing.T) {
	audio := bytes.Repeat([]byte{0x01}, 48)
	body := buildICYBody(16, audio, []string{"Same", "Same", "Same"})

	s := newTestStream(body, 16)

	calls := 0
	s.MetadataCallbackFunc = func(m *Metadata) { calls++ }

	if _, err := io.ReadAll(s); err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if calls != 1 {
		t.Errorf("callback fired %d times for unchanged metadata, expected 1", calls)
	}
}

func TestStream_Read_NoMetaint(t *testing.T) {
	audio := bytes.Repeat([]byte{0x7F}, 100)
	s := newTestStream(audio, 0)

	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Error("stream without icy-metaint should pass audio through unchanged")
	}
}

func TestStream_Read_SmallBuffers(t *testing.T) {
	audio := bytes.Repeat([]byte{0x55}, 32)
	body := buildICYBody(16, audio, []string{"Tiny Reads"})

	s := newTestStream(body, 16)

	var got []byte
	buf := make([]byte, 3)
	for {
		n, err := s.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
	}

	if !bytes.Equal(got, audio) {
		t.Errorf("small-buffer reads returned %d bytes, expected %d", len(got), len(audio))
	}
}

func TestStream_Read_TruncatedMetadata(t *testing.T) {
	var body bytes.Buffer
	body.Write(bytes.Repeat([]byte{0x02}, 16))
	body.WriteByte(2) // promises 32 metadata bytes
	body.WriteString("StreamTitle='cut")

	s := newTestStream(body.Bytes(), 16)

	_, err := io.ReadAll(s)
	if err != io.ErrUnexpectedEOF {
		t.Errorf("truncated metadata block: err = %v, expected io.ErrUnexpectedEOF", err)
	}
}
