package shoutcast

import "strings"

// Metadata is an ICY in-band metadata block. StreamTitle is the only field
// stations reliably populate.
type Metadata struct {
	StreamTitle string
	StreamURL   string
}

// Equals reports whether two metadata blocks carry the same values
func (m *Metadata) Equals(other *Metadata) bool {
	if other == nil {
		return false
	}
	return m.StreamTitle == other.StreamTitle && m.StreamURL == other.StreamURL
}

// NewMetadata parses a raw ICY metadata block of the form
// "StreamTitle='...';StreamUrl='...';" padded with NUL bytes.
func NewMetadata(raw []byte) *Metadata {
	m := &Metadata{}

	text := strings.TrimRight(string(raw), "\x00")
	for _, pair := range strings.Split(text, "';") {
		key, value, found := strings.Cut(pair, "='")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "streamtitle":
			m.StreamTitle = value
		case "streamurl":
			m.StreamURL = value
		}
	}

	return m
}
