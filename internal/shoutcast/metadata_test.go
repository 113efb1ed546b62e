package shoutcast

import "testing"

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		raw      string
		title    string
		url      string
	}{
		{"StreamTitle='Miles Davis - So What';", "Miles Davis - So What", ""},
		{"StreamTitle='Song';StreamUrl='http://example.com';", "Song", "http://example.com"},
		{"StreamTitle='';", "", ""},
		{"", "", ""},
	}

	for _, test := range tests {
		// ICY blocks are NUL padded to a multiple of 16 bytes
		raw := []byte(test.raw)
		for len(raw)%16 != 0 {
			raw = append(raw, 0)
		}

		m := NewMetadata(raw)
		if m.StreamTitle != test.title {
			t.Errorf("NewMetadata(%q).StreamTitle = %q, expected %q", test.raw, m.StreamTitle, test.title)
		}
		if m.StreamURL != test.url {
			t.Errorf("NewMetadata(%q).StreamURL = %q, expected %q", test.raw, m.StreamURL, test.url)
		}
	}
}

func TestNewMetadata_TitleWithApostrophe(t *testing.T) {
	m := NewMetadata([]byte("StreamTitle='Don't Stop Believin';"))
	if m.StreamTitle != "Don't Stop Believin" {
		t.Errorf("StreamTitle = %q, expected apostrophe preserved", m.StreamTitle)
	}
}

func TestMetadata_Equals(t *testing.T) {
	a := &Metadata{StreamTitle: "Song"}
	b := &Metadata{StreamTitle: "Song"}
	c := &Metadata{StreamTitle: "Other"}

	if !a.Equals(b) {
		t.Error("identical metadata should be equal")
	}
	if a.Equals(c) {
		t.Error("different metadata should not be equal")
	}
	if a.Equals(nil) {
		t.Error("metadata should not equal nil")
	}
}
