package shoutcast

import (
	"strings"
	"testing"
)

func TestParsePLS(t *testing.T) {
	body := `[playlist]
NumberOfEntries=2
File1=http://ice.somafm.com/groovesalad-128-mp3
Title1=SomaFM: Groove Salad
File2=http://ice2.somafm.com/groovesalad-128-mp3
`
	url, err := parsePLS(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parsePLS returned error: %v", err)
	}
	if url != "http://ice.somafm.com/groovesalad-128-mp3" {
		t.Errorf("parsePLS = %q, expected first File entry", url)
	}
}

func TestParsePLS_Empty(t *testing.T) {
	_, err := parsePLS(strings.NewReader("[playlist]\nNumberOfEntries=0\n"))
	if err == nil {
		t.Error("parsePLS should fail when no File entries exist")
	}
}

func TestParseM3U(t *testing.T) {
	body := `#EXTM3U
#EXTINF:-1,Jazz24
https://live.amperwave.net/direct/ppm-jazz24mp3-ibc1
`
	url, err := parseM3U(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parseM3U returned error: %v", err)
	}
	if url != "https://live.amperwave.net/direct/ppm-jazz24mp3-ibc1" {
		t.Errorf("parseM3U = %q, expected stream URL", url)
	}
}

func TestParseM3U_CommentsOnly(t *testing.T) {
	_, err := parseM3U(strings.NewReader("#EXTM3U\n#EXTINF:-1,Nothing\n"))
	if err == nil {
		t.Error("parseM3U should fail when no URLs exist")
	}
}

func TestClassifyPlaylist(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType string
		content     string
		expected    playlistKind
	}{
		{"pls content type", "http://x/s", "audio/x-scpls", "", kindPLS},
		{"pls extension", "http://x/s.pls", "text/plain", "", kindPLS},
		{"pls body marker", "http://x/s", "text/plain", "[playlist]\nFile1=http://y", kindPLS},
		{"m3u content type", "http://x/s", "audio/mpegurl", "", kindM3U},
		{"m3u extension", "http://x/high.m3u", "text/plain", "", kindM3U},
		{"m3u body marker", "http://x/s", "text/plain", "#EXTM3U\nhttp://y", kindM3U},
		{"bare url body", "http://x/s", "text/plain", "http://y/stream", kindM3U},
		{"mp3 stream", "http://x/stream", "audio/mpeg", "", kindStream},
	}

	for _, test := range tests {
		result := classifyPlaylist(test.url, test.contentType, test.content)
		if result != test.expected {
			t.Errorf("%s: classifyPlaylist = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestLooksLikePlaylistURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://jazz24.org/streams/high.m3u", true},
		{"http://stream.abacast.net/playlist/classic-rock-florida-hd-48k.m3u", true},
		{"http://somafm.com/groovesalad130.pls", true},
		{"http://x/playlist.m3u8", true},
		{"http://x/playlist.m3u?session=1", true},
		{"http://icecast.timlradio.co.uk/ac-high.mp3", false},
		{"http://mp3.webradio.antenne.de:80/rockantenne/stream", false},
	}

	for _, test := range tests {
		result := looksLikePlaylistURL(test.url)
		if result != test.expected {
			t.Errorf("looksLikePlaylistURL(%s) = %v, expected %v", test.url, result, test.expected)
		}
	}
}
