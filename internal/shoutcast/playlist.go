package shoutcast

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// playlistKind classifies a fetched URL body
type playlistKind int

const (
	kindStream playlistKind = iota
	kindPLS
	kindM3U
)

// parsePLS returns the first File entry of a PLS playlist
func parsePLS(body io.Reader) (string, error) {
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "File") {
			continue
		}
		if _, value, found := strings.Cut(line, "="); found {
			if url := strings.TrimSpace(value); url != "" {
				return url, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read playlist: %w", err)
	}
	return "", fmt.Errorf("no stream URL found in PLS playlist")
}

// parseM3U returns the first URL entry of an M3U playlist
func parseM3U(body io.Reader) (string, error) {
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read playlist: %w", err)
	}
	return "", fmt.Errorf("no stream URL found in M3U playlist")
}

// classifyPlaylist decides whether a fetched body is a PLS or M3U playlist
// rather than the stream itself
func classifyPlaylist(url, contentType, content string) playlistKind {
	switch {
	case strings.Contains(contentType, "audio/x-scpls"),
		strings.Contains(contentType, "application/pls+xml"),
		strings.HasSuffix(url, ".pls"),
		strings.Contains(content, "[playlist]"),
		strings.Contains(content, "File1="):
		return kindPLS
	case strings.Contains(contentType, "audio/mpegurl"),
		strings.Contains(contentType, "application/vnd.apple.mpegurl"),
		strings.HasSuffix(url, ".m3u"),
		strings.HasSuffix(url, ".m3u8"),
		strings.Contains(content, "#EXTM3U"),
		strings.HasPrefix(strings.TrimSpace(content), "http://"),
		strings.HasPrefix(strings.TrimSpace(content), "https://"):
		return kindM3U
	default:
		return kindStream
	}
}

// resolveStreamURL resolves a playlist URL (.pls/.m3u) to the stream URL it
// points at. Direct stream URLs are returned unchanged without a probe.
func resolveStreamURL(url string) (string, error) {
	if !looksLikePlaylistURL(url) {
		return url, nil
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Transport: streamTransport(), Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch playlist: %w", err)
	}
	defer resp.Body.Close()

	// A playlist URL can still answer with the stream itself.
	if resp.Header.Get("icy-metaint") != "" {
		return url, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("failed to read playlist body: %w", err)
	}
	content := string(body)

	switch classifyPlaylist(url, resp.Header.Get("Content-Type"), content) {
	case kindPLS:
		return parsePLS(strings.NewReader(content))
	case kindM3U:
		return parseM3U(strings.NewReader(content))
	default:
		return "", fmt.Errorf("URL is not a stream or playlist (Content-Type: %s)", resp.Header.Get("Content-Type"))
	}
}

// looksLikePlaylistURL reports whether the URL path names a playlist file
func looksLikePlaylistURL(url string) bool {
	trimmed := url
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.HasSuffix(trimmed, ".pls") ||
		strings.HasSuffix(trimmed, ".m3u") ||
		strings.HasSuffix(trimmed, ".m3u8")
}
