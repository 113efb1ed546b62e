package shoutcast

// Package shoutcast provides ICY/Shoutcast stream reading for the player:
//   - Playlist resolution: .pls and .m3u URLs are resolved to the actual stream URL
//   - Metadata stripping: ICY metadata blocks are parsed out so Read returns only
//     audio bytes; title changes are surfaced through a callback
//   - No client timeout on the open stream so long-running playback and recording
//     are supported
