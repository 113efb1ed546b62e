package recorder

// syncSearchLimit caps how many leading bytes are scanned for a frame sync
// word before the capture starts unaligned.
const syncSearchLimit = 8192

// findFrameSync returns the offset of the first MP3 frame sync word, eleven
// set bits: 0xFF followed by a byte whose top three bits are set. Returns -1
// when no sync word is present.
func findFrameSync(data []byte) int {
	for i := 0; i+1 < len(data); i++ {
		if data[i] == 0xFF && data[i+1]&0xE0 == 0xE0 {
			return i
		}
	}
	return -1
}
