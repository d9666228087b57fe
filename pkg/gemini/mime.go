package gemini

import "bytes"

// DetectMIMEType sniffs an image content type from the buffer's magic
// bytes. Unknown signatures fall back to image/jpeg, matching what the
// upstream services already tolerate; the fallback is wrong for exotic
// formats but changing it would break existing clients.
func DetectMIMEType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "image/png"
	case bytes.HasPrefix(data, []byte("GIF")):
		return "image/gif"
	case len(data) >= 12 && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
