package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultUploadURL is the default endpoint for media uploads
	DefaultUploadURL = "https://generativelanguage.googleapis.com/upload/v1beta"

	// GenerationTimeout bounds a single generation call. Long recordings can
	// take minutes to process server-side.
	GenerationTimeout = 600 * time.Second
)
