package meeting

import "errors"

// Domain-specific errors for the meeting package.
var (
	ErrMissingAIKey        = errors.New("google API key is not configured")
	ErrMissingWorkspace    = errors.New("notion token or page ID is not configured")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNoAudio             = errors.New("no audio has been uploaded for this session")
	ErrInvalidAudio        = errors.New("uploaded payload is not a valid WAV file")
	ErrEmptyExtraction     = errors.New("extraction returned no text")
	ErrMalformedExtraction = errors.New("extraction result is not a valid JSON array")
	ErrExtractionTimeout   = errors.New("extraction timed out")
	ErrNoTasks             = errors.New("task batch is empty")
	ErrNothingPublished    = errors.New("no tasks were published")
)
