// Package audioinfo inspects WAV containers uploaded by the operator.
package audioinfo

import (
	"bytes"
	"errors"
	"time"

	"github.com/go-audio/wav"
)

// ErrInvalidWAV is returned when the payload is not a decodable WAV file.
var ErrInvalidWAV = errors.New("payload is not a valid WAV file")

// Info describes a WAV clip.
type Info struct {
	Duration   time.Duration
	SampleRate int
	Channels   int
	BitDepth   int
}

// Inspect parses the WAV header of the given payload.
func Inspect(data []byte) (Info, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return Info{}, ErrInvalidWAV
	}

	dur, err := dec.Duration()
	if err != nil {
		return Info{}, ErrInvalidWAV
	}

	return Info{
		Duration:   dur,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}, nil
}
