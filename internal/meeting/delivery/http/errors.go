package http

import (
	"errors"
	"net/http"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/internal/meeting/repository/notion"
	"meeting-assistant/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors. Remote API
// failures keep their raw message so the response body reaches the operator.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, meeting.ErrSessionNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, meeting.ErrMissingAIKey),
		errors.Is(err, meeting.ErrMissingWorkspace),
		errors.Is(err, meeting.ErrNoAudio),
		errors.Is(err, meeting.ErrInvalidAudio),
		errors.Is(err, meeting.ErrNoTasks):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, meeting.ErrExtractionTimeout):
		return response.NewHTTPError(http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, meeting.ErrEmptyExtraction),
		errors.Is(err, meeting.ErrMalformedExtraction),
		errors.Is(err, meeting.ErrNothingPublished):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return response.NewHTTPError(http.StatusInternalServerError, err.Error())
}
