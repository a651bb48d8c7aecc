package youtube

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates the Data API client could not be built,
// almost always because YOUTUBE_API_KEY is absent from the environment.
var ErrNotConfigured = errors.New("YouTube Data API client not initialised. Please check YOUTUBE_API_KEY")

type (
	FailedRequestError struct {
		httpCode int
		message  string
	}
	NoResultError       struct{ VideoID string }
	UnknownRequestError struct{ reason string }
)

func (err *FailedRequestError) Error() string {
	return fmt.Sprintf("request failure (HTTP %d): %s", err.httpCode, err.message)
}

func (err *NoResultError) Error() string {
	return fmt.Sprintf("no video found with ID '%s'", err.VideoID)
}

func (err *UnknownRequestError) Error() string {
	return fmt.Sprintf("unknown error occurred while communicating with YouTube: %s", err.reason)
}
