package youtube

import (
	"context"
	"errors"

	"github.com/tunegrab/tunegrab/pkg/logger"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	apiyoutube "google.golang.org/api/youtube/v3"
)

var log = logger.Get("YouTube")

type (
	Config struct {
		APIKey string
	}

	// videoSource is the metadata lookup used by the track and download
	// controllers to resolve a video ID against the YouTube Data API.
	// See https://developers.google.com/youtube/v3/docs/videos/list for
	// information on the underlying endpoint.
	videoSource struct {
		service *apiyoutube.Service
	}
)

// NewSource constructs the Data API client eagerly when an API key is
// available. A missing key is not fatal here; lookups against an
// unconfigured source fail with ErrNotConfigured so that the absence is
// reported per-request rather than swallowed at startup.
func NewSource(config Config) *videoSource {
	if config.APIKey == "" {
		log.Emit(logger.WARNING, "No YouTube API key configured, metadata lookups will be rejected\n")
		return &videoSource{}
	}

	service, err := apiyoutube.NewService(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		log.Emit(logger.ERROR, "Failed to initialise YouTube Data API client: %s\n", err.Error())
		return &videoSource{}
	}

	return &videoSource{service: service}
}

// Video fetches the snippet and contentDetails parts for the video with
// the provided ID. An error will be raised if:
//   - The source was constructed without a usable API key
//   - The Data API request fails
//   - The Data API reports no video for the ID
func (source *videoSource) Video(ctx context.Context, videoID string) (*apiyoutube.Video, error) {
	if source.service == nil {
		return nil, ErrNotConfigured
	}

	response, err := source.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return nil, &FailedRequestError{httpCode: apiErr.Code, message: apiErr.Message}
		}

		return nil, &UnknownRequestError{reason: err.Error()}
	}

	if len(response.Items) == 0 {
		return nil, &NoResultError{VideoID: videoID}
	}

	return response.Items[0], nil
}
