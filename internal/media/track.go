package media

import (
	"strings"

	apiyoutube "google.golang.org/api/youtube/v3"
)

// UnknownChannel is the placeholder used when the provider response
// carries no channel information for a video.
const UnknownChannel = "Unknown channel"

// Track is the normalised metadata record for a single video. Optional
// fields are pointers so that their absence survives the trip through
// JSON as null rather than a misleading zero value.
type Track struct {
	Title     string  `json:"title"`
	Channel   string  `json:"channel"`
	Duration  *string `json:"duration"`
	Thumbnail *string `json:"thumbnail"`
	Album     *string `json:"album"`
}

// TrackFromVideo flattens a Data API video resource into a Track,
// applying the normalisation rules for each field. Missing parts of the
// response degrade to unset fields, never to an error.
func TrackFromVideo(video *apiyoutube.Video) Track {
	track := Track{Channel: UnknownChannel}
	if video.Snippet != nil {
		track.Title = video.Snippet.Title
		if video.Snippet.ChannelTitle != "" {
			track.Channel = video.Snippet.ChannelTitle
		}

		track.Album = AlbumFromDescription(video.Snippet.Description)
		track.Thumbnail = thumbnailURL(video.Snippet.Thumbnails)
	}

	if video.ContentDetails != nil {
		track.Duration = FormatDuration(video.ContentDetails.Duration)
	}

	return track
}

// AlbumFromDescription scans the free-text description for an 'Album:'
// marker. The first line containing one yields everything after the
// marker, trimmed; descriptions without one yield nil.
func AlbumFromDescription(description string) *string {
	for _, line := range strings.Split(description, "\n") {
		if idx := strings.Index(line, "Album:"); idx != -1 {
			album := strings.TrimSpace(line[idx+len("Album:"):])
			return &album
		}
	}

	return nil
}

// thumbnailURL prefers the high-resolution variant, falling back over
// the remaining variants in order of descending usefulness.
func thumbnailURL(details *apiyoutube.ThumbnailDetails) *string {
	if details == nil {
		return nil
	}

	for _, thumbnail := range []*apiyoutube.Thumbnail{
		details.High,
		details.Default,
		details.Medium,
		details.Standard,
		details.Maxres,
	} {
		if thumbnail != nil && thumbnail.Url != "" {
			url := thumbnail.Url
			return &url
		}
	}

	return nil
}
