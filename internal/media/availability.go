package media

import (
	"strings"

	apiyoutube "google.golang.org/api/youtube/v3"
)

// Obtainable reports whether an audio extraction may be offered for a
// piece of content: either the provider does not mark it as licensed,
// or its description grants a Creative Commons licence.
func Obtainable(licensed bool, description string) bool {
	return !licensed || strings.Contains(strings.ToLower(description), "creative commons")
}

// ObtainableVideo applies the obtainability rule to a Data API video
// resource. A response missing contentDetails is treated as licensed,
// leaving the description scan as the only path to obtainability.
func ObtainableVideo(video *apiyoutube.Video) bool {
	licensed := true
	if video.ContentDetails != nil {
		licensed = video.ContentDetails.LicensedContent
	}

	description := ""
	if video.Snippet != nil {
		description = video.Snippet.Description
	}

	return Obtainable(licensed, description)
}
