package youtube

import "strings"

// ExtractVideoID derives the video identifier from a user-supplied link.
// Standard watch URLs take the value of the 'v' parameter; any other
// shape (youtu.be, shorts, bare IDs) falls back to the final path
// segment. The ID is not validated here; a malformed link produces a
// malformed ID which the Data API rejects as not-found.
func ExtractVideoID(link string) string {
	if strings.Contains(link, "watch?v=") {
		id := link[strings.Index(link, "v=")+len("v="):]
		if amp := strings.Index(id, "&"); amp != -1 {
			id = id[:amp]
		}

		return trimQuerySuffix(id)
	}

	segments := strings.Split(link, "/")
	return trimQuerySuffix(segments[len(segments)-1])
}

func trimQuerySuffix(id string) string {
	if q := strings.Index(id, "?"); q != -1 {
		return id[:q]
	}

	return id
}
