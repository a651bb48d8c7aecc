package youtube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tunegrab/tunegrab/internal/http/youtube"
)

func TestExtractVideoID(t *testing.T) {
	tests := map[string]struct {
		link     string
		expected string
	}{
		"watch URL":                        {"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		"watch URL with extra params":      {"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=2", "dQw4w9WgXcQ"},
		"watch URL with query suffix":      {"https://www.youtube.com/watch?v=dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ"},
		"short URL":                        {"https://youtu.be/abc123", "abc123"},
		"short URL with tracking":          {"https://youtu.be/abc123?si=xyz", "abc123"},
		"shorts URL":                       {"https://www.youtube.com/shorts/xYz_90", "xYz_90"},
		"bare identifier":                  {"abc123", "abc123"},
		"malformed link passes through ID": {"https://example.com/not/a/video", "video"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, youtube.ExtractVideoID(test.link))
		})
	}
}
