package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tunegrab/tunegrab/internal/api"
	"github.com/tunegrab/tunegrab/internal/api/tracks"
	"github.com/tunegrab/tunegrab/pkg/logger"
	apiyoutube "google.golang.org/api/youtube/v3"
)

func init() {
	logger.SetMinLoggingLevel(logger.FATAL.Level())
}

type stubSource struct {
	video *apiyoutube.Video
	err   error
}

func (source *stubSource) Video(ctx context.Context, videoID string) (*apiyoutube.Video, error) {
	return source.video, source.err
}

type stubDownloader struct{}

func (downloader *stubDownloader) Audio(ctx context.Context, link string, videoID string) (string, error) {
	return "", nil
}

func newGateway(source *stubSource) *api.RestGateway {
	config := &api.RestConfig{HostAddr: "127.0.0.1", HostPort: "0", DeliveryMode: "stream"}
	return api.NewRestGateway(config, source, &stubDownloader{}, "downloads")
}

func serve(gateway *api.RestGateway, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	gateway.ServeHTTP(recorder, request)

	return recorder
}

func TestWelcomeRoute(t *testing.T) {
	recorder := serve(newGateway(&stubSource{}), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Welcome")
}

func TestFaviconRouteIsEmpty(t *testing.T) {
	recorder := serve(newGateway(&stubSource{}), httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestProcessLinkEndToEnd(t *testing.T) {
	source := &stubSource{video: &apiyoutube.Video{
		Snippet: &apiyoutube.VideoSnippet{
			Title:        "Artist - Song",
			ChannelTitle: "Artist Channel",
			Description:  "Artist - Song\nAlbum: Greatest Hits\nMore text",
		},
		ContentDetails: &apiyoutube.VideoContentDetails{Duration: "PT3M33S", LicensedContent: false},
	}}

	// No trailing slash on purpose; the gateway's pre-middleware adds it
	request := httptest.NewRequest(http.MethodPost, "/process-link", strings.NewReader(`{"url": "https://youtu.be/abc123"}`))
	request.Header.Set("Content-Type", "application/json")

	recorder := serve(newGateway(source), request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response tracks.ProcessResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Artist - Song", response.Metadata.Title)
	assert.Equal(t, "3:33", *response.Metadata.Duration)
	assert.Equal(t, "Greatest Hits", *response.Metadata.Album)
	assert.True(t, response.DownloadAvailable)
}
