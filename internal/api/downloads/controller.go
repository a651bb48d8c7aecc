package downloads

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/tunegrab/tunegrab/internal/api/util"
	"github.com/tunegrab/tunegrab/internal/http/youtube"
	"github.com/tunegrab/tunegrab/internal/media"
	"github.com/tunegrab/tunegrab/pkg/logger"
	apiyoutube "google.golang.org/api/youtube/v3"
)

var log = logger.Get("DownloadsController")

type (
	DownloadRequest struct {
		URL string `json:"url" validate:"required"`
	}

	Source interface {
		Video(ctx context.Context, videoID string) (*apiyoutube.Video, error)
	}

	Downloader interface {
		Audio(ctx context.Context, link string, videoID string) (string, error)
	}

	// Controller serves the audio extraction itself. Obtainability is
	// re-derived from the source on every request rather than trusting
	// an earlier /process-link response.
	Controller struct {
		validate   *validator.Validate
		source     Source
		downloader Downloader
		keepFiles  bool
	}
)

func New(validate *validator.Validate, source Source, downloader Downloader, keepFiles bool) *Controller {
	return &Controller{validate: validate, source: source, downloader: downloader, keepFiles: keepFiles}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/", controller.download)
}

func (controller *Controller) download(ec echo.Context) error {
	var request DownloadRequest
	if err := ec.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("JSON body illegal: %v", err))
	}

	if err := controller.validate.Struct(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	videoID := youtube.ExtractVideoID(request.URL)
	video, err := controller.source.Video(ec.Request().Context(), videoID)
	if err != nil {
		return util.TranslateSourceError(err)
	}

	if !media.ObtainableVideo(video) {
		return echo.NewHTTPError(http.StatusForbidden, "video is not licensed for download")
	}

	path, err := controller.downloader.Audio(ec.Request().Context(), request.URL, videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !controller.keepFiles {
		// Deferred so the transient file is removed on every exit path,
		// including a client abort mid-stream.
		defer func() {
			if err := os.Remove(path); err != nil {
				log.Emit(logger.ERROR, "Failed to remove transient audio file %s: %s\n", path, err.Error())
			}
		}()
	}

	file, err := os.Open(path)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()

	ec.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.mp3", videoID))
	return ec.Stream(http.StatusOK, "audio/mpeg", file)
}
