package tracks

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/tunegrab/tunegrab/internal/api/util"
	"github.com/tunegrab/tunegrab/internal/http/youtube"
	"github.com/tunegrab/tunegrab/internal/media"
	apiyoutube "google.golang.org/api/youtube/v3"
)

type (
	ProcessRequest struct {
		URL string `json:"url" validate:"required"`
	}

	// ProcessResponse is the reply shape for stream delivery: the caller
	// is told whether a subsequent download request would be allowed.
	ProcessResponse struct {
		Metadata          media.Track `json:"metadata"`
		DownloadAvailable bool        `json:"download_available"`
	}

	// StaticProcessResponse is the reply shape for static delivery: an
	// obtainable video yields the URL the extracted file will be served
	// from, a non-obtainable one yields null.
	StaticProcessResponse struct {
		Metadata    media.Track `json:"metadata"`
		DownloadURL *string     `json:"download_url"`
	}

	Source interface {
		Video(ctx context.Context, videoID string) (*apiyoutube.Video, error)
	}

	// Controller inspects a link: it derives the video ID, fetches the
	// metadata from the source and reports the normalised record along
	// with the delivery information for the configured mode.
	Controller struct {
		validate       *validator.Validate
		source         Source
		staticDelivery bool
	}
)

// StaticRoutePrefix is where the gateway mounts the download directory
// when static delivery is enabled.
const StaticRoutePrefix = "/downloads"

func New(validate *validator.Validate, source Source, staticDelivery bool) *Controller {
	return &Controller{validate: validate, source: source, staticDelivery: staticDelivery}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/", controller.process)
}

func (controller *Controller) process(ec echo.Context) error {
	var request ProcessRequest
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

	track := media.TrackFromVideo(video)
	obtainable := media.ObtainableVideo(video)

	if controller.staticDelivery {
		var downloadURL *string
		if obtainable {
			url := fmt.Sprintf("%s/%s.mp3", StaticRoutePrefix, videoID)
			downloadURL = &url
		}

		return ec.JSON(http.StatusOK, StaticProcessResponse{Metadata: track, DownloadURL: downloadURL})
	}

	return ec.JSON(http.StatusOK, ProcessResponse{Metadata: track, DownloadAvailable: obtainable})
}
