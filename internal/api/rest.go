package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tunegrab/tunegrab/internal/api/downloads"
	"github.com/tunegrab/tunegrab/internal/api/tracks"
	"github.com/tunegrab/tunegrab/pkg/logger"
)

var log = logger.Get("API")

const welcomeMessage = "Welcome to the Tunegrab audio extraction API"

type (
	RestConfig struct {
		HostAddr string `yaml:"host" env:"HOST_ADDR" env-default:"0.0.0.0"`
		HostPort string `yaml:"port" env:"HOST_PORT" env-default:"8000"`
		// DeliveryMode selects how extracted audio reaches the caller:
		// "stream" sends it back as a transient attachment, "static"
		// keeps the file and serves it from a static route.
		DeliveryMode string `yaml:"delivery_mode" env:"DELIVERY_MODE" env-default:"stream"`
	}

	controller interface {
		SetRoutes(*echo.Group)
	}

	// videoSource is the union of the controllers' metadata source
	// requirements.
	videoSource interface {
		tracks.Source
		downloads.Source
	}

	// The RestGateway is a thin wrapper around the Echo HTTP router. Its
	// sole responsibility is to create the routes the service exposes
	// and manage the router's lifecycle.
	RestGateway struct {
		config             *RestConfig
		ec                 *echo.Echo
		trackController    controller
		downloadController controller
	}
)

// NewRestGateway constructs the Echo router and populates it with the
// routes defined by the controllers. The metadata source and downloader
// are provided as arguments so tests can substitute stubs.
func NewRestGateway(config *RestConfig, source videoSource, downloader downloads.Downloader, downloadDirPath string) *RestGateway {
	ec := echo.New()
	ec.OnAddRouteHandler = func(host string, route echo.Route, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc) {
		log.Emit(logger.DEBUG, "Registered new route %s %s\n", route.Method, route.Path)
	}
	ec.HidePort = true
	ec.HideBanner = true

	validate := validator.New()
	staticDelivery := config.DeliveryMode == "static"
	gateway := &RestGateway{
		config:             config,
		ec:                 ec,
		trackController:    tracks.New(validate, source, staticDelivery),
		downloadController: downloads.New(validate, source, downloader, staticDelivery),
	}

	ec.Use(middleware.Logger())
	ec.Use(middleware.Recover())
	ec.Use(middleware.CORS())
	ec.Pre(middleware.AddTrailingSlash())

	ec.GET("/", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{"message": welcomeMessage})
	})
	ec.GET("/favicon.ico/", func(ec echo.Context) error {
		return ec.NoContent(http.StatusOK)
	})

	processLink := ec.Group("/process-link")
	gateway.trackController.SetRoutes(processLink)

	download := ec.Group("/download")
	gateway.downloadController.SetRoutes(download)

	if staticDelivery {
		ec.Static(tracks.StaticRoutePrefix, downloadDirPath)
	}

	return gateway
}

// ServeHTTP dispatches a request through the underlying router,
// allowing the gateway to be driven directly by httptest.
func (gateway *RestGateway) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	gateway.ec.ServeHTTP(writer, request)
}

func (gateway *RestGateway) Run(parentCtx context.Context) error {
	ctx, ctxCancel := context.WithCancelCause(parentCtx)
	wg := &sync.WaitGroup{}

	// Start echo router
	wg.Add(1)
	go func() {
		defer wg.Done()
		addr := fmt.Sprintf("%s:%s", gateway.config.HostAddr, gateway.config.HostPort)
		if err := gateway.ec.Start(addr); err != nil {
			ctxCancel(err)
		}
	}()

	// Close the router once the context is cancelled
	go func(ec *echo.Echo) {
		<-ctx.Done()
		ec.Close()
	}(gateway.ec)

	wg.Wait()

	// Return cancellation cause if any, otherwise nil as parent context
	// cancellation is not an error case we should report.
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}
