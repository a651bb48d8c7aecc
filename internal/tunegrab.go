package internal

import (
	"context"
	"sync"

	"github.com/tunegrab/tunegrab/internal/api"
	"github.com/tunegrab/tunegrab/internal/download"
	"github.com/tunegrab/tunegrab/internal/http/youtube"
	"github.com/tunegrab/tunegrab/pkg/logger"
)

var log = logger.Get("Core")

type RunnableService interface {
	Run(context.Context) error
}

// Tunegrab represents the top-level object for the server, responsible
// for constructing the metadata source, the downloader and the REST
// gateway, and for keeping them running until told to stop.
type tunegrabImpl struct {
	config      TunegrabConfig
	restGateway RunnableService
}

func New(config TunegrabConfig) *tunegrabImpl {
	log.Emit(logger.DEBUG, "Bootstrapping Tunegrab services using config: %#v\n", config)

	source := youtube.NewSource(youtube.Config{APIKey: config.YoutubeAPIKey})
	downloader := download.New(config.Download)

	return &tunegrabImpl{
		config:      config,
		restGateway: api.NewRestGateway(&config.Rest, source, downloader, config.Download.OutputDirPath),
	}
}

// Run brings up the REST gateway after provisioning the extraction
// tool. This function will not return until Tunegrab is stopped; to
// stop it, cancel the provided context. Errors from which the gateway
// cannot recover will also cause Tunegrab to stop.
func (tunegrab *tunegrabImpl) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	log.Emit(logger.NEW, "Provisioning yt-dlp...\n")
	if err := download.Install(ctx); err != nil {
		return err
	}

	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		cancel()
	}

	wg := &sync.WaitGroup{}
	tunegrab.spawnAsyncService(ctx, wg, tunegrab.restGateway, "rest-gateway", crashHandler)
	log.Emit(logger.SUCCESS, "Tunegrab services spawned!\n")

	wg.Wait()
	return nil
}

// spawnAsyncService runs the provided service in a goroutine attached
// to the wait group, reporting a non-nil return through the crash
// handler.
func (tunegrab *tunegrabImpl) spawnAsyncService(ctx context.Context, wg *sync.WaitGroup, service RunnableService, label string, crashHandler func(string, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := service.Run(ctx); err != nil {
			crashHandler(label, err)
		}
	}()
}
