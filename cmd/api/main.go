package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/SeishiUwU/FleetGuard/internal/adapters/handlers/http/chi"
	"github.com/SeishiUwU/FleetGuard/internal/adapters/handlers/http/chi/v1/video"
	"github.com/SeishiUwU/FleetGuard/internal/adapters/storage/localfs"
	"github.com/SeishiUwU/FleetGuard/internal/config"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/catalog"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/stream"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	//storage
	clipStorage, err := localfs.NewAdapter(cfg.Media, logger)
	if err != nil {
		logger.Error("failed to init clip storage", "error", err)
		os.Exit(1)
	}
	logger.Info("serving clips", "dir", clipStorage.Root())

	//services
	catalogService := catalog.NewCatalogService(clipStorage)
	streamService := stream.NewStreamService(catalogService, clipStorage)

	//http
	videoHandler := video.NewVideoHandlerV1(catalogService, streamService, logger)

	router := chi.NewRouter(logger, videoHandler, clipStorage.Root(), cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}
