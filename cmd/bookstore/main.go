package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dorrrke/g1-bookstore/internal/config"
	"github.com/Dorrrke/g1-bookstore/internal/logger"
	"github.com/Dorrrke/g1-bookstore/internal/repository"
	"github.com/Dorrrke/g1-bookstore/internal/server"
	"github.com/Dorrrke/g1-bookstore/internal/service"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	cfg, err := config.ReadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zlog := logger.SetupLogger(cfg.DebugFlag)
	zlog.Info().Msg("Start server")
	zlog.Debug().Any("config", cfg).Msg("Check cfg value")

	catalog, err := repository.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Load catalog failed")
	}
	zlog.Info().Int("books", catalog.Len()).Msg("Catalog loaded")

	srv := server.New(
		service.NewQuery(catalog),
		service.NewRegistration(repository.New()),
		server.NewRemoteClient(cfg.SelfURL, cfg.RemoteTimeout),
		zlog,
	)
	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(srv, zlog, cfg.DebugFlag),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		zlog.Debug().Str("addr", cfg.Addr).Msg("Server started")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		zlog.Fatal().Err(err).Msg("Server stopped with error")
	}
	zlog.Info().Msg("Server stopped")
}
