package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vcrobe/activities/internal/api"
	"github.com/vcrobe/activities/internal/catalog"
	"github.com/vcrobe/activities/internal/config"
	httptransport "github.com/vcrobe/activities/internal/transport/http"
	"github.com/vcrobe/activities/internal/web"
)

func main() {
	cfg := config.Load()

	store := catalog.NewStore(catalog.Seed())

	mux := http.NewServeMux()
	api.NewHandler(store).RegisterRoutes(mux)
	web.RegisterRoutes(mux, cfg.StaticDir, cfg.WASMPath)
	mux.Handle("/metrics", promhttp.Handler())

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, httptransport.RequestLogger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("activities dev host listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
