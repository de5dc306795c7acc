package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/blood-press-log/internal/config"
	"github.com/MKhiriev/blood-press-log/internal/logger"
)

const defaultHTTPAddress = ":8080"

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	address := cfg.HTTPAddress
	if address == "" {
		address = defaultHTTPAddress
	}

	return &httpServer{
		server: &http.Server{
			Addr:    address,
			Handler: router,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
