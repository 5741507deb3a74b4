package app

import (
	"net/http"
	"time"

	"qrlink/internal/config"

	"go.uber.org/zap"
)

// CreateServer creates and configures an HTTP server.
func CreateServer(c *config.Config, handler http.Handler, logger *zap.SugaredLogger) *http.Server {
	logger.Infof("Redirector at %s\n", c.Addr)

	return &http.Server{
		Addr:              c.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
	}
}
