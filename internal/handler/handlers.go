package handler

import (
	"github.com/MKhiriev/go-trips/internal/config"
	"github.com/MKhiriev/go-trips/internal/handler/http"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/metrics"
	"github.com/MKhiriev/go-trips/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Port <= 0 {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, cfg, logger),
	}, nil
}
