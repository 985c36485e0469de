package http

import (
	"github.com/MKhiriev/go-trips/internal/config"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/metrics"
	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil metrics gets a private registry.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
