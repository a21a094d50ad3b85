package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/service"
)

// Renderer writes an HTML page with the given status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page, title string, data any) error
}

// Metrics records served requests and exposes the collected metrics.
type Metrics interface {
	ObserveHTTPRequest(route, method string, status int, duration time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services
	renderer Renderer
	metrics  Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer Renderer, metrics Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
	}
}
