package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-freezer/internal/config"
	"github.com/MKhiriev/go-coffee-freezer/internal/handler/http"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/service"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. Pages are rendered with the
// website name and version reported by the AppInfoService.
func NewHandlers(services *service.Services, cfg config.Server, metrics http.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || services.AppInfoService == nil {
		return nil, errNoServices
	}

	ctx := context.Background()
	renderer, err := view.NewRenderer(
		services.AppInfoService.GetWebsiteName(ctx),
		services.AppInfoService.GetAppVersion(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating page renderer: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, metrics, logger),
	}, nil
}
