package service

import (
	"context"

	"github.com/MKhiriev/go-coffee-freezer/internal/config"
	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
)

const unknownVersion = "N/A"

type appInfoService struct {
	appVersion  string
	websiteName string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.WebsiteName == "" {
		return nil, ErrWebsiteNameIsNotSpecified
	}

	version := cfg.Version
	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{
		appVersion:  version,
		websiteName: cfg.WebsiteName,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetWebsiteName(ctx context.Context) string {
	return s.websiteName
}
