package service

import (
	"context"

	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService returns an [AppInfoService] reporting buildInfo.
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
