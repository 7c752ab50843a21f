package services

import (
	"context"
	"sort"
	"time"

	"kucukaslan/nodeapp/buildinfo"
	"kucukaslan/nodeapp/domain"
)

var _ domain.HealthService = &healthService{}

const defaultCheckTimeout = 3 * time.Second

type healthService struct {
	checkers map[string]domain.HealthChecker
	timeout  time.Duration
}

// NewHealthService returns a domain.HealthService probing the named checkers.
// A zero timeout falls back to three seconds per check.
func NewHealthService(checkers map[string]domain.HealthChecker, timeout time.Duration) domain.HealthService {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &healthService{checkers: checkers, timeout: timeout}
}

func (h *healthService) Check(ctx context.Context) domain.HealthResponse {
	response := domain.HealthResponse{
		Status:    domain.StatusHealthy,
		Timestamp: time.Now(),
		BuildInfo: buildinfo.GetInfo(),
		Services:  make(map[string]domain.ServiceStatus, len(h.checkers)),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
		err := h.checkers[name].HealthCheck(checkCtx)
		cancel()

		if err != nil {
			response.Status = domain.StatusUnhealthy
			response.Services[name] = domain.ServiceStatus{
				Status:  domain.StatusUnhealthy,
				Message: err.Error(),
			}
			continue
		}
		response.Services[name] = domain.ServiceStatus{Status: domain.StatusHealthy}
	}

	return response
}
