package health

import (
	"context"
	"time"

	"decor-backend/internal/store"
)

type HealthChecker struct {
	backend store.Backend
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
}

type StoreHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(backend store.Backend) *HealthChecker {
	return &HealthChecker{backend: backend}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storeHealth := h.checkStore()

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status: status,
		Store:  storeHealth,
	}
}

// checkStore probes the backend with a read on a reserved key. Absent keys
// are fine; only a backend error marks the store unhealthy.
func (h *HealthChecker) checkStore() StoreHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	_, _, err := h.backend.Get(ctx, "health_probe")
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return StoreHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return StoreHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
