package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool            `json:"redis"`
	Upstreams map[string]bool `json:"upstreams"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// Upstreams maps a service name to its base URL; a HEAD request that connects at
// all counts as healthy (upstream APIs do not expose a dedicated health route).
func StartHealthMonitor(redisClient *redis.Client, upstreams map[string]string) {
	httpClient := &http.Client{Timeout: 5 * time.Second}

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil

			upstreamHealth := make(map[string]bool, len(upstreams))
			for name, baseURL := range upstreams {
				req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
				if err != nil {
					upstreamHealth[name] = false
					continue
				}
				resp, err := httpClient.Do(req)
				if err != nil {
					upstreamHealth[name] = false
					continue
				}
				resp.Body.Close()
				upstreamHealth[name] = true
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				Upstreams: upstreamHealth,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
