package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	healthCheckInterval = 60 * time.Second
	healthProbeTimeout  = 5 * time.Second
)

// HealthStatus is the latest probe result for every backing service.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the given Redis clients and Mongo on a fixed
// interval, keeping an in-memory snapshot for the health endpoint. The first
// probe runs immediately so the snapshot is never empty.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
		defer cancel()

		redisHealth := make(map[string]bool, len(redisClients))
		for name, client := range redisClients {
			redisHealth[name] = client.Ping(ctx).Err() == nil
		}
		mongoHealthy := mongoClient.Ping(ctx, readpref.Primary()) == nil

		healthMu.Lock()
		currentHealth = HealthStatus{
			Mongo:     mongoHealthy,
			Redis:     redisHealth,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
