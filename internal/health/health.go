// Package health reports readiness of the backing store.
package health

import (
	"context"
	"time"

	"rms-backend/internal/store"
)

type Status struct {
	Status       string `json:"status"`
	Store        string `json:"store"`
	ResponseTime string `json:"responseTime"`
	Timestamp    string `json:"timestamp"`
}

type Checker struct {
	store  store.Store
	driver string
}

func NewChecker(s store.Store, driver string) *Checker {
	return &Checker{store: s, driver: driver}
}

// Check pings the store and reports degraded rather than failing hard so a
// load balancer keeps routing while a fallback store serves requests.
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.store.Ping(ctx)
	elapsed := time.Since(start)

	status := "healthy"
	if err != nil {
		status = "degraded"
	}

	return Status{
		Status:       status,
		Store:        c.driver,
		ResponseTime: elapsed.String(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}
