package gateway

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Updates int64  `json:"updates"`
	Failed  int64  `json:"failed"`
}

func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		g.mu.Lock()
		started := g.startedAt
		g.mu.Unlock()

		resp := HealthResponse{Status: "ok"}
		if !started.IsZero() {
			resp.Uptime = time.Since(started).Round(time.Second).String()
		}
		if g.metrics != nil {
			resp.Updates, resp.Failed = g.metrics.counts()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
