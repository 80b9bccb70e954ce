// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Items         int     `json:"items,omitempty"`
	Users         int     `json:"users,omitempty"`
}

// HealthLive reports that the process is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether the models are built and can answer queries.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	engine := h.current()
	if engine == nil {
		rw.ServiceUnavailable("Recommendation engine not ready")
		return
	}

	stats := engine.Stats()
	rw.Success(HealthStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Items:         stats.Items,
		Users:         stats.Users,
	})
}
