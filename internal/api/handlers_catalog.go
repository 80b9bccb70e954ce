// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import "net/http"

// CatalogGenres lists the genre catalog in column order.
func (h *Handler) CatalogGenres(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	engine := h.current()
	if engine == nil {
		rw.ServiceUnavailable("Recommendation engine not ready")
		return
	}
	genres := engine.Genres()
	rw.SuccessList(genres, len(genres))
}

// CatalogStats reports catalog size and model build information.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	engine := h.current()
	if engine == nil {
		rw.ServiceUnavailable("Recommendation engine not ready")
		return
	}
	rw.Success(engine.Stats())
}
