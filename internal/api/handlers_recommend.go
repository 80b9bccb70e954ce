// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// UserRecommendations is the payload of the user route.
type UserRecommendations struct {
	UserID          int                        `json:"user_id"`
	LikedItems      []int                      `json:"liked_items"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// Search returns catalog titles matching q.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseSearchRequest(r.URL.Query())
	engine := h.admit(rw, &req, err)
	if engine == nil {
		return
	}

	results := engine.Search(req.Query, req.Limit)
	rw.SuccessList(results, len(results))
}

// RecommendSeeds ranks the catalog against seed item ids.
func (h *Handler) RecommendSeeds(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseSeedsRequest(r.URL.Query())
	engine := h.admit(rw, &req, err)
	if engine == nil {
		return
	}

	recs := engine.RecommendFromSeeds(r.Context(), req.IDs, req.options(engine.DefaultOptions()))
	rw.SuccessList(recs, len(recs))
}

// RecommendTitle resolves free-form title text and ranks against it.
func (h *Handler) RecommendTitle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseTitleRequest(r.URL.Query())
	engine := h.admit(rw, &req, err)
	if engine == nil {
		return
	}

	out := engine.RecommendTitle(r.Context(), req.Query, req.options(engine.DefaultOptions()))
	rw.SuccessList(out, len(out.Recommendations))
}

// RecommendUser ranks the catalog against the items a user liked.
func (h *Handler) RecommendUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseUserRequest(chi.URLParam(r, "userID"), r.URL.Query())
	engine := h.admit(rw, &req, err)
	if engine == nil {
		return
	}

	liked := engine.LikedItems(req.UserID, req.Threshold)
	if liked == nil {
		liked = []int{}
	}
	recs := engine.RecommendForUser(r.Context(), req.UserID, req.Threshold, req.options(engine.DefaultOptions()))
	rw.SuccessList(UserRecommendations{
		UserID:          req.UserID,
		LikedItems:      liked,
		Recommendations: recs,
	}, len(recs))
}

// admit rejects requests that arrive before an engine is loaded or that
// failed to parse or validate. It returns the engine to serve the request
// with, or nil when a response has already been written.
func (h *Handler) admit(rw *ResponseWriter, req interface{}, parseErr error) Recommender {
	engine := h.current()
	if engine == nil {
		rw.ServiceUnavailable("Recommendation engine not ready")
		return nil
	}
	if parseErr != nil {
		rw.BadRequest(parseErr.Error())
		return nil
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		rw.ValidationError(verr)
		return nil
	}
	return engine
}
