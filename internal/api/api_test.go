// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

var testGenres = []string{"Comedy", "Drama"}

// newTestEngine builds three items: Alpha and Beta are comedies rated alike,
// Gamma is a drama rated the opposite way.
func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	items := []dataset.Item{
		dataset.NewItem(1, "Alpha (2000)", []bool{true, false}, testGenres),
		dataset.NewItem(2, "Beta (2001)", []bool{true, false}, testGenres),
		dataset.NewItem(3, "Gamma (2002)", []bool{false, true}, testGenres),
	}
	var ratings []dataset.Rating
	for user, r := range [][3]float64{{5, 5, 1}, {4, 4, 2}, {1, 1, 5}, {2, 2, 4}} {
		for j, v := range r {
			ratings = append(ratings, dataset.Rating{UserID: user + 1, ItemID: j + 1, Value: v})
		}
	}
	e, err := recommend.NewEngine(context.Background(), dataset.NewBundle(testGenres, items, ratings), recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func newTestRouter(t *testing.T, engine Recommender) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(engine), NewChiMiddleware(cfg))
}

// envelope decodes the response wrapper with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func get[T any](t *testing.T, h http.Handler, target string) (int, envelope[T]) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: decode %q: %v", target, rec.Body.String(), err)
	}
	return rec.Code, env
}

func itemIDs(recs []recommend.Recommendation) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.ItemID
	}
	return out
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	code, live := get[HealthStatus](t, h, "/api/v1/health/live")
	if code != http.StatusOK || live.Data.Status != "alive" {
		t.Errorf("live = %d %+v", code, live.Data)
	}

	code, ready := get[HealthStatus](t, h, "/api/v1/health/ready")
	if code != http.StatusOK || ready.Data.Status != "ready" || ready.Data.Items != 3 || ready.Data.Users != 4 {
		t.Errorf("ready = %d %+v", code, ready.Data)
	}
}

func TestNotReady(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, target := range []string{
		"/api/v1/health/ready",
		"/api/v1/search?q=alpha",
		"/api/v1/recommend/seeds?ids=1",
		"/api/v1/catalog/genres",
		"/api/v1/catalog/stats",
	} {
		code, env := get[json.RawMessage](t, h, target)
		if code != http.StatusServiceUnavailable {
			t.Errorf("GET %s = %d, want 503", target, code)
		}
		if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
			t.Errorf("GET %s error = %+v", target, env.Error)
		}
	}

	if code, _ := get[HealthStatus](t, h, "/api/v1/health/live"); code != http.StatusOK {
		t.Errorf("live = %d, want 200", code)
	}
}

func TestRecommendSeeds(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	code, env := get[[]recommend.Recommendation](t, h, "/api/v1/recommend/seeds?ids=1&explain=true")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", code, env.Success)
	}
	if got := itemIDs(env.Data); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("ids = %v, want [2 3]", got)
	}
	if env.Data[0].Reason != "Because it’s similar to 'Alpha (2000)'." {
		t.Errorf("Reason = %q", env.Data[0].Reason)
	}
	if env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != 2 {
		t.Errorf("meta = %+v", env.Meta)
	}
	if env.Meta.RequestID == "" {
		t.Error("meta.request_id empty")
	}
}

func TestRecommendSeeds_Params(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantErr  string
		wantIDs  []int
	}{
		{"k limits results", "/api/v1/recommend/seeds?ids=1&k=1", http.StatusOK, "", []int{2}},
		{"genre filter", "/api/v1/recommend/seeds?ids=1&genres=Drama", http.StatusOK, "", []int{3}},
		{"unknown seed", "/api/v1/recommend/seeds?ids=99", http.StatusOK, "", []int{}},
		{"all seeds", "/api/v1/recommend/seeds?ids=1,2,3", http.StatusOK, "", []int{}},
		{"repeated ids param", "/api/v1/recommend/seeds?ids=1&ids=2", http.StatusOK, "", []int{3}},
		{"missing ids", "/api/v1/recommend/seeds", http.StatusBadRequest, ErrCodeValidationFailed, nil},
		{"bad id", "/api/v1/recommend/seeds?ids=1,x", http.StatusBadRequest, ErrCodeBadRequest, nil},
		{"bad k", "/api/v1/recommend/seeds?ids=1&k=ten", http.StatusBadRequest, ErrCodeBadRequest, nil},
		{"negative k", "/api/v1/recommend/seeds?ids=1&k=-1", http.StatusBadRequest, ErrCodeValidationFailed, nil},
		{"k above limit", "/api/v1/recommend/seeds?ids=1&k=1001", http.StatusBadRequest, ErrCodeValidationFailed, nil},
		{"k at limit", "/api/v1/recommend/seeds?ids=1&k=1000", http.StatusOK, "", []int{2, 3}},
		{"alpha out of range", "/api/v1/recommend/seeds?ids=1&alpha=1.5", http.StatusBadRequest, ErrCodeValidationFailed, nil},
		{"bad explain", "/api/v1/recommend/seeds?ids=1&explain=maybe", http.StatusBadRequest, ErrCodeBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := get[[]recommend.Recommendation](t, h, tt.target)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d", code, tt.wantCode)
			}
			if tt.wantErr != "" {
				if env.Error == nil || env.Error.Code != tt.wantErr {
					t.Errorf("error = %+v, want code %s", env.Error, tt.wantErr)
				}
				return
			}
			got := itemIDs(env.Data)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Errorf("ids = %v, want %v", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestRecommendSeeds_EmptyIsList(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommend/seeds?ids=42", nil))
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s, want empty data list", rec.Body.String())
	}
}

func TestRecommendTitle(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	code, env := get[recommend.TitleRecommendations](t, h, "/api/v1/recommend/title?q=alpha%20(2000)&alpha=1")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if env.Data.Resolved == nil || env.Data.Resolved.ItemID != 1 || env.Data.Resolved.Stage != "exact" {
		t.Errorf("resolved = %+v", env.Data.Resolved)
	}
	if got := itemIDs(env.Data.Recommendations); len(got) != 2 || got[0] != 2 {
		t.Errorf("ids = %v", got)
	}

	code, miss := get[recommend.TitleRecommendations](t, h, "/api/v1/recommend/title?q=zzzzzzzz")
	if code != http.StatusOK || miss.Data.Resolved != nil || len(miss.Data.Recommendations) != 0 {
		t.Errorf("miss = %d %+v", code, miss.Data)
	}

	if code, _ := get[json.RawMessage](t, h, "/api/v1/recommend/title?q=%20%20"); code != http.StatusBadRequest {
		t.Errorf("blank q status = %d, want 400", code)
	}
}

func TestRecommendUser(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	// User 3 rated Gamma 5 and the comedies 1.
	code, env := get[UserRecommendations](t, h, "/api/v1/recommend/user/3")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(env.Data.LikedItems) != 1 || env.Data.LikedItems[0] != 3 {
		t.Errorf("liked = %v, want [3]", env.Data.LikedItems)
	}
	if got := itemIDs(env.Data.Recommendations); len(got) != 2 {
		t.Errorf("ids = %v", got)
	}

	_, unknown := get[UserRecommendations](t, h, "/api/v1/recommend/user/999")
	if len(unknown.Data.LikedItems) != 0 || len(unknown.Data.Recommendations) != 0 {
		t.Errorf("unknown user = %+v", unknown.Data)
	}

	for _, target := range []string{
		"/api/v1/recommend/user/abc",
		"/api/v1/recommend/user/0",
		"/api/v1/recommend/user/1?threshold=6",
	} {
		if code, _ := get[json.RawMessage](t, h, target); code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", target, code)
		}
	}
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	code, env := get[[]recommend.SearchResult](t, h, "/api/v1/search?q=ta")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(env.Data) != 1 || env.Data[0].ItemID != 2 {
		t.Errorf("results = %+v, want Beta", env.Data)
	}

	code, limited := get[[]recommend.SearchResult](t, h, "/api/v1/search?q=a&limit=2")
	if code != http.StatusOK || len(limited.Data) != 2 {
		t.Errorf("limited = %d %+v", code, limited.Data)
	}

	for _, target := range []string{"/api/v1/search", "/api/v1/search?q=a&limit=1000"} {
		if code, _ := get[json.RawMessage](t, h, target); code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", target, code)
		}
	}
}

func TestCatalog(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	_, genres := get[[]string](t, h, "/api/v1/catalog/genres")
	if len(genres.Data) != 2 || genres.Data[0] != "Comedy" || genres.Data[1] != "Drama" {
		t.Errorf("genres = %v", genres.Data)
	}

	_, stats := get[recommend.Stats](t, h, "/api/v1/catalog/stats")
	if stats.Data.Items != 3 || stats.Data.Users != 4 || stats.Data.Ratings != 12 {
		t.Errorf("stats = %+v", stats.Data)
	}
}

func TestRouter_Errors(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	code, env := get[json.RawMessage](t, h, "/api/v1/nope")
	if code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route = %d %+v", code, env.Error)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/search?q=a", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	code, env := get[json.RawMessage](t, h, "/api/v1/search?q=a")
	if code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", code)
	}
	if env.Success || env.Error == nil || env.Error.Code != ErrCodeInternalError {
		t.Errorf("envelope = %+v", env)
	}
}

func TestRouter_Headers(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/genres", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Content-Type":           "application/json; charset=utf-8",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing")
	}
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(t, newTestEngine(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "reelmatch_") {
		t.Error("metrics output has no reelmatch_ series")
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	h := NewRouter(NewHandler(newTestEngine(t)), NewChiMiddleware(cfg))

	var last int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/genres", nil))
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}
}

func TestChiMiddlewareConfigFrom(t *testing.T) {
	cfg := ChiMiddlewareConfigFrom(config.SecurityConfig{
		CORSOrigins:       []string{"https://example.com"},
		RateLimitReqs:     7,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
	})

	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
	}
	if len(cfg.CORSAllowedMethods) == 0 {
		t.Error("CORSAllowedMethods not defaulted")
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://example.com"}
	h := NewRouter(NewHandler(newTestEngine(t)), NewChiMiddleware(cfg))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/catalog/genres", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestHandler_SetEngine(t *testing.T) {
	handler := NewHandler(nil)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	h := NewRouter(handler, NewChiMiddleware(cfg))

	if code, _ := get[HealthStatus](t, h, "/api/v1/health/ready"); code != http.StatusServiceUnavailable {
		t.Fatalf("ready before load = %d, want 503", code)
	}

	handler.SetEngine(newTestEngine(t))
	if code, _ := get[HealthStatus](t, h, "/api/v1/health/ready"); code != http.StatusOK {
		t.Errorf("ready after load = %d, want 200", code)
	}

	handler.SetEngine(nil)
	if code, _ := get[HealthStatus](t, h, "/api/v1/health/ready"); code != http.StatusServiceUnavailable {
		t.Errorf("ready after unload = %d, want 503", code)
	}
}
