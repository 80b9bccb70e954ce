// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"time"
)

// Recommendation modes, used as metric and log labels.
const (
	ModeSeeds = "seeds"
	ModeTitle = "title"
	ModeUser  = "user"
)

// Options controls a single ranking query. Start from Engine.DefaultOptions
// so that Alpha carries the configured default.
type Options struct {
	// K is the maximum number of results. Zero or a negative value means
	// "use the configured default", not "return nothing". Fewer than K items
	// are returned only when fewer are eligible.
	K int `json:"k"`

	// Alpha weights the content score; 1 - Alpha weights the collaborative score.
	// Values outside [0,1] are clamped.
	Alpha float64 `json:"alpha"`

	// Genres restricts results to items having at least one of these genres.
	// Empty means no filtering.
	Genres []string `json:"genres,omitempty"`

	// Explain adds a one-line reason to each result.
	Explain bool `json:"explain"`
}

// Recommendation is one ranked result.
type Recommendation struct {
	ItemID             int      `json:"item_id"`
	Title              string   `json:"title"`
	Score              float64  `json:"score"`
	ContentScore       float64  `json:"content_score"`
	CollaborativeScore float64  `json:"collaborative_score"`
	Genres             []string `json:"genres,omitempty"`
	Reason             string   `json:"reason,omitempty"`
}

// SearchResult is one title search hit.
type SearchResult struct {
	ItemID int    `json:"item_id"`
	Title  string `json:"title"`
}

// ResolvedTitle describes which catalog item free-form text resolved to.
type ResolvedTitle struct {
	ItemID int    `json:"item_id"`
	Title  string `json:"title"`
	Stage  string `json:"stage"`
}

// TitleRecommendations pairs a title query with its resolution and results.
type TitleRecommendations struct {
	Query           string           `json:"query"`
	Resolved        *ResolvedTitle   `json:"resolved"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Stats summarizes the loaded catalog and built models.
type Stats struct {
	Items         int           `json:"items"`
	Users         int           `json:"users"`
	Ratings       int           `json:"ratings"`
	Genres        int           `json:"genres"`
	Vocabulary    int           `json:"vocabulary"`
	Placeholders  int           `json:"placeholders"`
	BuiltAt       time.Time     `json:"built_at"`
	BuildDuration time.Duration `json:"build_duration_ns"`
}

// normalize applies defaults and bounds to the options.
func (o Options) normalize(cfg *Config) Options {
	if o.K <= 0 {
		o.K = cfg.DefaultK
	}
	switch {
	case math.IsNaN(o.Alpha):
		o.Alpha = cfg.Alpha
	case o.Alpha < 0:
		o.Alpha = 0
	case o.Alpha > 1:
		o.Alpha = 1
	}
	return o
}
