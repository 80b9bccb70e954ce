// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"testing"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
)

func TestEngineConfig_Validates(t *testing.T) {
	c := config.RecommendConfig{
		Alpha:         0.3,
		DefaultK:      5,
		FuzzyCutoff:   0.7,
		MinDocFreq:    1,
		LikeThreshold: 3.5,
		Workers:       2,
		SearchLimit:   10,

		ResolveCacheSize: 16,
	}
	got := engineConfig(c)
	if err := got.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got.Alpha != 0.3 || got.DefaultK != 5 || got.FuzzyCutoff != 0.7 ||
		got.MinDocFreq != 1 || got.LikeThreshold != 3.5 || got.Workers != 2 || got.SearchLimit != 10 ||
		got.ResolveCacheSize != 16 {
		t.Errorf("engineConfig() = %+v", got)
	}
}

func TestLoadOptions(t *testing.T) {
	got := loadOptions(config.DataConfig{
		Root:            "/data",
		GenreFile:       "g",
		ItemFile:        "i",
		RatingFile:      "r",
		GenreFlagOffset: 6,
		ReloadInterval:  time.Minute,
	})
	if got.GenreFile != "g" || got.ItemFile != "i" || got.RatingFile != "r" || got.GenreFlagOffset != 6 {
		t.Errorf("loadOptions() = %+v", got)
	}
}
