// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Data.Root != "data/ml-100k" {
		t.Errorf("Data.Root = %q, want data/ml-100k", cfg.Data.Root)
	}
	if cfg.Recommend.Alpha != 0.5 {
		t.Errorf("Recommend.Alpha = %v, want 0.5", cfg.Recommend.Alpha)
	}
	if cfg.Recommend.FuzzyCutoff != 0.6 {
		t.Errorf("Recommend.FuzzyCutoff = %v, want 0.6", cfg.Recommend.FuzzyCutoff)
	}
	if cfg.Recommend.MinDocFreq != 2 {
		t.Errorf("Recommend.MinDocFreq = %d, want 2", cfg.Recommend.MinDocFreq)
	}
	if cfg.Recommend.LikeThreshold != 4 {
		t.Errorf("Recommend.LikeThreshold = %v, want 4", cfg.Recommend.LikeThreshold)
	}
	if cfg.Recommend.ResolveCacheSize != 1024 {
		t.Errorf("Recommend.ResolveCacheSize = %d, want 1024", cfg.Recommend.ResolveCacheSize)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("DATA_ROOT", "/srv/movielens")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RECOMMEND_ALPHA", "0.8")
	t.Setenv("RECOMMEND_FUZZY_CUTOFF", "0.75")
	t.Setenv("RECOMMEND_MIN_DOC_FREQ", "1")
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Data.Root != "/srv/movielens" {
		t.Errorf("Data.Root = %q", cfg.Data.Root)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Recommend.Alpha != 0.8 {
		t.Errorf("Recommend.Alpha = %v, want 0.8", cfg.Recommend.Alpha)
	}
	if cfg.Recommend.FuzzyCutoff != 0.75 {
		t.Errorf("Recommend.FuzzyCutoff = %v, want 0.75", cfg.Recommend.FuzzyCutoff)
	}
	if cfg.Recommend.MinDocFreq != 1 {
		t.Errorf("Recommend.MinDocFreq = %d, want 1", cfg.Recommend.MinDocFreq)
	}
	if cfg.Security.RateLimitWindow != 2*time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 2m", cfg.Security.RateLimitWindow)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reelmatch.yaml")
	yaml := `
server:
  port: 8123
recommend:
  alpha: 0.25
  default_k: 5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("RECOMMEND_ALPHA", "0.9")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("Server.Port = %d, want 8123 from file", cfg.Server.Port)
	}
	if cfg.Recommend.DefaultK != 5 {
		t.Errorf("Recommend.DefaultK = %d, want 5 from file", cfg.Recommend.DefaultK)
	}
	if cfg.Recommend.Alpha != 0.9 {
		t.Errorf("Recommend.Alpha = %v, want env override 0.9", cfg.Recommend.Alpha)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Data.ItemFile != "u.item" {
		t.Errorf("Data.ItemFile = %q, want default u.item", cfg.Data.ItemFile)
	}
}

func TestLoadWithKoanf_InvalidValue(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("RECOMMEND_ALPHA", "1.5")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "RECOMMEND_ALPHA") {
		t.Errorf("error = %v, want mention of RECOMMEND_ALPHA", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DATA_ROOT", "data.root"},
		{"HTTP_PORT", "server.port"},
		{"RECOMMEND_LIKE_THRESHOLD", "recommend.like_threshold"},
		{"LOG_LEVEL", "logging.level"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
