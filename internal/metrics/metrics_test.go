// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestSetCatalogSize(t *testing.T) {
	SetCatalogSize(1682, 943, 100000)

	if got := testutil.ToFloat64(CatalogItems); got != 1682 {
		t.Errorf("CatalogItems = %v, want 1682", got)
	}
	if got := testutil.ToFloat64(CatalogUsers); got != 943 {
		t.Errorf("CatalogUsers = %v, want 943", got)
	}
	if got := testutil.ToFloat64(CatalogRatings); got != 100000 {
		t.Errorf("CatalogRatings = %v, want 100000", got)
	}
}

func TestRecordRowsSkipped(t *testing.T) {
	before := testutil.ToFloat64(DatasetRowsSkipped.WithLabelValues("item"))
	RecordRowsSkipped("item", 3)
	RecordRowsSkipped("item", 0)
	after := testutil.ToFloat64(DatasetRowsSkipped.WithLabelValues("item"))

	if after-before != 3 {
		t.Errorf("DatasetRowsSkipped{item} delta = %v, want 3", after-before)
	}
}

func TestRecordResolution(t *testing.T) {
	tests := []struct {
		stage string
		label string
	}{
		{"exact", "exact"},
		{"fuzzy", "fuzzy"},
		{"", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			before := testutil.ToFloat64(TitleResolutions.WithLabelValues(tt.label))
			RecordResolution(tt.stage)
			after := testutil.ToFloat64(TitleResolutions.WithLabelValues(tt.label))
			if after-before != 1 {
				t.Errorf("TitleResolutions{%s} delta = %v, want 1", tt.label, after-before)
			}
		})
	}
}

func TestRecordRecommendation(t *testing.T) {
	okBefore := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("seeds", "ok"))
	emptyBefore := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("seeds", "empty"))

	RecordRecommendation("seeds", 5, 2*time.Millisecond)
	RecordRecommendation("seeds", 0, time.Millisecond)

	if d := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("seeds", "ok")) - okBefore; d != 1 {
		t.Errorf("ok delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("seeds", "empty")) - emptyBefore; d != 1 {
		t.Errorf("empty delta = %v, want 1", d)
	}
}

func sampleCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	m := &dto.Metric{}
	if err := h.(prometheus.Metric).Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordModelBuild(t *testing.T) {
	before := sampleCount(t, ModelBuildDuration.WithLabelValues("collaborative"))
	RecordModelBuild("collaborative", 150*time.Millisecond)
	after := sampleCount(t, ModelBuildDuration.WithLabelValues("collaborative"))

	if after-before != 1 {
		t.Errorf("ModelBuildDuration{collaborative} sample delta = %d, want 1", after-before)
	}
	if n := testutil.CollectAndCount(ModelBuildDuration); n < 1 {
		t.Errorf("ModelBuildDuration series = %d, want >= 1", n)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/search", "200"))
	RecordAPIRequest("GET", "/api/v1/search", "200", 10*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/search", "200"))
	if after-before != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordReload(t *testing.T) {
	ok := ModelReloadsTotal.WithLabelValues("success")
	failed := ModelReloadsTotal.WithLabelValues("failure")
	beforeOK, beforeFailed := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordReload(nil)
	RecordReload(errors.New("missing u.data"))
	RecordReload(nil)

	if d := testutil.ToFloat64(ok) - beforeOK; d != 2 {
		t.Errorf("success delta = %v, want 2", d)
	}
	if d := testutil.ToFloat64(failed) - beforeFailed; d != 1 {
		t.Errorf("failure delta = %v, want 1", d)
	}
}
