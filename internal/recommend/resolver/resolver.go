// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package resolver

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Stage identifies which matching stage produced a resolution.
type Stage string

// Matching stages in the order they are attempted.
const (
	StageExact     Stage = "exact"
	StageExactBase Stage = "exact_base"
	StagePrefix    Stage = "prefix"
	StageContains  Stage = "contains"
	StageFuzzy     Stage = "fuzzy"
)

// DefaultFuzzyCutoff is the minimum similarity ratio accepted by StageFuzzy.
const DefaultFuzzyCutoff = 0.6

// Config contains resolver configuration.
type Config struct {
	// FuzzyCutoff is the minimum ratio in [0,1] for a fuzzy match.
	FuzzyCutoff float64
}

// Title is one entry of the resolver's table.
type Title struct {
	ItemID    int
	NormTitle string
	BaseTitle string
}

// Match is a successful resolution.
type Match struct {
	ItemID   int
	Position int
	Stage    Stage

	// Ratio is the similarity of a fuzzy match, 1 for the other stages.
	Ratio float64
}

// Resolver resolves free-form text against a fixed title table.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	titles []Title
	chars  [][]string
	cutoff float64
}

// New creates a resolver over titles. Table order defines tie-breaking.
func New(titles []Title, cfg Config) *Resolver {
	if cfg.FuzzyCutoff < 0 || cfg.FuzzyCutoff > 1 {
		cfg.FuzzyCutoff = DefaultFuzzyCutoff
	}
	chars := make([][]string, len(titles))
	for i, t := range titles {
		chars[i] = splitChars(t.BaseTitle)
	}
	return &Resolver{titles: titles, chars: chars, cutoff: cfg.FuzzyCutoff}
}

// FromItems builds the title table from dataset items in catalog order.
func FromItems(items []dataset.Item) []Title {
	titles := make([]Title, len(items))
	for i := range items {
		titles[i] = Title{
			ItemID:    items[i].ID,
			NormTitle: items[i].NormTitle,
			BaseTitle: items[i].BaseTitle,
		}
	}
	return titles
}

// Resolve maps query to at most one item. The boolean is false when no stage matched.
func (r *Resolver) Resolve(query string) (Match, bool) {
	m, ok := r.resolve(query)
	if ok {
		metrics.RecordResolution(string(m.Stage))
	} else {
		metrics.RecordResolution("")
	}
	return m, ok
}

func (r *Resolver) resolve(query string) (Match, bool) {
	if strings.TrimSpace(query) == "" {
		return Match{}, false
	}
	q := dataset.NormalizeTitle(query)
	qBase := dataset.NormalizeTitle(dataset.StripYear(query))

	stages := []struct {
		stage Stage
		match func(t *Title) bool
	}{
		{StageExact, func(t *Title) bool { return t.NormTitle == q }},
		{StageExactBase, func(t *Title) bool { return t.BaseTitle == qBase }},
		{StagePrefix, func(t *Title) bool { return strings.HasPrefix(t.BaseTitle, qBase) }},
		{StageContains, func(t *Title) bool { return strings.Contains(t.BaseTitle, qBase) }},
	}
	for n, s := range stages {
		// A query that is only a year has no base form to compare.
		if n > 0 && qBase == "" {
			break
		}
		for i := range r.titles {
			if s.match(&r.titles[i]) {
				return r.match(i, s.stage, 1), true
			}
		}
	}

	if qBase == "" {
		return Match{}, false
	}
	return r.fuzzy(qBase)
}

// fuzzy returns the first title with the highest ratio at or above the cutoff.
func (r *Resolver) fuzzy(qBase string) (Match, bool) {
	sm := difflib.NewMatcher(nil, splitChars(qBase))

	best, bestRatio := -1, -1.0
	for i, cand := range r.chars {
		sm.SetSeq1(cand)
		if sm.RealQuickRatio() < r.cutoff || sm.QuickRatio() < r.cutoff {
			continue
		}
		ratio := sm.Ratio()
		if ratio >= r.cutoff && ratio > bestRatio {
			best, bestRatio = i, ratio
		}
	}
	if best < 0 {
		return Match{}, false
	}
	return r.match(best, StageFuzzy, bestRatio), true
}

func (r *Resolver) match(pos int, stage Stage, ratio float64) Match {
	return Match{
		ItemID:   r.titles[pos].ItemID,
		Position: pos,
		Stage:    stage,
		Ratio:    ratio,
	}
}

// Ratio returns the character-level similarity ratio of a and b in [0,1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	return strings.Split(s, "")
}
