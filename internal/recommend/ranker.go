// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// candidate is a catalog position with its blended score.
type candidate struct {
	pos     int
	score   float64
	content float64
	collab  float64
}

// rank scores every catalog item against the seed positions and returns the
// top opts.K. Seeds and items outside the genre filter are never returned.
//
// For candidate c and seeds S:
//
//	content(c) = mean_{s in S} cos(x_c, x_s)
//	collab(c)  = mean_{s in S} sim(c, s)
//	score(c)   = alpha * content(c) + (1 - alpha) * collab(c)
//
// Ties are broken by ascending catalog position.
func (e *Engine) rank(seeds []int, opts Options) []Recommendation {
	n := len(e.bundle.Items)
	keep := e.genreMask(opts.Genres)
	isSeed := make(map[int]struct{}, len(seeds))
	for _, s := range seeds {
		isSeed[s] = struct{}{}
	}

	inv := 1 / float64(len(seeds))
	cands := make([]candidate, 0, n)
	for c := 0; c < n; c++ {
		if _, ok := isSeed[c]; ok {
			continue
		}
		if keep != nil && !keep[c] {
			continue
		}

		var content, collab float64
		row := e.content.Row(c)
		for _, s := range seeds {
			content += row.Dot(e.content.Row(s))
			collab += e.collab.Similarity(c, s)
		}
		content *= inv
		collab *= inv

		score := opts.Alpha*content + (1-opts.Alpha)*collab
		if math.IsInf(score, 0) || math.IsNaN(score) {
			continue
		}
		cands = append(cands, candidate{pos: c, score: score, content: content, collab: collab})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].pos < cands[j].pos
	})
	if len(cands) > opts.K {
		cands = cands[:opts.K]
	}

	recs := make([]Recommendation, len(cands))
	for i, c := range cands {
		it := &e.bundle.Items[c.pos]
		recs[i] = Recommendation{
			ItemID:             it.ID,
			Title:              it.Title,
			Score:              c.score,
			ContentScore:       c.content,
			CollaborativeScore: c.collab,
			Genres:             it.Genres,
		}
		if opts.Explain {
			recs[i].Reason = e.explain(c.pos, seeds)
		}
	}
	return recs
}

// genreMask returns which positions carry at least one requested genre, or
// nil when no filter applies. Unknown genre names match nothing.
func (e *Engine) genreMask(genres []string) []bool {
	if len(genres) == 0 {
		return nil
	}
	cols := make([]int, 0, len(genres))
	for _, g := range genres {
		if col, ok := e.bundle.GenreIndex(g); ok {
			cols = append(cols, col)
		}
	}

	keep := make([]bool, len(e.bundle.Items))
	for i := range e.bundle.Items {
		flags := e.bundle.Items[i].Flags
		for _, col := range cols {
			if flags[col] {
				keep[i] = true
				break
			}
		}
	}
	return keep
}

// explain names the seed with the highest content similarity to pos. The
// first seed wins ties.
func (e *Engine) explain(pos int, seeds []int) string {
	best, bestSim := seeds[0], math.Inf(-1)
	row := e.content.Row(pos)
	for _, s := range seeds {
		if sim := row.Dot(e.content.Row(s)); sim > bestSim {
			best, bestSim = s, sim
		}
	}
	return fmt.Sprintf("Because it’s similar to '%s'.", e.bundle.Items[best].Title)
}
