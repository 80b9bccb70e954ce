// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"math"
	"sync"
)

// CollaborativeConfig contains configuration for the item-item model.
type CollaborativeConfig struct {
	// Workers is the number of goroutines computing similarity rows.
	Workers int
}

// DefaultCollaborativeConfig returns default collaborative model configuration.
func DefaultCollaborativeConfig() CollaborativeConfig {
	return CollaborativeConfig{Workers: 4}
}

// CollaborativeModel is a dense item-item cosine similarity matrix computed
// over mean-centered ratings.
//
// For items i and j with centered rating columns c_i and c_j:
//
//	sim(i, j) = (c_i . c_j) / (|c_i| * |c_j|)
//
// and sim(i, i) = 0 so an item is never its own neighbor.
type CollaborativeModel struct {
	sim   [][]float64
	means []float64
}

// ItemMeans returns the mean of the rated (non-zero) cells of each column of a
// users x items matrix. Columns with no ratings have mean zero.
func ItemMeans(matrix [][]float64, numItems int) []float64 {
	sums := make([]float64, numItems)
	counts := make([]int, numItems)
	for _, row := range matrix {
		for j, v := range row {
			if v != 0 {
				sums[j] += v
				counts[j]++
			}
		}
	}
	means := make([]float64, numItems)
	for j := range means {
		if counts[j] > 0 {
			means[j] = sums[j] / float64(counts[j])
		}
	}
	return means
}

// centeredColumns mean-centers each item column over its rated positions only.
// Unrated cells are absent from the sparse column, so they stay exactly zero.
func centeredColumns(matrix [][]float64, means []float64) []SparseVector {
	cols := make([]SparseVector, len(means))
	for u, row := range matrix {
		for j, v := range row {
			if v != 0 {
				cols[j] = append(cols[j], Entry{Index: u, Value: v - means[j]})
			}
		}
	}
	return cols
}

// BuildCollaborativeModel computes item-item similarities from a users x items
// rating matrix in which zero marks an unrated cell. Rows of the similarity
// matrix are split across cfg.Workers goroutines; each unordered pair is
// computed once and mirrored.
func BuildCollaborativeModel(ctx context.Context, matrix [][]float64, numItems int, cfg CollaborativeConfig) (*CollaborativeModel, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	means := ItemMeans(matrix, numItems)
	cols := centeredColumns(matrix, means)
	norms := make([]float64, numItems)
	for j, col := range cols {
		norms[j] = col.Norm()
	}

	sim := make([][]float64, numItems)
	for i := range sim {
		sim[i] = make([]float64, numItems)
	}

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()

			// Striding balances the triangular workload across workers.
			for i := offset; i < numItems; i += cfg.Workers {
				if ContextCancelled(ctx) {
					return
				}
				if norms[i] == 0 {
					continue
				}
				for j := i + 1; j < numItems; j++ {
					if norms[j] == 0 {
						continue
					}
					s := clampUnit(cols[i].Dot(cols[j]) / (norms[i] * norms[j]))
					sim[i][j] = s
					sim[j][i] = s
				}
			}
		}(w)
	}
	wg.Wait()

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	return &CollaborativeModel{sim: sim, means: means}, nil
}

// Similarity returns sim(i, j). Out-of-range indices score zero.
func (m *CollaborativeModel) Similarity(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m.sim) || j >= len(m.sim) {
		return 0
	}
	return m.sim[i][j]
}

// NumItems returns the side length of the similarity matrix.
func (m *CollaborativeModel) NumItems() int {
	return len(m.sim)
}

// clampUnit guards against cosine values drifting past ±1 from rounding.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
