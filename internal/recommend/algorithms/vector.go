// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"math"
)

// Entry is one non-zero component of a sparse vector.
type Entry struct {
	Index int
	Value float64
}

// SparseVector holds non-zero entries sorted by ascending Index.
type SparseVector []Entry

// Norm returns the Euclidean norm of v.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, e := range v {
		sum += e.Value * e.Value
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two index-sorted sparse vectors.
func (v SparseVector) Dot(w SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(w) {
		switch {
		case v[i].Index == w[j].Index:
			sum += v[i].Value * w[j].Value
			i++
			j++
		case v[i].Index < w[j].Index:
			i++
		default:
			j++
		}
	}
	return sum
}

// normalizeL2 scales v in place to unit length. Zero vectors are left unchanged.
func normalizeL2(v SparseVector) {
	n := v.Norm()
	if n == 0 {
		return
	}
	for i := range v {
		v[i].Value /= n
	}
}

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
