// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"sort"
	"strings"
	"unicode"
)

// ContentConfig contains configuration for the bag-of-words content model.
type ContentConfig struct {
	// MinDocFreq drops tokens that appear in fewer documents.
	MinDocFreq int

	// StopWords are removed before counting. Nil selects EnglishStopWords.
	StopWords map[string]struct{}
}

// DefaultContentConfig returns default content model configuration.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		MinDocFreq: 2,
		StopWords:  EnglishStopWords,
	}
}

// ContentModel holds one L2-normalized term-count row per item. Because every
// non-zero row has unit length, the dot product of two rows is their cosine
// similarity.
type ContentModel struct {
	vocab []string
	rows  []SparseVector
}

// BuildContentModel vectorizes docs, one row per document in input order.
//
// Tokens are lowercase runs of at least two letters or digits. A corpus in
// which no token reaches MinDocFreq yields a model with zero columns whose
// similarities are all zero.
func BuildContentModel(docs []string, cfg ContentConfig) *ContentModel {
	if cfg.MinDocFreq <= 0 {
		cfg.MinDocFreq = 2
	}
	if cfg.StopWords == nil {
		cfg.StopWords = EnglishStopWords
	}

	counts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tc := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			if _, stop := cfg.StopWords[tok]; stop {
				continue
			}
			tc[tok]++
		}
		for tok := range tc {
			docFreq[tok]++
		}
		counts[i] = tc
	}

	vocab := make([]string, 0, len(docFreq))
	for tok, df := range docFreq {
		if df >= cfg.MinDocFreq {
			vocab = append(vocab, tok)
		}
	}
	sort.Strings(vocab)

	column := make(map[string]int, len(vocab))
	for j, tok := range vocab {
		column[tok] = j
	}

	rows := make([]SparseVector, len(docs))
	for i, tc := range counts {
		row := make(SparseVector, 0, len(tc))
		for tok, n := range tc {
			if j, ok := column[tok]; ok {
				row = append(row, Entry{Index: j, Value: float64(n)})
			}
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Index < row[b].Index })
		normalizeL2(row)
		rows[i] = row
	}

	return &ContentModel{vocab: vocab, rows: rows}
}

// Tokenize lowercases s and splits it into runs of letters and digits,
// keeping runs of two or more characters.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Similarity returns the cosine similarity of items i and j.
// Out-of-range indices score zero.
func (m *ContentModel) Similarity(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m.rows) || j >= len(m.rows) {
		return 0
	}
	return m.rows[i].Dot(m.rows[j])
}

// Row returns the feature row of item i. The slice must not be modified.
func (m *ContentModel) Row(i int) SparseVector {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return m.rows[i]
}

// Vocabulary returns the retained tokens in column order.
func (m *ContentModel) Vocabulary() []string {
	return m.vocab
}

// NumItems returns the number of rows.
func (m *ContentModel) NumItems() int {
	return len(m.rows)
}

// NumFeatures returns the number of vocabulary columns.
func (m *ContentModel) NumFeatures() int {
	return len(m.vocab)
}
