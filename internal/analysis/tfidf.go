// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"math"
	"sort"
)

// tfidfMatrix is a dense document-term matrix with L2-normalized rows.
// vocabulary is sorted alphabetically and indexes the columns.
type tfidfMatrix struct {
	vocabulary []string
	rows       [][]float64
}

// buildTFIDF vectorizes docs using smoothed inverse document frequency:
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//	w(d, t) = count(d, t) * idf(t), then each row scaled to unit length
//
// Terms present in fewer than minDF documents are dropped, and of the rest the
// maxFeatures most frequent across the corpus are kept (ties alphabetical).
func buildTFIDF(docs []string, maxFeatures, minDF int) tfidfMatrix {
	docCounts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range vectorTerms(doc) {
			counts[term]++
			corpusFreq[term]++
		}
		for term := range counts {
			docFreq[term]++
		}
		docCounts[i] = counts
	}

	candidates := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= minDF {
			candidates = append(candidates, term)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if corpusFreq[a] != corpusFreq[b] {
			return corpusFreq[a] > corpusFreq[b]
		}
		return a < b
	})
	if maxFeatures > 0 && len(candidates) > maxFeatures {
		candidates = candidates[:maxFeatures]
	}
	sort.Strings(candidates)

	m := tfidfMatrix{vocabulary: candidates, rows: make([][]float64, len(docs))}
	if len(candidates) == 0 {
		return m
	}

	n := float64(len(docs))
	idf := make([]float64, len(candidates))
	for j, term := range candidates {
		idf[j] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	for i, counts := range docCounts {
		row := make([]float64, len(candidates))
		var norm float64
		for j, term := range candidates {
			w := float64(counts[term]) * idf[j]
			row[j] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
		m.rows[i] = row
	}
	return m
}
