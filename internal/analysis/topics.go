// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"sort"
	"strings"

	"github.com/tomtom215/postwright/internal/models"
)

const (
	// MinClusterSample is the number of non-empty posts required before
	// topic clustering runs.
	MinClusterSample = 5

	topWordsLimit    = 20
	topBigramsLimit  = 15
	topHashtagsLimit = 15
	clusterTermLimit = 10
	minDocumentFreq  = 2
)

// TopicConfig tunes topic clustering.
type TopicConfig struct {
	Seed          int64 `json:"seed"`
	MaxClusters   int   `json:"max_clusters"`
	MaxVocabulary int   `json:"max_vocabulary"`
	Restarts      int   `json:"restarts"`
	MaxIterations int   `json:"max_iterations"`
}

// DefaultTopicConfig returns the default clustering parameters.
func DefaultTopicConfig() TopicConfig {
	return TopicConfig{
		Seed:          42,
		MaxClusters:   5,
		MaxVocabulary: 100,
		Restarts:      10,
		MaxIterations: 300,
	}
}

// TopicCluster is one group of topically similar posts.
type TopicCluster struct {
	ID    int      `json:"id"`
	Terms []string `json:"terms"`
	Size  int      `json:"size"`
}

// TopicAnalysis is the output of ExtractTopics.
type TopicAnalysis struct {
	CommonWords    []TermCount    `json:"common_words"`
	CommonBigrams  []TermCount    `json:"common_bigrams"`
	CommonHashtags []TermCount    `json:"common_hashtags"` // Lowercase, without '#'
	Topics         []TopicCluster `json:"topics"`
}

// ExtractTopics ranks keywords, bigrams and hashtags across all posts and,
// when at least MinClusterSample posts have content, clusters them into
// topics over TF-IDF vectors. Posts that share no term across two documents
// yield no clusters.
func ExtractTopics(posts []models.CollectedPost, cfg TopicConfig) TopicAnalysis {
	result := TopicAnalysis{
		CommonWords:    []TermCount{},
		CommonBigrams:  []TermCount{},
		CommonHashtags: []TermCount{},
		Topics:         []TopicCluster{},
	}
	if len(posts) == 0 {
		return result
	}

	contents := make([]string, len(posts))
	for i := range posts {
		contents[i] = posts[i].Content
	}

	tokens := keywordTokens(strings.Join(contents, " "))
	words := newFrequencyCounter()
	bigrams := newFrequencyCounter()
	for i, tok := range tokens {
		words.add(tok)
		if i > 0 {
			bigrams.add(tokens[i-1] + " " + tok)
		}
	}
	result.CommonWords = words.top(topWordsLimit)
	result.CommonBigrams = bigrams.top(topBigramsLimit)

	hashtags := newFrequencyCounter()
	for _, content := range contents {
		for _, tag := range hashtagsOf(content) {
			hashtags.add(strings.ToLower(tag))
		}
	}
	result.CommonHashtags = hashtags.top(topHashtagsLimit)

	result.Topics = clusterTopics(contents, cfg)
	return result
}

// clusterTopics returns an empty slice when there are too few posts with
// content or no term survives the document frequency cut.
func clusterTopics(contents []string, cfg TopicConfig) []TopicCluster {
	valid := make([]string, 0, len(contents))
	for _, c := range contents {
		if c != "" {
			valid = append(valid, c)
		}
	}
	if len(valid) < MinClusterSample {
		return []TopicCluster{}
	}

	matrix := buildTFIDF(valid, cfg.MaxVocabulary, minDocumentFreq)
	if len(matrix.vocabulary) == 0 {
		return []TopicCluster{}
	}

	k := len(valid) / 2
	if cfg.MaxClusters > 0 && k > cfg.MaxClusters {
		k = cfg.MaxClusters
	}

	km := runKMeans(matrix.rows, kmeansConfig{
		k:             k,
		restarts:      cfg.Restarts,
		maxIterations: cfg.MaxIterations,
		seed:          cfg.Seed,
	})

	clusters := make([]TopicCluster, len(km.centroids))
	for c := range clusters {
		clusters[c] = TopicCluster{
			ID:    c,
			Terms: topCentroidTerms(km.centroids[c], matrix.vocabulary, clusterTermLimit),
		}
	}
	for _, label := range km.labels {
		clusters[label].Size++
	}
	return clusters
}

// topCentroidTerms returns the n terms with the highest centroid weight,
// breaking ties alphabetically.
func topCentroidTerms(centroid []float64, vocabulary []string, n int) []string {
	idx := make([]int, len(vocabulary))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return centroid[idx[a]] > centroid[idx[b]]
	})
	if len(idx) > n {
		idx = idx[:n]
	}
	terms := make([]string, len(idx))
	for i, j := range idx {
		terms[i] = vocabulary[j]
	}
	return terms
}
