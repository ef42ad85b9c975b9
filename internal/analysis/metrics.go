// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"sort"

	"github.com/tomtom215/postwright/internal/models"
)

// MetricStats summarizes one engagement counter.
type MetricStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// EngagementStats summarizes the three counters and their total.
type EngagementStats struct {
	Likes    MetricStats `json:"likes"`
	Comments MetricStats `json:"comments"`
	Shares   MetricStats `json:"shares"`
	Total    MetricStats `json:"total_engagement"`
}

// ProfileEngagement is EngagementStats for a single source profile.
type ProfileEngagement struct {
	ProfileName string          `json:"profile_name"`
	PostCount   int             `json:"post_count"`
	Stats       EngagementStats `json:"stats"`
}

// EngagementMetrics is the output of ComputeEngagement.
type EngagementMetrics struct {
	PostCount int                 `json:"post_count"`
	Overall   EngagementStats     `json:"overall"`
	ByProfile []ProfileEngagement `json:"by_profile"` // Sorted by profile name
}

// Empty reports whether the metrics were computed over no posts.
func (m *EngagementMetrics) Empty() bool {
	return m.PostCount == 0
}

// ComputeEngagement computes global and per-profile engagement statistics.
func ComputeEngagement(posts []models.CollectedPost) EngagementMetrics {
	result := EngagementMetrics{
		PostCount: len(posts),
		ByProfile: []ProfileEngagement{},
	}
	if len(posts) == 0 {
		return result
	}

	result.Overall = engagementStats(posts)

	groups := make(map[string][]models.CollectedPost)
	for i := range posts {
		name := posts[i].ProfileName
		groups[name] = append(groups[name], posts[i])
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		group := groups[name]
		result.ByProfile = append(result.ByProfile, ProfileEngagement{
			ProfileName: name,
			PostCount:   len(group),
			Stats:       engagementStats(group),
		})
	}
	return result
}

func engagementStats(posts []models.CollectedPost) EngagementStats {
	n := len(posts)
	likes := make([]float64, n)
	comments := make([]float64, n)
	shares := make([]float64, n)
	totals := make([]float64, n)
	for i := range posts {
		likes[i] = float64(posts[i].Likes)
		comments[i] = float64(posts[i].Comments)
		shares[i] = float64(posts[i].Shares)
		totals[i] = float64(posts[i].TotalEngagement())
	}
	return EngagementStats{
		Likes:    metricStats(likes),
		Comments: metricStats(comments),
		Shares:   metricStats(shares),
		Total:    metricStats(totals),
	}
}

func metricStats(xs []float64) MetricStats {
	return MetricStats{Mean: mean(xs), Median: median(xs), Max: maxOf(xs)}
}

// StructureMetrics averages the features of the high-engagement half.
// Percentages are in the range 0..100.
type StructureMetrics struct {
	SampleSize       int     `json:"sample_size"`
	AvgContentLength float64 `json:"avg_content_length"`
	AvgWordCount     float64 `json:"avg_word_count"`
	AvgHashtagCount  float64 `json:"avg_hashtag_count"`
	PctWithHashtags  float64 `json:"pct_with_hashtags"`
	PctWithURL       float64 `json:"pct_with_url"`
	PctWithMention   float64 `json:"pct_with_mention"`
	PctWithEmoji     float64 `json:"pct_with_emoji"`
	PctWithQuestion  float64 `json:"pct_with_question"`
	AvgSentenceCount float64 `json:"avg_sentence_count"`
}

// FeatureCorrelations holds the Pearson correlation of each structural
// feature with total engagement over the whole collection.
type FeatureCorrelations struct {
	ContentLength float64 `json:"content_length"`
	WordCount     float64 `json:"word_count"`
	HashtagCount  float64 `json:"hashtag_count"`
	HasHashtags   float64 `json:"has_hashtags"`
	HasURL        float64 `json:"has_url"`
	HasMention    float64 `json:"has_mention"`
	HasEmoji      float64 `json:"has_emoji"`
	HasQuestion   float64 `json:"has_question"`
	SentenceCount float64 `json:"sentence_count"`
}

// StructureAnalysis is the output of AnalyzeStructure.
type StructureAnalysis struct {
	PostCount        int                 `json:"post_count"`
	MedianEngagement float64             `json:"median_total_engagement"`
	Metrics          StructureMetrics    `json:"structure_metrics"`
	Correlations     FeatureCorrelations `json:"correlations"`
}

// AnalyzeStructure splits rows at the median total engagement, averages the
// features of the rows strictly above it, and correlates every feature with
// engagement across all rows.
func AnalyzeStructure(rows []FeatureRow) StructureAnalysis {
	result := StructureAnalysis{PostCount: len(rows)}
	if len(rows) == 0 {
		return result
	}

	totals := make([]float64, len(rows))
	for i := range rows {
		totals[i] = float64(rows[i].TotalEngagement)
	}
	result.MedianEngagement = median(totals)

	high := make([]FeatureRow, 0, len(rows)/2+1)
	for i := range rows {
		if totals[i] > result.MedianEngagement {
			high = append(high, rows[i])
		}
	}
	result.Metrics = structureMetrics(high)
	result.Correlations = featureCorrelations(rows, totals)
	return result
}

func structureMetrics(rows []FeatureRow) StructureMetrics {
	m := StructureMetrics{SampleSize: len(rows)}
	if len(rows) == 0 {
		return m
	}

	column := func(f func(*FeatureRow) float64) float64 {
		xs := make([]float64, len(rows))
		for i := range rows {
			xs[i] = f(&rows[i])
		}
		return mean(xs)
	}

	m.AvgContentLength = column(func(r *FeatureRow) float64 { return float64(r.ContentLength) })
	m.AvgWordCount = column(func(r *FeatureRow) float64 { return float64(r.WordCount) })
	m.AvgHashtagCount = column(func(r *FeatureRow) float64 { return float64(r.HashtagCount) })
	m.PctWithHashtags = column(func(r *FeatureRow) float64 { return boolToFloat(r.HasHashtags) }) * 100
	m.PctWithURL = column(func(r *FeatureRow) float64 { return boolToFloat(r.HasURL) }) * 100
	m.PctWithMention = column(func(r *FeatureRow) float64 { return boolToFloat(r.HasMention) }) * 100
	m.PctWithEmoji = column(func(r *FeatureRow) float64 { return boolToFloat(r.HasEmoji) }) * 100
	m.PctWithQuestion = column(func(r *FeatureRow) float64 { return boolToFloat(r.HasQuestion) }) * 100
	m.AvgSentenceCount = column(func(r *FeatureRow) float64 { return float64(r.SentenceCount) })
	return m
}

func featureCorrelations(rows []FeatureRow, totals []float64) FeatureCorrelations {
	corr := func(f func(*FeatureRow) float64) float64 {
		xs := make([]float64, len(rows))
		for i := range rows {
			xs[i] = f(&rows[i])
		}
		return pearson(xs, totals)
	}

	return FeatureCorrelations{
		ContentLength: corr(func(r *FeatureRow) float64 { return float64(r.ContentLength) }),
		WordCount:     corr(func(r *FeatureRow) float64 { return float64(r.WordCount) }),
		HashtagCount:  corr(func(r *FeatureRow) float64 { return float64(r.HashtagCount) }),
		HasHashtags:   corr(func(r *FeatureRow) float64 { return boolToFloat(r.HasHashtags) }),
		HasURL:        corr(func(r *FeatureRow) float64 { return boolToFloat(r.HasURL) }),
		HasMention:    corr(func(r *FeatureRow) float64 { return boolToFloat(r.HasMention) }),
		HasEmoji:      corr(func(r *FeatureRow) float64 { return boolToFloat(r.HasEmoji) }),
		HasQuestion:   corr(func(r *FeatureRow) float64 { return boolToFloat(r.HasQuestion) }),
		SentenceCount: corr(func(r *FeatureRow) float64 { return float64(r.SentenceCount) }),
	}
}
