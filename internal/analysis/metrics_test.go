// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"testing"

	"github.com/tomtom215/postwright/internal/models"
)

// scenarioA has three strong posts (170 engagement) with 10, 20 and 30 words
// and three weak posts (1 engagement) with 100 words each.
func scenarioA() []models.CollectedPost {
	return []models.CollectedPost{
		makePost(1, words(10), 100, 50, 20),
		makePost(2, words(20), 100, 50, 20),
		makePost(3, words(30), 100, 50, 20),
		makePost(4, words(100), 1, 0, 0),
		makePost(5, words(100), 1, 0, 0),
		makePost(6, words(100), 1, 0, 0),
	}
}

func TestComputeEngagement_Empty(t *testing.T) {
	t.Parallel()

	m := ComputeEngagement(nil)
	if !m.Empty() {
		t.Error("expected empty metrics")
	}
	if m.ByProfile == nil || len(m.ByProfile) != 0 {
		t.Errorf("ByProfile = %v, want empty non-nil slice", m.ByProfile)
	}
}

func TestComputeEngagement_TotalIsSumOfCounters(t *testing.T) {
	t.Parallel()

	posts := []models.CollectedPost{
		makePost(1, "", 3, 2, 1),
		makePost(2, "", 10, 0, 5),
		makePost(3, "", 0, 0, 0),
	}
	m := ComputeEngagement(posts)

	var sum float64
	for i := range posts {
		sum += float64(posts[i].Likes + posts[i].Comments + posts[i].Shares)
	}
	checkFloat(t, "Total.Mean", m.Overall.Total.Mean, sum/3)
	checkFloat(t, "Total.Mean vs parts",
		m.Overall.Total.Mean, m.Overall.Likes.Mean+m.Overall.Comments.Mean+m.Overall.Shares.Mean)
	checkFloat(t, "Total.Median", m.Overall.Total.Median, 6)
	checkFloat(t, "Total.Max", m.Overall.Total.Max, 15)
	checkFloat(t, "Likes.Median", m.Overall.Likes.Median, 3)
}

func TestComputeEngagement_ByProfileSorted(t *testing.T) {
	t.Parallel()

	posts := []models.CollectedPost{
		{ID: 1, ProfileName: "zed", Likes: 4},
		{ID: 2, ProfileName: "amy", Likes: 1},
		{ID: 3, ProfileName: "zed", Likes: 8},
	}
	m := ComputeEngagement(posts)

	if len(m.ByProfile) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(m.ByProfile))
	}
	if m.ByProfile[0].ProfileName != "amy" || m.ByProfile[1].ProfileName != "zed" {
		t.Errorf("profiles not sorted: %+v", m.ByProfile)
	}
	zed := m.ByProfile[1]
	checkInt(t, "zed.PostCount", zed.PostCount, 2)
	checkFloat(t, "zed.Likes.Mean", zed.Stats.Likes.Mean, 6)
	checkFloat(t, "zed.Likes.Max", zed.Stats.Likes.Max, 8)
}

func TestAnalyzeStructure_ScenarioA(t *testing.T) {
	t.Parallel()

	s := AnalyzeStructure(ExtractAll(scenarioA()))

	checkFloat(t, "MedianEngagement", s.MedianEngagement, 85.5)
	checkInt(t, "SampleSize", s.Metrics.SampleSize, 3)
	checkFloat(t, "AvgWordCount", s.Metrics.AvgWordCount, 20)
	if s.Correlations.WordCount >= 0 {
		t.Errorf("expected negative word count correlation, got %v", s.Correlations.WordCount)
	}
}

func TestAnalyzeStructure_Percentages(t *testing.T) {
	t.Parallel()

	posts := []models.CollectedPost{
		makePost(1, "Great day 😀 #win", 50, 0, 0),
		makePost(2, "Plain text?", 40, 0, 0),
		makePost(3, "low", 1, 0, 0),
		makePost(4, "low", 1, 0, 0),
	}
	s := AnalyzeStructure(ExtractAll(posts))

	checkInt(t, "SampleSize", s.Metrics.SampleSize, 2)
	checkFloat(t, "PctWithEmoji", s.Metrics.PctWithEmoji, 50)
	checkFloat(t, "PctWithHashtags", s.Metrics.PctWithHashtags, 50)
	checkFloat(t, "PctWithQuestion", s.Metrics.PctWithQuestion, 50)
	checkFloat(t, "PctWithURL", s.Metrics.PctWithURL, 0)
	checkFloat(t, "AvgHashtagCount", s.Metrics.AvgHashtagCount, 0.5)
	// No post has a URL, so the correlation is undefined and reported as 0.
	checkFloat(t, "Correlations.HasURL", s.Correlations.HasURL, 0)
}

func TestAnalyzeStructure_EqualEngagementHasNoHighHalf(t *testing.T) {
	t.Parallel()

	posts := []models.CollectedPost{makePost(1, "a", 5, 0, 0), makePost(2, "b", 5, 0, 0)}
	s := AnalyzeStructure(ExtractAll(posts))

	checkInt(t, "SampleSize", s.Metrics.SampleSize, 0)
	checkFloat(t, "AvgWordCount", s.Metrics.AvgWordCount, 0)
}

func TestAnalyzeStructure_Empty(t *testing.T) {
	t.Parallel()

	s := AnalyzeStructure(nil)
	checkInt(t, "PostCount", s.PostCount, 0)
	if s.Metrics != (StructureMetrics{}) || s.Correlations != (FeatureCorrelations{}) {
		t.Errorf("expected zero result, got %+v", s)
	}
}
