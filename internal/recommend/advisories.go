// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/postwright/internal/analysis"
)

// Policy thresholds for conditional structure advisories. They are tunable
// policy, not derived values.
const (
	// EmojiSharePercent is the share of high-engagement posts (0..100) that
	// must contain an emoji before emojis are recommended.
	EmojiSharePercent = 50.0

	// CorrelationThreshold is the correlation with engagement a feature must
	// exceed (strictly) before it is recommended.
	CorrelationThreshold = 0.2

	keywordAdvisoryLimit = 10
	hashtagAdvisoryLimit = 5
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// RecommendationSet holds advisory strings grouped by concern. Every list is
// non-nil; an all-empty set means "no opinion, use generation defaults".
type RecommendationSet struct {
	Structure []string `json:"structure"`
	Topics    []string `json:"topics"`
	Timing    []string `json:"timing"`
	Status    Status   `json:"status"`
}

// Empty reports whether the set carries no advice at all.
func (r *RecommendationSet) Empty() bool {
	return len(r.Structure) == 0 && len(r.Topics) == 0 && len(r.Timing) == 0
}

func emptySet(status Status) RecommendationSet {
	return RecommendationSet{
		Structure: []string{},
		Topics:    []string{},
		Timing:    []string{},
		Status:    status,
	}
}

// BuildRecommendations renders analysis results into advisory text.
// Each advisory is emitted only when its underlying data supports it.
func BuildRecommendations(structure *analysis.StructureAnalysis, topics *analysis.TopicAnalysis, timing *analysis.TimingAnalysis) RecommendationSet {
	set := emptySet(StatusOK)
	set.Structure = structureAdvisories(structure)
	set.Topics = topicAdvisories(topics)
	set.Timing = timingAdvisories(timing)
	return set
}

func structureAdvisories(s *analysis.StructureAnalysis) []string {
	out := []string{}
	if s == nil {
		return out
	}

	m := s.Metrics
	if m.AvgWordCount > 0 {
		out = append(out, fmt.Sprintf("Aim for around %d words per post", int(m.AvgWordCount)))
	}
	if m.AvgHashtagCount > 0 {
		out = append(out, fmt.Sprintf("Use approximately %d hashtags per post", int(m.AvgHashtagCount)))
	}
	if m.PctWithEmoji > EmojiSharePercent {
		out = append(out, "Include emojis in your posts for better engagement")
	}
	if s.Correlations.HasQuestion > CorrelationThreshold {
		out = append(out, "Including questions in posts tends to increase engagement")
	}
	if s.Correlations.HasURL > CorrelationThreshold {
		out = append(out, "Including links in posts correlates with higher engagement")
	}
	return out
}

func topicAdvisories(t *analysis.TopicAnalysis) []string {
	out := []string{}
	if t == nil {
		return out
	}

	if len(t.CommonWords) > 0 {
		keywords := termsOf(t.CommonWords, keywordAdvisoryLimit, "")
		out = append(out, "Focus on these key topics: "+strings.Join(keywords, ", "))
	}
	if len(t.CommonHashtags) > 0 {
		tags := termsOf(t.CommonHashtags, hashtagAdvisoryLimit, "#")
		out = append(out, "Consider using these popular hashtags: "+strings.Join(tags, ", "))
	}
	return out
}

func timingAdvisories(t *analysis.TimingAnalysis) []string {
	out := []string{}
	if t == nil {
		return out
	}

	if len(t.BestHours) > 0 {
		hours := make([]string, len(t.BestHours))
		for i, h := range t.BestHours {
			hours[i] = strconv.Itoa(h)
		}
		out = append(out, "Post at these hours for maximum engagement: "+strings.Join(hours, ", "))
	}
	if len(t.BestDays) > 0 {
		days := make([]string, len(t.BestDays))
		for i, d := range t.BestDays {
			days[i] = WeekdayName(d)
		}
		out = append(out, "Best days to post: "+strings.Join(days, ", "))
	}
	return out
}

// WeekdayName maps 0=Monday..6=Sunday to its English name. Out-of-range
// values are rendered as numbers.
func WeekdayName(day int) string {
	if day >= 0 && day < len(weekdayNames) {
		return weekdayNames[day]
	}
	return strconv.Itoa(day)
}

func termsOf(counts []analysis.TermCount, limit int, prefix string) []string {
	if len(counts) > limit {
		counts = counts[:limit]
	}
	terms := make([]string, len(counts))
	for i, c := range counts {
		terms[i] = prefix + c.Term
	}
	return terms
}
