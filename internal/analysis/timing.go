// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import "sort"

const topTimeSlots = 3

// BucketEngagement is the mean engagement of the posts in one time bucket.
type BucketEngagement struct {
	Bucket         int     `json:"bucket"`
	PostCount      int     `json:"post_count"`
	MeanEngagement float64 `json:"mean_engagement"`
}

// TimingAnalysis is the output of AnalyzeTiming. Best lists are ranked by
// mean engagement; the full tables are ordered by bucket.
type TimingAnalysis struct {
	BestHours      []int              `json:"best_hours"`
	BestDays       []int              `json:"best_days"` // 0=Monday..6=Sunday
	HourEngagement []BucketEngagement `json:"hour_engagement"`
	DayEngagement  []BucketEngagement `json:"day_engagement"`
}

// AnalyzeTiming buckets rows with a known publish date by hour of day and
// day of week. Rows without a publish date are ignored.
func AnalyzeTiming(rows []FeatureRow) TimingAnalysis {
	hours := make(map[int][]float64)
	days := make(map[int][]float64)
	for i := range rows {
		if !rows[i].Timed {
			continue
		}
		total := float64(rows[i].TotalEngagement)
		hours[rows[i].HourOfDay] = append(hours[rows[i].HourOfDay], total)
		days[rows[i].DayOfWeek] = append(days[rows[i].DayOfWeek], total)
	}

	hourTable := bucketTable(hours)
	dayTable := bucketTable(days)
	return TimingAnalysis{
		BestHours:      bestBuckets(hourTable, topTimeSlots),
		BestDays:       bestBuckets(dayTable, topTimeSlots),
		HourEngagement: hourTable,
		DayEngagement:  dayTable,
	}
}

func bucketTable(groups map[int][]float64) []BucketEngagement {
	table := make([]BucketEngagement, 0, len(groups))
	for bucket, totals := range groups {
		table = append(table, BucketEngagement{
			Bucket:         bucket,
			PostCount:      len(totals),
			MeanEngagement: mean(totals),
		})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Bucket < table[j].Bucket })
	return table
}

// bestBuckets ranks by mean engagement descending, lower bucket first on ties.
func bestBuckets(table []BucketEngagement, n int) []int {
	ranked := make([]BucketEngagement, len(table))
	copy(ranked, table)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanEngagement > ranked[j].MeanEngagement
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	best := make([]int, len(ranked))
	for i := range ranked {
		best[i] = ranked[i].Bucket
	}
	return best
}
