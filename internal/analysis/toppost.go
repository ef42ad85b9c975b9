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

// TopPost is a high-engagement post with the flags the generator uses when
// presenting it as an example.
type TopPost struct {
	PostID          int64    `json:"post_id"`
	ProfileName     string   `json:"profile_name"`
	Content         string   `json:"content"`
	Likes           int      `json:"likes"`
	Comments        int      `json:"comments"`
	Shares          int      `json:"shares"`
	TotalEngagement int      `json:"total_engagement"`
	WordCount       int      `json:"word_count"`
	Hashtags        []string `json:"hashtags"` // As written, without '#'
	HasURL          bool     `json:"has_url"`
	HasMention      bool     `json:"has_mention"`
	HasQuestion     bool     `json:"has_question"`
}

// TopPosts returns at most limit posts ordered by total engagement
// descending, then by ID ascending. Fewer posts than limit are returned as-is.
func TopPosts(posts []models.CollectedPost, limit int) []TopPost {
	if limit <= 0 || len(posts) == 0 {
		return []TopPost{}
	}

	ranked := make([]*models.CollectedPost, len(posts))
	for i := range posts {
		ranked[i] = &posts[i]
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ti, tj := ranked[i].TotalEngagement(), ranked[j].TotalEngagement()
		if ti != tj {
			return ti > tj
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]TopPost, len(ranked))
	for i, p := range ranked {
		top[i] = TopPost{
			PostID:          p.ID,
			ProfileName:     p.ProfileName,
			Content:         p.Content,
			Likes:           p.Likes,
			Comments:        p.Comments,
			Shares:          p.Shares,
			TotalEngagement: p.TotalEngagement(),
			WordCount:       len(strings.Fields(p.Content)),
			Hashtags:        hashtagsOf(p.Content),
			HasURL:          urlPattern.MatchString(p.Content),
			HasMention:      mentionPattern.MatchString(p.Content),
			HasQuestion:     strings.Contains(p.Content, "?"),
		}
	}
	return top
}
