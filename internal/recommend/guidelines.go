// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/postwright/internal/analysis"
)

const (
	maxExampleChars = 300
	ellipsis        = "..."
)

// RenderGuidelines renders the prompt block handed to the post generator:
// bulleted structure, topic and timing guidelines followed by numbered
// examples of successful posts. Sections with no content are omitted and an
// entirely empty input renders "".
func RenderGuidelines(set *RecommendationSet, topPosts []analysis.TopPost) string {
	var b strings.Builder

	if set != nil && !set.Empty() {
		b.WriteString("Based on analysis of successful posts, please follow these guidelines:\n")
		writeSection(&b, "Structure guidelines", set.Structure)
		writeSection(&b, "Topic guidelines", set.Topics)
		writeSection(&b, "Timing guidelines", set.Timing)
	}

	examples := 0
	for i := range topPosts {
		content := topPosts[i].Content
		if content == "" {
			continue
		}
		if examples == 0 {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString("Here are examples of successful posts for reference:\n")
		}
		examples++
		fmt.Fprintf(&b, "\nExample %d:\n%s\n", examples, truncateExample(content))
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// truncateExample shortens content longer than maxExampleChars characters to
// exactly maxExampleChars, the last three being an ellipsis.
func truncateExample(content string) string {
	runes := []rune(content)
	if len(runes) <= maxExampleChars {
		return content
	}
	return string(runes[:maxExampleChars-len(ellipsis)]) + ellipsis
}
