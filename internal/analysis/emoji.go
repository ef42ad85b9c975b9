// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"unicode"

	"github.com/forPelevin/gomoji"
)

// variationSelector16 requests emoji presentation for the preceding rune.
const variationSelector16 = "\ufe0f"

// containsEmoji reports whether s contains an emoji from the Unicode emoji
// list. Symbols that are emoji only in their fully-qualified form (✔ for
// ✔️, © for ©️) count even when written without the variation selector.
// Lookalike dingbats such as ★ ✓ ➤ do not.
func containsEmoji(s string) bool {
	if gomoji.ContainsEmoji(s) {
		return true
	}
	for _, r := range s {
		if r < 0xa9 || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			continue
		}
		if gomoji.ContainsEmoji(string(r) + variationSelector16) {
			return true
		}
	}
	return false
}
