// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// wordPattern keeps hyphenated words whole so they fail the all-letters
	// check below, and splits on apostrophes so possessives keep their stem.
	wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_-]+`)

	// vectorTermPattern matches runs of two or more word characters.
	vectorTermPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)
)

// keywordTokens lowercases text and returns the alphabetic, non-stopword
// tokens longer than two characters, in order.
func keywordTokens(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) <= 2 || !isAlpha(tok) || isStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// vectorTerms returns the terms used to build TF-IDF vectors.
func vectorTerms(text string) []string {
	raw := vectorTermPattern.FindAllString(strings.ToLower(text), -1)
	terms := raw[:0]
	for _, tok := range raw {
		if !isStopword(tok) {
			terms = append(terms, tok)
		}
	}
	return terms
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// TermCount is a term and the number of times it occurred.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// frequencyCounter counts terms and remembers first-seen order so ties rank
// by first occurrence.
type frequencyCounter struct {
	counts map[string]int
	order  []string
}

func newFrequencyCounter() *frequencyCounter {
	return &frequencyCounter{counts: make(map[string]int)}
}

func (c *frequencyCounter) add(term string) {
	if _, seen := c.counts[term]; !seen {
		c.order = append(c.order, term)
	}
	c.counts[term]++
}

// top returns at most n terms by descending count.
func (c *frequencyCounter) top(n int) []TermCount {
	ranked := make([]TermCount, len(c.order))
	for i, term := range c.order {
		ranked[i] = TermCount{Term: term, Count: c.counts[term]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
