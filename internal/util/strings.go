package util

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// SuggestionDistance is the largest edit distance for which a name is offered as a suggestion
const SuggestionDistance = 2

// LevenshteinDistance calculates the Levenshtein distance between two strings
func LevenshteinDistance(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			if r1[i-1] == r2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = MinOf(prev[j], curr[j-1], prev[j-1]) + 1
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// MinOf returns the smallest of the given values
func MinOf(first int, rest ...int) int {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}

	return m
}

// Closest returns the candidate nearest to input, provided it is within SuggestionDistance.
// Ties are broken alphabetically so the result does not depend on the order of candidates.
func Closest(input string, candidates []string) (string, bool) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestDistance := "", SuggestionDistance+1
	for _, c := range sorted {
		if d := LevenshteinDistance(input, c); d > 0 && d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}

// Fold returns the case-folded form of s when fold is true, s otherwise
func Fold(s string, fold bool) string {
	if !fold {
		return s
	}

	return cases.Fold().String(s)
}

// Wrap breaks text into lines no wider than width. Words longer than width are kept whole.
func Wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			if width > 0 && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}

	return lines
}
