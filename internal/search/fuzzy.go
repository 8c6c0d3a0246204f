// Package search matches typed patterns against file names and tells which
// files ignore files exclude.
package search

import (
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scoring of a fuzzy match: every matched rune earns runeScore, more when
// it follows the previous match or starts a word; every skipped rune
// between two matches costs gapPenalty.
const (
	runeScore        = 10
	consecutiveBonus = 8
	boundaryBonus    = 6
	gapPenalty       = 1
	maxGapPenalty    = 8
)

// FuzzyMatch reports whether the runes of pattern appear in name in that
// order, and scores the best such match. Case is ignored unless pattern
// has an upper case letter.
func FuzzyMatch(pattern, name string) (score int, ok bool) {
	pat := []rune(pattern)
	if len(pat) == 0 {
		return 0, true
	}
	fold := !hasUpper(pat)
	matched := fuzzy.Match(pattern, name)
	if fold {
		matched = fuzzy.MatchFold(pattern, name)
	}
	if !matched {
		return 0, false
	}

	// the name matches, find the best placement of the pattern
	text := []rune(name)
	if fold {
		pat = lowerRunes(pat)
	}
	folded := text
	if fold {
		folded = lowerRunes(text)
	}

	best := -1
	for start := range folded {
		if folded[start] != pat[0] {
			continue
		}
		if s, matched := scoreFrom(pat, folded, text, start); matched && s > best {
			best = s
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// scoreFrom matches pat greedily from text[start].
func scoreFrom(pat, folded, text []rune, start int) (int, bool) {
	score := 0
	prev := -1
	i := start
	for _, r := range pat {
		for i < len(folded) && folded[i] != r {
			i++
		}
		if i == len(folded) {
			return 0, false
		}
		score += runeScore
		if isBoundary(text, i) {
			score += boundaryBonus
		}
		switch {
		case prev < 0:
		case i == prev+1:
			score += consecutiveBonus
		default:
			score -= min((i-prev-1)*gapPenalty, maxGapPenalty)
		}
		prev = i
		i++
	}
	// earlier matches are slightly better
	return score - min(start, maxGapPenalty), true
}

// isBoundary reports a rune starting a word: the first one, one following
// a separator, or an upper case letter after a lower case one.
func isBoundary(text []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, cur := text[i-1], text[i]
	switch prev {
	case '-', '_', '.', ' ', '/', '\\':
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}

func hasUpper(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
