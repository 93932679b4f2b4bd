package utils

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// DefaultBannedWords seeds the comment filter. Extra words come from PROFANITY_WORDS.
var DefaultBannedWords = []string{
	"fuck", "fucking", "fucker", "motherfucker", "shit", "bullshit",
	"bastard", "bitch", "dick", "cock", "pussy", "cunt", "asshole",
	"dumbass", "jackass", "retard", "slut", "whore", "wanker", "twat",
	"prick", "douchebag", "dipshit", "shithead",
	"mierda", "puta", "pelotudo", "boludo", "forro", "conchudo", "carajo",
}

// ProfanityFilter masks banned words with '*', one per rune.
// ASCII words match on word boundaries, case-insensitively; other words match
// as plain substrings.
type ProfanityFilter struct {
	pattern *regexp.Regexp
}

func NewProfanityFilter(words []string) *ProfanityFilter {
	seen := map[string]struct{}{}
	var ascii, other []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		if isASCIIWord(w) {
			ascii = append(ascii, regexp.QuoteMeta(w))
		} else {
			other = append(other, regexp.QuoteMeta(w))
		}
	}
	if len(ascii)+len(other) == 0 {
		return &ProfanityFilter{}
	}

	// longest first so alternation prefers "motherfucker" over "fucker"
	byLen := func(s []string) {
		sort.Slice(s, func(i, j int) bool { return len(s[i]) > len(s[j]) })
	}
	byLen(ascii)
	byLen(other)

	var alts []string
	if len(ascii) > 0 {
		alts = append(alts, `\b(?:`+strings.Join(ascii, "|")+`)\b`)
	}
	if len(other) > 0 {
		alts = append(alts, `(?:`+strings.Join(other, "|")+`)`)
	}
	return &ProfanityFilter{pattern: regexp.MustCompile(`(?i)` + strings.Join(alts, "|"))}
}

func (pf *ProfanityFilter) Mask(s string) string {
	if pf == nil || pf.pattern == nil || s == "" {
		return s
	}
	return pf.pattern.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat("*", len([]rune(m)))
	})
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return false
		}
	}
	return s != ""
}
