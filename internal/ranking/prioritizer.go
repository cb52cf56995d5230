// Package ranking scores and orders invalid-list candidates so that the
// limited daily lookup budget is spent on words most likely to be valid
// English.
package ranking

import (
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"sort"
	"strings"
)

// Candidate is a word annotated with its priority score.
type Candidate struct {
	Word    string
	Score   float64
	Reasons []string
}

// tierSize groups scores into buckets of 5 points. Candidates inside the same
// bucket are shuffled so a fixed daily budget never starves later-alphabet
// words.
const tierSize = 5

// Prefixes that generate huge numbers of synthetic compounds. Words starting
// with these are pre-filtered away: the lookup budget is better spent
// elsewhere, even though a few true words are lost.
var productivePrefixes = []string{
	"anti", "non", "pre", "post", "multi", "semi", "pseudo", "quasi",
	"ultra", "super", "hyper", "mega", "micro", "macro", "neo", "proto",
	"counter", "inter", "intra", "extra", "trans",
}

// Prefixes that appear in real dictionary words.
var realWordPrefixes = []string{"un", "re", "dis", "mis", "over", "out", "under"}

// Common English suffixes.
var suffixes = []string{
	"ing", "ed", "er", "est", "ly", "tion", "sion", "ness", "ment",
	"able", "ible", "ful", "less", "ous", "ive", "al", "ical",
	"ity", "ance", "ence", "ism", "ist",
}

// Patterns characteristic of non-English tokens: OCR noise, transliterations
// and foreign orthographies.
var nonEnglishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[^aeiou]{5}`),     // 5+ consecutive consonants
	regexp.MustCompile(`[aeiou]{4}`),      // 4+ consecutive vowels
	regexp.MustCompile(`q[^u]`),           // q not followed by u
	regexp.MustCompile(`q$`),              // trailing q
	regexp.MustCompile(`[jkqvwxz]{3}`),    // rare consonant runs
	regexp.MustCompile(`[^a-z]`),          // non-letter characters
	regexp.MustCompile(`szcz|zcz|tsz`),    // Polish clusters
	regexp.MustCompile(`schw|tsch`),       // German clusters
	regexp.MustCompile(`kh|gh[^t]|zh|dj`), // transliteration digraphs
	regexp.MustCompile(`^[^aeiou]{4}`),    // 4 consonants at start
	regexp.MustCompile(`[^aeiou]{4}$`),    // 4 consonants at end
}

const commonStartingLetters = "stcpbdmrahfglewn"

// Prioritizer selects and orders candidates for dictionary lookup.
// The random source is injected so tests can run with a fixed seed.
type Prioritizer struct {
	rand *rand.Rand
}

// NewPrioritizer creates a Prioritizer using the given random source.
func NewPrioritizer(r *rand.Rand) *Prioritizer {
	return &Prioritizer{rand: r}
}

// IsLikelyEnglish is the pre-filter applied before scoring. It intentionally
// trades recall for precision: a word that matches any non-English pattern is
// dropped even if it happens to be a real word.
func (p *Prioritizer) IsLikelyEnglish(word string) bool {
	if len(word) < 3 || len(word) > 15 {
		return false
	}
	if hasTripledLetter(word) {
		return false
	}
	for _, pattern := range nonEnglishPatterns {
		if pattern.MatchString(word) {
			return false
		}
	}

	ratio := vowelRatio(word)
	if ratio < 0.15 || ratio > 0.6 {
		return false
	}

	for _, prefix := range productivePrefixes {
		if strings.HasPrefix(word, prefix) && len(word) > len(prefix)+3 {
			return false
		}
	}
	return true
}

// Score rates a word's likelihood of being a valid English word on a 0-100
// scale from independent additive factors.
func (p *Prioritizer) Score(word string) Candidate {
	score := 50.0
	var reasons []string
	length := len(word)

	switch {
	case length >= 3 && length <= 5:
		score += 25
		reasons = append(reasons, fmt.Sprintf("short word (%d chars)", length))
	case length >= 6 && length <= 8:
		score += 15
		reasons = append(reasons, fmt.Sprintf("medium word (%d chars)", length))
	case length >= 9 && length <= 12:
		score += 5
		reasons = append(reasons, fmt.Sprintf("longer word (%d chars)", length))
	case length == 2:
		score += 10
		reasons = append(reasons, "2-letter word")
	case length >= 13 && length <= 16:
		score -= 10
		reasons = append(reasons, "long word")
	default:
		score -= 30
		reasons = append(reasons, fmt.Sprintf("very long (%d chars)", length))
	}

	for _, prefix := range productivePrefixes {
		if strings.HasPrefix(word, prefix) && length > len(prefix)+3 {
			score -= 35
			reasons = append(reasons, "productive prefix compound: "+prefix+"-")
			break
		}
	}

	for _, prefix := range realWordPrefixes {
		if strings.HasPrefix(word, prefix) && length > len(prefix)+2 {
			if length <= 10 {
				score += 5
				reasons = append(reasons, "real-word prefix: "+prefix+"-")
			}
			break
		}
	}

	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) && length > len(suffix)+2 {
			if length <= 10 {
				score += 5
				reasons = append(reasons, "common suffix: -"+suffix)
			}
			break
		}
	}

	if ratio := vowelRatio(word); ratio >= 0.25 && ratio <= 0.5 {
		score += 10
		reasons = append(reasons, "good vowel balance")
	} else {
		score -= 10
		reasons = append(reasons, "poor vowel balance")
	}

	if length > 0 && strings.ContainsRune(commonStartingLetters, rune(word[0])) {
		score += 5
		reasons = append(reasons, "common starting letter")
	}

	if distinctLetters(word) >= float64(length)*0.6 {
		score += 5
		reasons = append(reasons, "good letter diversity")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Candidate{Word: word, Score: score, Reasons: reasons}
}

// Prioritize pre-filters, scores and orders candidates, returning at most
// limit of them. Higher-scoring tiers are fully exhausted before lower ones;
// order within a tier is randomized.
func (p *Prioritizer) Prioritize(candidateWords []string, limit int) []Candidate {
	if limit <= 0 || len(candidateWords) == 0 {
		return nil
	}

	likelyEnglish := make([]string, 0, len(candidateWords))
	for _, word := range candidateWords {
		if p.IsLikelyEnglish(word) {
			likelyEnglish = append(likelyEnglish, word)
		}
	}
	slog.Default().Debug("pre-filtered candidates",
		"total", len(candidateWords),
		"passed", len(likelyEnglish))

	// With a multi-million word invalid list, scoring everything each run is
	// wasted work. Sample a pool well above the budget and score that.
	if len(likelyEnglish) > limit*10 {
		sampleSize := limit * 50
		if sampleSize > len(likelyEnglish) {
			sampleSize = len(likelyEnglish)
		}
		p.rand.Shuffle(len(likelyEnglish), func(i, j int) {
			likelyEnglish[i], likelyEnglish[j] = likelyEnglish[j], likelyEnglish[i]
		})
		likelyEnglish = likelyEnglish[:sampleSize]
	}

	tiers := make(map[int][]Candidate)
	for _, word := range likelyEnglish {
		candidate := p.Score(word)
		tier := int(candidate.Score) / tierSize * tierSize
		tiers[tier] = append(tiers[tier], candidate)
	}

	tierKeys := make([]int, 0, len(tiers))
	for tier := range tiers {
		tierKeys = append(tierKeys, tier)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tierKeys)))

	result := make([]Candidate, 0, limit)
	for _, tier := range tierKeys {
		tierCandidates := tiers[tier]
		p.rand.Shuffle(len(tierCandidates), func(i, j int) {
			tierCandidates[i], tierCandidates[j] = tierCandidates[j], tierCandidates[i]
		})

		needed := limit - len(result)
		if needed <= 0 {
			break
		}
		if needed > len(tierCandidates) {
			needed = len(tierCandidates)
		}
		result = append(result, tierCandidates[:needed]...)
	}
	return result
}

// Sample returns up to limit candidates drawn uniformly at random, bypassing
// scoring. Used by sweep runs in sample mode.
func (p *Prioritizer) Sample(candidateWords []string, limit int) []Candidate {
	if limit <= 0 || len(candidateWords) == 0 {
		return nil
	}
	shuffled := make([]string, len(candidateWords))
	copy(shuffled, candidateWords)
	p.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	result := make([]Candidate, 0, limit)
	for _, word := range shuffled[:limit] {
		result = append(result, Candidate{Word: word})
	}
	return result
}

// hasTripledLetter reports whether word contains the same letter three or
// more times in a row. No English word does.
func hasTripledLetter(word string) bool {
	for i := 2; i < len(word); i++ {
		if word[i] == word[i-1] && word[i-1] == word[i-2] {
			return true
		}
	}
	return false
}

func vowelRatio(word string) float64 {
	if len(word) == 0 {
		return 0
	}
	vowels := 0
	for _, c := range word {
		switch c {
		case 'a', 'e', 'i', 'o', 'u':
			vowels++
		}
	}
	return float64(vowels) / float64(len(word))
}

func distinctLetters(word string) float64 {
	seen := make(map[rune]struct{}, len(word))
	for _, c := range word {
		seen[c] = struct{}{}
	}
	return float64(len(seen))
}
