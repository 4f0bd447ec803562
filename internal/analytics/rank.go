package analytics

import "strings"

// RankComparator decides whether one position outranks another. The rule is
// swappable because no authoritative seniority ordering exists in the source
// data; the default below is a deterministic table plus keyword fallback.
type RankComparator interface {
	Outranks(position, than string) bool
}

// tableRankComparator ranks known designations by table lookup. Unknown
// positions fall back to counting seniority keywords, so "Senior Medical
// Officer" still outranks "Medical Officer" without a table entry.
type tableRankComparator struct {
	ranks map[string]int
}

var defaultRanks = map[string]int{
	"staff nurse":                 10,
	"senior staff nurse":          20,
	"nursing superintendent":      30,
	"pharmacist":                  10,
	"senior pharmacist":           20,
	"lab technician":              10,
	"senior lab technician":       20,
	"medical officer":             40,
	"senior medical officer":      50,
	"taluk health officer":        60,
	"district health officer":     70,
	"deputy director":             80,
	"joint director":              90,
	"director":                    100,
	"administrative officer":      60,
	"chief administrative officer": 70,
}

var seniorityKeywords = []string{"senior", "chief", "head", "principal", "deputy director", "joint director", "director", "superintendent"}

func NewRankComparator() RankComparator {
	return &tableRankComparator{ranks: defaultRanks}
}

func (c *tableRankComparator) Outranks(position, than string) bool {
	p := strings.ToLower(strings.TrimSpace(position))
	t := strings.ToLower(strings.TrimSpace(than))
	if p == t {
		return false
	}

	pr, pok := c.ranks[p]
	tr, tok := c.ranks[t]
	if pok && tok {
		return pr > tr
	}

	return keywordScore(p) > keywordScore(t)
}

func keywordScore(position string) int {
	score := 0
	for i, kw := range seniorityKeywords {
		if strings.Contains(position, kw) {
			score += i + 1
		}
	}
	return score
}
