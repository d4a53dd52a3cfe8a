package advisor

import (
	"regexp"
	"strconv"
	"strings"
)

// categoryRule maps any of its keywords to one catalog category. Matching is
// plain substring containment on the lower-cased question, so a keyword
// embedded in a longer word still hits. Rules are evaluated in order and the
// first hit wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{keywords: []string{"laptop", "notebook", "komputer", "computer"}, category: "laptop"},
	{keywords: []string{"smartphone", "hp", "handphone", "ponsel", "phone", "telepon"}, category: "smartphone"},
	{keywords: []string{"tablet", "ipad"}, category: "tablet"},
	{keywords: []string{"headphone", "earphone", "headset", "tws"}, category: "headphone"},
	{keywords: []string{"kamera", "camera"}, category: "kamera"},
	{keywords: []string{"audio", "speaker"}, category: "audio"},
	{keywords: []string{"tv", "televisi"}, category: "tv"},
	{keywords: []string{"drone"}, category: "drone"},
	{keywords: []string{"jam", "smartwatch", "watch"}, category: "jam"},
}

// jutaPattern picks up price ceilings written as "15 juta" or "5juta".
var jutaPattern = regexp.MustCompile(`(\d+)\s*juta`)

const defaultBudgetCeiling int64 = 5_000_000

func detectCategory(question string) string {
	q := strings.ToLower(question)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.category
			}
		}
	}
	return ""
}

// detectMaxPrice runs two independent checks in fixed order: the juta pattern
// first, then the budget/murah default. Zero means no ceiling.
func detectMaxPrice(question string) int64 {
	q := strings.ToLower(question)

	if m := jutaPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return n * 1_000_000
		}
	}

	if strings.Contains(q, "budget") || strings.Contains(q, "murah") {
		return defaultBudgetCeiling
	}

	return 0
}
