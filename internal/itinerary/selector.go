package itinerary

import "strings"

// SelectCandidates keeps the candidates whose city contains locale, ignoring case.
// Candidates without a city are always kept. An empty locale keeps everything.
func SelectCandidates(locale string, candidates []CandidateItem) []CandidateItem {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return candidates
	}

	selected := make([]CandidateItem, 0, len(candidates))
	for _, c := range candidates {
		city := strings.TrimSpace(c.City)
		if city == "" || strings.Contains(strings.ToLower(city), locale) {
			selected = append(selected, c)
		}
	}
	return selected
}

// FirstLocale returns the first non-empty value, used to resolve a place's
// city from its city, location and source city metadata.
func FirstLocale(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
