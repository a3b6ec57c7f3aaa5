package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"itinera/internal/itinerary"
	"itinera/internal/models/request_models"
	mem "itinera/pkg/memcache"
)

// BuildRetrievalQuery renders the profile as the text that is embedded for place search.
func BuildRetrievalQuery(profile request_models.TravelProfile) string {
	interests := "general"
	if len(profile.Interests) > 0 {
		interests = strings.Join(profile.Interests, ", ")
	}
	constraints := profile.Constraints
	if constraints == "" {
		constraints = "none"
	}
	cityClause := "Multi-city."
	if profile.City != "" {
		cityClause = fmt.Sprintf("City: %s.", profile.City)
	}

	return fmt.Sprintf("%s Trip of %d days. Budget: %s. Interests: %s. Constraints: %s.",
		cityClause, profile.DurationDays, profile.Budget, interests, constraints)
}

// FormatPlacesForPrompt renders one line block per candidate and cuts the
// result at maxChars.
func FormatPlacesForPrompt(candidates []itinerary.CandidateItem, maxChars int) string {
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, fmt.Sprintf(
			"- %s | city: %s | category: %s | budget: %s | best_time: %s\n  Description: %s\n",
			c.Name, c.City, c.Category, c.BudgetTier, c.BestTime, c.Description))
	}
	text := strings.Join(parts, "\n")
	return truncateRunes(text, maxChars)
}

// truncateRunes keeps at most maxChars characters of s.
func truncateRunes(s string, maxChars int) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	n := 0
	for i := range s {
		if n == maxChars {
			return s[:i]
		}
		n++
	}
	return s
}

// BuildItineraryPrompt asks the model to write the narrative of an already
// scheduled plan and to answer with a single JSON object.
func BuildItineraryPrompt(profile request_models.TravelProfile, candidates []itinerary.CandidateItem, days []itinerary.DayPlan, maxChars int) (string, error) {
	snapshot, err := json.MarshalIndent(itinerary.TripPlan{
		City:         profile.City,
		DurationDays: profile.DurationDays,
		Days:         days,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode schedule snapshot: %w", err)
	}

	interests := "general"
	if len(profile.Interests) > 0 {
		interests = strings.Join(profile.Interests, ", ")
	}
	constraints := profile.Constraints
	if constraints == "" {
		constraints = "none"
	}
	city := profile.City
	if city == "" {
		city = "multi-city (no city given)"
	}

	var b strings.Builder
	b.WriteString("You are an expert in local tourism and travel planning in Morocco.\n\n")
	b.WriteString("Traveller profile:\n")
	fmt.Fprintf(&b, "- Main city: %s\n", city)
	fmt.Fprintf(&b, "- Duration (days): %d\n", profile.DurationDays)
	fmt.Fprintf(&b, "- Budget: %s\n", profile.Budget)
	fmt.Fprintf(&b, "- Interests: %s\n", interests)
	fmt.Fprintf(&b, "- Constraints: %s\n", constraints)
	fmt.Fprintf(&b, "- Language: %s\n\n", profile.Language)

	b.WriteString("Available places (use only these):\n")
	b.WriteString(FormatPlacesForPrompt(candidates, maxChars))
	b.WriteString("\n\nThe schedule below is final:\n")
	b.Write(snapshot)

	b.WriteString("\n\nInstructions:\n")
	b.WriteString("1) Keep every day, slot, activity name, start_time and end_time exactly as given. Do not add, remove or move activities.\n")
	b.WriteString("2) Write description, tips, best_time, budget and category for each activity.\n")
	b.WriteString("3) Answer STRICTLY with one valid JSON object of this shape:\n")
	b.WriteString(`{"city": "...", "duration_days": N, "days": [{"day_number": 1, "morning": [{"name": "...", "start_time": "HH:MM", "end_time": "HH:MM", "category": "...", "description": "...", "budget": "...", "best_time": "...", "tips": "...", "source_id": "...", "source_city": "..."}], "afternoon": [], "evening": []}], "notes": "..."}`)
	b.WriteString("\n\nIMPORTANT:\n- No text outside the JSON.\n")
	b.WriteString("- Put any remark about missing information in the \"notes\" field.\n")
	fmt.Fprintf(&b, "Answer in language: %s.\n", profile.Language)
	return b.String(), nil
}

// BuildChatPrompt grounds a question on retrieved places and the session history.
func BuildChatPrompt(question string, places []itinerary.CandidateItem, history []mem.Turn, maxChars int) string {
	var b strings.Builder
	b.WriteString("You are an expert in tourism across Morocco (Marrakech, Fes, Tangier, Agadir, Rabat, Chefchaouen, Essaouira and more).\n")
	b.WriteString("Answer only from the context below.\n\n")
	b.WriteString("=== CONTEXT ===\n")
	b.WriteString(FormatPlacesForPrompt(places, maxChars))
	if len(history) > 0 {
		b.WriteString("\n=== HISTORY ===\n")
		for _, t := range history {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", t.User, t.Assistant)
		}
	}
	b.WriteString("\n=== QUESTION ===\n")
	b.WriteString(question)
	b.WriteString("\n\nAnswer in a clear, human and useful style. If the information is not in the context, say so explicitly.\n")
	return b.String()
}
