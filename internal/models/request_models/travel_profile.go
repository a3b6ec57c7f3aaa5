package request_models

import (
	"encoding/json"
	"fmt"
	"strings"
)

var allowedBudgets = map[string]bool{"low": true, "medium": true, "high": true}

type TravelProfile struct {
	City         string    `json:"city"`
	DurationDays int       `json:"duration_days"`
	Budget       string    `json:"budget"`
	Interests    Interests `json:"interests"`
	Constraints  string    `json:"constraints"`
	Language     string    `json:"language"`
}

// Normalize trims the text fields and applies the default language.
func (p *TravelProfile) Normalize() {
	p.City = strings.TrimSpace(p.City)
	p.Budget = strings.ToLower(strings.TrimSpace(p.Budget))
	p.Constraints = strings.TrimSpace(p.Constraints)
	p.Language = strings.TrimSpace(p.Language)
	if p.Language == "" {
		p.Language = "fr"
	}
}

// ValidateBudget reports an unknown budget tier. Trip length is checked by the planner.
func (p TravelProfile) ValidateBudget() error {
	if !allowedBudgets[p.Budget] {
		return fmt.Errorf("budget must be one of: high, low, medium")
	}
	return nil
}

// Interests accepts either a JSON list or a comma-separated string.
type Interests []string

func (i *Interests) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*i = cleanInterests(list)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("interests must be a list or a comma-separated string")
	}
	*i = ParseInterests(s)
	return nil
}

// ParseInterests splits a comma-separated list.
func ParseInterests(s string) Interests {
	return cleanInterests(strings.Split(s, ","))
}

func cleanInterests(list []string) Interests {
	out := Interests{}
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
