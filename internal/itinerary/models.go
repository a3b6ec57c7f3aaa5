package itinerary

import (
	"math"
	"strconv"
	"strings"
)

// Slot is a part of the day an activity can be scheduled in.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
	SlotUnset     Slot = ""
)

// DefaultDurationHours is used when a candidate carries no usable duration.
const DefaultDurationHours = 1.5

// Slots lists the slots of a day in their fixed order.
var Slots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

var slotCapacity = map[Slot]float64{
	SlotMorning:   4.0,
	SlotAfternoon: 4.0,
	SlotEvening:   3.0,
}

var slotStartHour = map[Slot]int{
	SlotMorning:   9,
	SlotAfternoon: 14,
	SlotEvening:   18,
}

var slotAliases = map[string]Slot{
	"morning":    SlotMorning,
	"matin":      SlotMorning,
	"afternoon":  SlotAfternoon,
	"après-midi": SlotAfternoon,
	"apres-midi": SlotAfternoon,
	"evening":    SlotEvening,
	"soir":       SlotEvening,
	"soirée":     SlotEvening,
}

// Capacity returns the total number of hours the slot can hold.
func (s Slot) Capacity() float64 {
	return slotCapacity[s]
}

// StartHour returns the wall-clock hour the slot begins at.
func (s Slot) StartHour() int {
	return slotStartHour[s]
}

// Valid reports whether s is one of morning, afternoon or evening.
func (s Slot) Valid() bool {
	_, ok := slotCapacity[s]
	return ok
}

// ParseSlot maps a free-form "best time" label to a Slot. Unknown labels yield SlotUnset.
func ParseSlot(raw string) Slot {
	return slotAliases[strings.ToLower(strings.TrimSpace(raw))]
}

// ParseDurationHours reads a duration in hours. Comma decimals are accepted;
// empty, non-numeric and non-positive values fall back to DefaultDurationHours.
func ParseDurationHours(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return DefaultDurationHours
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !positiveFinite(v) {
		return DefaultDurationHours
	}
	return v
}

// CandidateItem is a point of interest proposed by retrieval.
type CandidateItem struct {
	ID            string
	Name          string
	City          string
	Category      string
	BudgetTier    string
	BestTime      string
	PreferredSlot Slot
	DurationHours float64
	Description   string
	Tips          string
}

// hours returns the candidate duration, never zero or negative.
func (c CandidateItem) hours() float64 {
	if !positiveFinite(c.DurationHours) {
		return DefaultDurationHours
	}
	return c.DurationHours
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// ScheduledItem is an activity placed in a day slot. DurationHours is only
// known for items coming out of the scheduler.
type ScheduledItem struct {
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time,omitempty"`
	EndTime       string  `json:"end_time,omitempty"`
	Category      string  `json:"category,omitempty"`
	Description   string  `json:"description,omitempty"`
	Budget        string  `json:"budget,omitempty"`
	BestTime      string  `json:"best_time,omitempty"`
	Tips          string  `json:"tips,omitempty"`
	SourceID      string  `json:"source_id,omitempty"`
	SourceCity    string  `json:"source_city,omitempty"`
	MapsURL       string  `json:"maps_url,omitempty"`
	DurationHours float64 `json:"-"`
}

func newScheduledItem(c CandidateItem) ScheduledItem {
	return ScheduledItem{
		Name:          c.Name,
		Category:      c.Category,
		Description:   c.Description,
		Budget:        c.BudgetTier,
		BestTime:      c.BestTime,
		Tips:          c.Tips,
		SourceID:      c.ID,
		SourceCity:    c.City,
		MapsURL:       MapsURL(c.Name, c.City),
		DurationHours: c.hours(),
	}
}

// DayPlan holds the activities of one day, one ordered list per slot.
type DayPlan struct {
	DayNumber int             `json:"day_number"`
	Morning   []ScheduledItem `json:"morning"`
	Afternoon []ScheduledItem `json:"afternoon"`
	Evening   []ScheduledItem `json:"evening"`
}

// Items returns the list of the given slot.
func (d *DayPlan) Items(s Slot) []ScheduledItem {
	switch s {
	case SlotMorning:
		return d.Morning
	case SlotAfternoon:
		return d.Afternoon
	case SlotEvening:
		return d.Evening
	}
	return nil
}

func (d *DayPlan) setItems(s Slot, items []ScheduledItem) {
	switch s {
	case SlotMorning:
		d.Morning = items
	case SlotAfternoon:
		d.Afternoon = items
	case SlotEvening:
		d.Evening = items
	}
}

// TripPlan is the final day-by-day itinerary.
type TripPlan struct {
	City         string    `json:"city"`
	DurationDays int       `json:"duration_days"`
	Days         []DayPlan `json:"days"`
	Notes        string    `json:"notes,omitempty"`
}
