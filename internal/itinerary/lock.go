package itinerary

import "strings"

// LockSchedule keeps the scheduled days, slots, names and times, and copies
// the narrative fields of generated activities that match by day, slot and name.
func LockSchedule(scheduled []DayPlan, generated TripPlan) TripPlan {
	type key struct {
		day  int
		slot Slot
		name string
	}
	narrative := make(map[key]ScheduledItem)
	for _, d := range generated.Days {
		for _, s := range Slots {
			for _, it := range d.Items(s) {
				narrative[key{d.DayNumber, s, strings.ToLower(strings.TrimSpace(it.Name))}] = it
			}
		}
	}

	locked := TripPlan{
		City:         generated.City,
		DurationDays: generated.DurationDays,
		Notes:        generated.Notes,
		Days:         make([]DayPlan, len(scheduled)),
	}
	for i, d := range scheduled {
		locked.Days[i] = DayPlan{DayNumber: d.DayNumber}
		for _, s := range Slots {
			src := d.Items(s)
			items := make([]ScheduledItem, len(src))
			for j, it := range src {
				if g, ok := narrative[key{d.DayNumber, s, strings.ToLower(strings.TrimSpace(it.Name))}]; ok {
					it.Description = firstNonEmpty(g.Description, it.Description)
					it.Tips = firstNonEmpty(g.Tips, it.Tips)
					it.BestTime = firstNonEmpty(g.BestTime, it.BestTime)
					it.Budget = firstNonEmpty(g.Budget, it.Budget)
					it.Category = firstNonEmpty(g.Category, it.Category)
				}
				items[j] = it
			}
			locked.Days[i].setItems(s, items)
		}
	}
	return locked
}

// DaysInOrder reports whether plan has exactly days 1..n in order.
func DaysInOrder(plan TripPlan, n int) bool {
	if len(plan.Days) != n {
		return false
	}
	for i, d := range plan.Days {
		if d.DayNumber != i+1 {
			return false
		}
	}
	return true
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
