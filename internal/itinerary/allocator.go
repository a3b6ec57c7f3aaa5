package itinerary

import (
	"math"
	"time"
)

const clockLayout = "15:04"

// AllocateTimes assigns back-to-back start and end times inside every slot,
// beginning at the slot's start hour. Durations are rounded to whole minutes.
// Items may run past the nominal end of their slot.
func AllocateTimes(days []DayPlan) []DayPlan {
	out := make([]DayPlan, len(days))
	for i, d := range days {
		out[i] = DayPlan{DayNumber: d.DayNumber}
		for _, s := range Slots {
			out[i].setItems(s, allocateSlot(s, d.Items(s)))
		}
	}
	return out
}

func allocateSlot(s Slot, items []ScheduledItem) []ScheduledItem {
	timed := make([]ScheduledItem, len(items))
	clock := time.Date(0, time.January, 1, s.StartHour(), 0, 0, 0, time.UTC)
	for i, it := range items {
		it.StartTime = clock.Format(clockLayout)
		clock = clock.Add(DurationMinutes(it.DurationHours))
		it.EndTime = clock.Format(clockLayout)
		timed[i] = it
	}
	return timed
}

// DurationMinutes converts hours to a duration rounded to the nearest minute.
func DurationMinutes(hours float64) time.Duration {
	return time.Duration(math.Round(hours*60)) * time.Minute
}
