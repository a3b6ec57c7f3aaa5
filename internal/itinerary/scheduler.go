package itinerary

import "sort"

const capacityEpsilon = 1e-9

// ScheduleResult is the outcome of a scheduling pass.
//
// Dropped holds the candidate that could not be placed on any remaining day.
// Skipped holds the candidates that were never tried because the day cursor
// was exhausted when Dropped was rejected.
type ScheduleResult struct {
	Days    []DayPlan
	Dropped []CandidateItem
	Skipped []CandidateItem
}

// Placed returns the number of scheduled items across all days.
func (r ScheduleResult) Placed() int {
	n := 0
	for i := range r.Days {
		for _, s := range Slots {
			n += len(r.Days[i].Items(s))
		}
	}
	return n
}

type dayBuckets struct {
	plan      DayPlan
	remaining map[Slot]float64
}

// Schedule packs candidates into days × slots, longest first.
//
// Each candidate tries its preferred slot first, then the remaining slots in
// morning, afternoon, evening order. When no slot of the current day fits, the
// day cursor moves forward and never comes back. Once the cursor passes the
// last day the candidate is dropped and the rest of the list is skipped.
func Schedule(candidates []CandidateItem, days int) (ScheduleResult, error) {
	if days < 1 {
		return ScheduleResult{}, newPlanError(ErrInvalidTripParameters, "", nil)
	}
	if len(candidates) == 0 {
		return ScheduleResult{}, newPlanError(ErrNoCandidates, "", nil)
	}

	buckets := make([]dayBuckets, days)
	for i := range buckets {
		buckets[i] = dayBuckets{
			plan: DayPlan{
				DayNumber: i + 1,
				Morning:   []ScheduledItem{},
				Afternoon: []ScheduledItem{},
				Evening:   []ScheduledItem{},
			},
			remaining: map[Slot]float64{
				SlotMorning:   SlotMorning.Capacity(),
				SlotAfternoon: SlotAfternoon.Capacity(),
				SlotEvening:   SlotEvening.Capacity(),
			},
		}
	}

	ordered := make([]CandidateItem, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].hours() > ordered[j].hours()
	})

	var result ScheduleResult
	cursor := 0
	for idx, c := range ordered {
		placed := false
		for cursor < days {
			if place(&buckets[cursor], c) {
				placed = true
				break
			}
			cursor++
		}
		if !placed {
			result.Dropped = append(result.Dropped, c)
			result.Skipped = append(result.Skipped, ordered[idx+1:]...)
			break
		}
	}

	result.Days = make([]DayPlan, days)
	for i := range buckets {
		result.Days[i] = buckets[i].plan
	}
	return result, nil
}

func place(b *dayBuckets, c CandidateItem) bool {
	h := c.hours()
	for _, s := range slotOrder(c.PreferredSlot) {
		if h <= b.remaining[s]+capacityEpsilon {
			b.remaining[s] -= h
			b.plan.setItems(s, append(b.plan.Items(s), newScheduledItem(c)))
			return true
		}
	}
	return false
}

func slotOrder(preferred Slot) []Slot {
	if !preferred.Valid() {
		return Slots
	}
	order := make([]Slot, 0, len(Slots))
	order = append(order, preferred)
	for _, s := range Slots {
		if s != preferred {
			order = append(order, s)
		}
	}
	return order
}
