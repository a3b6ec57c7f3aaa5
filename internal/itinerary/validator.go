package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePlan maps an extracted block onto a TripPlan.
//
// Missing names become empty strings and malformed slot or activity entries
// are skipped. Map links are always recomputed from the activity name and the
// first known city: the activity's own, the day's, the plan's, then fallbackCity.
// The block must be a JSON object and every present day_number must be an integer.
func ParsePlan(block string, fallbackCity string, durationDays int) (TripPlan, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(block)))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return TripPlan{}, newPlanError(ErrSchema, block, err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return TripPlan{}, newPlanError(ErrSchema, block, fmt.Errorf("top level is %T, want object", root))
	}

	plan := TripPlan{
		City:         FirstLocale(stringField(obj, "city"), fallbackCity),
		DurationDays: durationDays,
		Days:         []DayPlan{},
		Notes:        stringField(obj, "notes"),
	}

	rawDays, _ := obj["days"].([]any)
	for _, rd := range rawDays {
		day, ok := rd.(map[string]any)
		if !ok {
			continue
		}
		num, err := coerceInt(day["day_number"])
		if err != nil {
			return TripPlan{}, newPlanError(ErrSchema, block, fmt.Errorf("day_number: %w", err))
		}

		dayCity := FirstLocale(stringField(day, "city"), plan.City)
		dp := DayPlan{DayNumber: num}
		for _, s := range Slots {
			dp.setItems(s, parseActivities(day[string(s)], dayCity))
		}
		plan.Days = append(plan.Days, dp)
	}

	return plan, nil
}

func parseActivities(raw any, dayCity string) []ScheduledItem {
	list, _ := raw.([]any)
	items := make([]ScheduledItem, 0, len(list))
	for _, ra := range list {
		a, ok := ra.(map[string]any)
		if !ok {
			continue
		}
		it := ScheduledItem{
			Name:        stringField(a, "name"),
			StartTime:   stringField(a, "start_time"),
			EndTime:     stringField(a, "end_time"),
			Category:    stringField(a, "category"),
			Description: stringField(a, "description"),
			Budget:      stringField(a, "budget"),
			BestTime:    stringField(a, "best_time"),
			Tips:        stringField(a, "tips"),
			SourceID:    stringField(a, "source_id"),
			SourceCity:  stringField(a, "source_city"),
		}
		city := FirstLocale(it.SourceCity, stringField(a, "city"), dayCity)
		it.MapsURL = MapsURL(it.Name, city)
		items = append(items, it)
	}
	return items
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		if f < math.MinInt || f >= math.MaxInt {
			return 0, fmt.Errorf("%s is out of range", n)
		}
		return int(math.Trunc(f)), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	}
	return 0, fmt.Errorf("unexpected %T", v)
}
