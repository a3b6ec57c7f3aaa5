package itinerary

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatesWithDurations(hours ...float64) []CandidateItem {
	out := make([]CandidateItem, len(hours))
	for i, h := range hours {
		out[i] = CandidateItem{
			ID:            fmt.Sprintf("p-%d", i),
			Name:          fmt.Sprintf("Place %d", i),
			City:          "Marrakech",
			DurationHours: h,
		}
	}
	return out
}

func scheduledIDs(days []DayPlan) map[string]bool {
	ids := make(map[string]bool)
	for i := range days {
		for _, s := range Slots {
			for _, it := range days[i].Items(s) {
				ids[it.SourceID] = true
			}
		}
	}
	return ids
}

func TestSchedule_AllFitOverTwoDays(t *testing.T) {
	cands := candidatesWithDurations(3.0, 1.5, 1.0, 2.0, 4.0)

	res, err := Schedule(cands, 2)
	require.NoError(t, err)
	require.Len(t, res.Days, 2)
	assert.Empty(t, res.Dropped)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, 5, res.Placed())

	day1 := res.Days[0]
	require.Len(t, day1.Morning, 1)
	assert.Equal(t, "p-4", day1.Morning[0].SourceID, "4.0h item is placed first")
	require.Len(t, day1.Afternoon, 1)
	assert.Equal(t, "p-0", day1.Afternoon[0].SourceID, "3.0h item is placed second")
	require.Len(t, day1.Evening, 1)
	assert.Equal(t, "p-3", day1.Evening[0].SourceID)

	// The cursor moved to day 2 for the 1.5h item, so the 1.0h item follows it
	// there even though day 1 afternoon still has an hour left.
	day2 := res.Days[1]
	require.Len(t, day2.Morning, 2)
	assert.Equal(t, "p-1", day2.Morning[0].SourceID)
	assert.Equal(t, "p-2", day2.Morning[1].SourceID)
	assert.Empty(t, day2.Afternoon)
	assert.Empty(t, day2.Evening)
}

func TestSchedule_OneDayDropsAndStops(t *testing.T) {
	cands := candidatesWithDurations(3.0, 1.5, 1.0, 2.0, 4.0)

	res, err := Schedule(cands, 1)
	require.NoError(t, err)
	require.Len(t, res.Days, 1)

	require.Len(t, res.Dropped, 1)
	assert.Equal(t, 1.5, res.Dropped[0].DurationHours)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 1.0, res.Skipped[0].DurationHours)
	assert.Equal(t, 3, res.Placed())
}

func TestSchedule_PreferredSlotFirst(t *testing.T) {
	cands := []CandidateItem{
		{ID: "night", Name: "Jemaa el-Fna", DurationHours: 2, PreferredSlot: SlotEvening},
		{ID: "any", Name: "Majorelle", DurationHours: 2},
	}

	res, err := Schedule(cands, 1)
	require.NoError(t, err)
	day := res.Days[0]
	require.Len(t, day.Evening, 1)
	assert.Equal(t, "night", day.Evening[0].SourceID)
	require.Len(t, day.Morning, 1)
	assert.Equal(t, "any", day.Morning[0].SourceID)
}

func TestSchedule_PreferredSlotFullFallsBackInOrder(t *testing.T) {
	cands := []CandidateItem{
		{ID: "a", DurationHours: 3, PreferredSlot: SlotEvening},
		{ID: "b", DurationHours: 2, PreferredSlot: SlotEvening},
	}

	res, err := Schedule(cands, 1)
	require.NoError(t, err)
	day := res.Days[0]
	require.Len(t, day.Evening, 1)
	assert.Equal(t, "a", day.Evening[0].SourceID)
	require.Len(t, day.Morning, 1)
	assert.Equal(t, "b", day.Morning[0].SourceID)
}

func TestSchedule_StableTies(t *testing.T) {
	cands := candidatesWithDurations(1, 1, 1, 1)

	res, err := Schedule(cands, 1)
	require.NoError(t, err)
	morning := res.Days[0].Morning
	require.Len(t, morning, 4)
	for i, it := range morning {
		assert.Equal(t, fmt.Sprintf("p-%d", i), it.SourceID)
	}
}

func TestSchedule_MissingDurationUsesDefault(t *testing.T) {
	res, err := Schedule([]CandidateItem{{ID: "x", Name: "Souk"}}, 1)
	require.NoError(t, err)
	require.Len(t, res.Days[0].Morning, 1)
	assert.Equal(t, DefaultDurationHours, res.Days[0].Morning[0].DurationHours)
}

func TestSchedule_NonFiniteDurationUsesDefault(t *testing.T) {
	res, err := Schedule(candidatesWithDurations(math.Inf(1), math.NaN(), 1), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Placed())
	assert.Empty(t, res.Dropped)
	assert.Empty(t, res.Skipped)
	require.Len(t, res.Days[0].Morning, 3)
	assert.Equal(t, DefaultDurationHours, res.Days[0].Morning[0].DurationHours)
	assert.Equal(t, DefaultDurationHours, res.Days[0].Morning[1].DurationHours)
	assert.Equal(t, 1.0, res.Days[0].Morning[2].DurationHours)
}

func TestSchedule_OversizedItemDropsEverything(t *testing.T) {
	res, err := Schedule(candidatesWithDurations(5, 1), 3)
	require.NoError(t, err)
	assert.Len(t, res.Days, 3)
	assert.Equal(t, 0, res.Placed())
	assert.Len(t, res.Dropped, 1)
	assert.Len(t, res.Skipped, 1)
}

func TestSchedule_Errors(t *testing.T) {
	_, err := Schedule(nil, 2)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = Schedule(candidatesWithDurations(1), 0)
	assert.ErrorIs(t, err, ErrInvalidTripParameters)

	_, err = Schedule(candidatesWithDurations(1), -3)
	assert.ErrorIs(t, err, ErrInvalidTripParameters)
}

func TestSchedule_DoesNotReorderInput(t *testing.T) {
	cands := candidatesWithDurations(1, 3, 2)
	_, err := Schedule(cands, 1)
	require.NoError(t, err)
	assert.Equal(t, "p-0", cands[0].ID)
	assert.Equal(t, "p-1", cands[1].ID)
	assert.Equal(t, "p-2", cands[2].ID)
}

func randomCandidates(rng *rand.Rand) []CandidateItem {
	n := rng.Intn(20) + 1
	slots := []Slot{SlotUnset, SlotMorning, SlotAfternoon, SlotEvening, Slot("night")}
	out := make([]CandidateItem, n)
	for i := range out {
		out[i] = CandidateItem{
			ID:            fmt.Sprintf("c-%d", i),
			Name:          fmt.Sprintf("Candidate %d", i),
			DurationHours: float64(rng.Intn(9)+1) * 0.5,
			PreferredSlot: slots[rng.Intn(len(slots))],
		}
	}
	return out
}

// TestSchedule_Invariants property-tests day numbering, slot capacity,
// conservation of candidates and determinism.
func TestSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		days := rng.Intn(5) + 1
		cands := randomCandidates(rng)

		res, err := Schedule(cands, days)
		require.NoError(t, err)

		require.Len(t, res.Days, days, "trial %d", trial)
		for i, d := range res.Days {
			assert.Equal(t, i+1, d.DayNumber, "trial %d: day numbers are contiguous", trial)
			for _, s := range Slots {
				total := 0.0
				for _, it := range d.Items(s) {
					total += it.DurationHours
				}
				assert.LessOrEqual(t, total, s.Capacity()+capacityEpsilon,
					"trial %d: day %d %s over capacity", trial, d.DayNumber, s)
			}
		}

		assert.Equal(t, len(cands), res.Placed()+len(res.Dropped)+len(res.Skipped),
			"trial %d: every candidate is placed, dropped or skipped", trial)
		assert.LessOrEqual(t, len(res.Dropped), 1, "trial %d", trial)
		ids := scheduledIDs(res.Days)
		for _, c := range append(res.Dropped, res.Skipped...) {
			assert.False(t, ids[c.ID], "trial %d: %s both scheduled and unplaced", trial, c.ID)
		}

		again, err := Schedule(cands, days)
		require.NoError(t, err)
		assert.Equal(t, res, again, "trial %d: scheduling is deterministic", trial)
		assert.Equal(t, AllocateTimes(res.Days), AllocateTimes(again.Days), "trial %d", trial)
	}
}
