package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSchedule_KeepsScheduleTakesNarrative(t *testing.T) {
	res, err := Schedule([]CandidateItem{
		{ID: "a", Name: "Medersa Bou Inania", City: "Fes", DurationHours: 2, Description: "csv text"},
		{ID: "b", Name: "Chouara Tannery", City: "Fes", DurationHours: 1},
	}, 1)
	require.NoError(t, err)
	scheduled := AllocateTimes(res.Days)

	generated := TripPlan{
		City:         "Fes",
		DurationDays: 1,
		Notes:        "Friday closures",
		Days: []DayPlan{{
			DayNumber: 1,
			Morning: []ScheduledItem{
				{Name: "medersa bou inania ", StartTime: "07:00", Description: "Marinid madrasa", Tips: "Dress modestly"},
				{Name: "Invented Rooftop", StartTime: "08:00"},
			},
			Evening: []ScheduledItem{{Name: "Chouara Tannery", Tips: "wrong slot"}},
		}},
	}

	locked := LockSchedule(scheduled, generated)
	assert.Equal(t, "Friday closures", locked.Notes)
	require.Len(t, locked.Days, 1)
	m := locked.Days[0].Morning
	require.Len(t, m, 2)

	assert.Equal(t, "Medersa Bou Inania", m[0].Name)
	assert.Equal(t, "09:00", m[0].StartTime)
	assert.Equal(t, "Marinid madrasa", m[0].Description)
	assert.Equal(t, "Dress modestly", m[0].Tips)

	assert.Equal(t, "Chouara Tannery", m[1].Name)
	assert.Empty(t, m[1].Tips, "narrative from another slot is not applied")
	assert.Empty(t, locked.Days[0].Evening)
}
