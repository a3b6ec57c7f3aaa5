package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan_FullShape(t *testing.T) {
	block := `{
	  "city": "Marrakech",
	  "notes": "Bring water",
	  "days": [
	    {
	      "day_number": 1,
	      "morning": [{
	        "name": "Jardin Majorelle",
	        "start_time": "09:00",
	        "end_time": "10:30",
	        "category": "nature",
	        "description": "Blue garden",
	        "budget": "medium",
	        "best_time": "morning",
	        "tips": "Go early",
	        "source_id": "mk-1",
	        "source_city": "Marrakech",
	        "maps_url": "https://evil.example/phish"
	      }],
	      "afternoon": [],
	      "evening": [{"name": "Jemaa el-Fna"}]
	    }
	  ]
	}`

	plan, err := ParsePlan(block, "", 3)
	require.NoError(t, err)
	assert.Equal(t, "Marrakech", plan.City)
	assert.Equal(t, 3, plan.DurationDays)
	assert.Equal(t, "Bring water", plan.Notes)
	require.Len(t, plan.Days, 1)

	day := plan.Days[0]
	assert.Equal(t, 1, day.DayNumber)
	require.Len(t, day.Morning, 1)
	m := day.Morning[0]
	assert.Equal(t, "Jardin Majorelle", m.Name)
	assert.Equal(t, "09:00", m.StartTime)
	assert.Equal(t, "10:30", m.EndTime)
	assert.Equal(t, "Go early", m.Tips)
	assert.Equal(t, "mk-1", m.SourceID)
	assert.Equal(t, MapsURL("Jardin Majorelle", "Marrakech"), m.MapsURL, "generated links are replaced")
	assert.Empty(t, day.Afternoon)
	require.Len(t, day.Evening, 1)
	assert.Equal(t, MapsURL("Jemaa el-Fna", "Marrakech"), day.Evening[0].MapsURL)
}

func TestParsePlan_Defaults(t *testing.T) {
	block := `{"days":[{"day_number":"2","morning":[{"category":"culture"}, "junk", 4],"afternoon":"none"}]}`

	plan, err := ParsePlan(block, "Fes", 2)
	require.NoError(t, err)
	assert.Equal(t, "Fes", plan.City, "falls back to the requested city")
	require.Len(t, plan.Days, 1)
	d := plan.Days[0]
	assert.Equal(t, 2, d.DayNumber)
	require.Len(t, d.Morning, 1)
	assert.Equal(t, "", d.Morning[0].Name)
	assert.Equal(t, "culture", d.Morning[0].Category)
	assert.Empty(t, d.Morning[0].MapsURL)
	assert.Empty(t, d.Afternoon)
	assert.Empty(t, d.Evening)
}

func TestParsePlan_CityResolution(t *testing.T) {
	block := `{"city":"Tanger","days":[{"day_number":1,"city":"Tetouan","morning":[
	  {"name":"A","source_city":"Chefchaouen"},
	  {"name":"B","city":"Asilah"},
	  {"name":"C"}
	]}]}`

	plan, err := ParsePlan(block, "Rabat", 1)
	require.NoError(t, err)
	m := plan.Days[0].Morning
	require.Len(t, m, 3)
	assert.Equal(t, MapsURL("A", "Chefchaouen"), m[0].MapsURL)
	assert.Equal(t, MapsURL("B", "Asilah"), m[1].MapsURL)
	assert.Equal(t, MapsURL("C", "Tetouan"), m[2].MapsURL)
}

func TestParsePlan_NumericDayNumbers(t *testing.T) {
	plan, err := ParsePlan(`{"days":[{"day_number":3.0},{}]}`, "", 3)
	require.NoError(t, err)
	require.Len(t, plan.Days, 2)
	assert.Equal(t, 3, plan.Days[0].DayNumber)
	assert.Equal(t, 0, plan.Days[1].DayNumber)
}

func TestParsePlan_EmptyDays(t *testing.T) {
	plan, err := ParsePlan(`{"city":"Fes","days":[]}`, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "Fes", plan.City)
	assert.Empty(t, plan.Days)
}

func TestParsePlan_SchemaErrors(t *testing.T) {
	cases := map[string]string{
		"not json":          `{city: Fes}`,
		"array top level":   `[{"day_number":1}]`,
		"text day number":   `{"days":[{"day_number":"one"}]}`,
		"object day number": `{"days":[{"day_number":{"n":1}}]}`,
		"huge day number":   `{"days":[{"day_number":1e300}]}`,
		"tiny day number":   `{"days":[{"day_number":-1e300}]}`,
	}
	for name, block := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePlan(block, "", 1)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestMapsURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Jardin+Majorelle%2C+Marrakech",
		MapsURL("Jardin Majorelle", "Marrakech"))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Kasbah",
		MapsURL(" Kasbah ", " "))
	assert.Empty(t, MapsURL("  ", "Fes"))
}
