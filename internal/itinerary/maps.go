package itinerary

import (
	"net/url"
	"strings"
)

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// MapsURL builds a map search link for a place name, qualified by city when known.
// An empty name yields an empty link.
func MapsURL(name, city string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	query := name
	if city = strings.TrimSpace(city); city != "" {
		query += ", " + city
	}
	return mapsSearchBase + url.QueryEscape(query)
}
