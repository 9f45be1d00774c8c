// Package derive holds the read-side computations behind every list view.
// All functions are pure: they never modify their inputs and may be called
// any number of times.
package derive

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

// OwnedPets returns the pets of user. With no user it returns the input
// unfiltered, which pre-login browsing relies on.
func OwnedPets(pets []models.Pet, user *models.User) []models.Pet {
	if user == nil {
		return pets
	}

	out := make([]models.Pet, 0, len(pets))
	for _, p := range pets {
		if p.UserID == user.ID {
			out = append(out, p)
		}
	}
	return out
}

// OwnedBookings follows the same rule as OwnedPets.
func OwnedBookings(bookings []models.Booking, user *models.User) []models.Booking {
	if user == nil {
		return bookings
	}

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.UserID == user.ID {
			out = append(out, b)
		}
	}
	return out
}

func LookupProvider(providers []models.Provider, id int64) (models.Provider, bool) {
	for _, p := range providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Provider{}, false
}

func LookupPet(pets []models.Pet, id int64) (models.Pet, bool) {
	for _, p := range pets {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pet{}, false
}

func LookupBooking(bookings []models.Booking, id int64) (models.Booking, bool) {
	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// DistinctLocations returns each location once, sorted.
func DistinctLocations(providers []models.Provider) []string {
	seen := make(map[string]struct{}, len(providers))
	out := make([]string, 0, len(providers))

	for _, p := range providers {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		out = append(out, p.Location)
	}

	sort.Strings(out)
	return out
}

// FilterProviders keeps providers whose name or any service contains query
// (case-insensitive) and, when location is set, whose location matches it
// exactly.
func FilterProviders(providers []models.Provider, query, location string) []models.Provider {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		if location != "" && p.Location != location {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p models.Provider, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, s := range p.Services {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
