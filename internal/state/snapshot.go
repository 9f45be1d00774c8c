package state

import "github.com/BruksfildServices01/petcare-marketplace/internal/models"

// Snapshot is one consistent view of the application state. Snapshots are
// never modified in place: mutations build new slices and return a new
// Snapshot, so a Snapshot handed to a reader stays valid.
type Snapshot struct {
	User *models.User

	Pets     []models.Pet
	Bookings []models.Booking

	Walkers    []models.Provider
	PetSitters []models.Provider
	Favorites  []models.Provider
}

// Dirty names the collections a mutation changed.
type Dirty uint8

const (
	DirtyPets Dirty = 1 << iota
	DirtyBookings
	DirtyUser
)

func (d Dirty) Has(flag Dirty) bool {
	return d&flag != 0
}

// Providers lists every bookable professional, walkers first.
func (s Snapshot) Providers() []models.Provider {
	out := make([]models.Provider, 0, len(s.Walkers)+len(s.PetSitters))
	out = append(out, s.Walkers...)
	out = append(out, s.PetSitters...)
	return out
}

// MaxID returns the largest pet, booking or user id in the snapshot.
func (s Snapshot) MaxID() int64 {
	var top int64
	if s.User != nil && s.User.ID > top {
		top = s.User.ID
	}
	for _, p := range s.Pets {
		if p.ID > top {
			top = p.ID
		}
	}
	for _, b := range s.Bookings {
		if b.ID > top {
			top = b.ID
		}
	}
	return top
}
