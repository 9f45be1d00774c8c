package state

// Storage keys shared with the web client. Renaming any of them orphans
// data users already have.
const (
	KeyPets       = "petcare_pets"
	KeyBookings   = "petcare_bookings"
	KeyUser       = "petcare_user"
	KeyWalkers    = "petcare_walkers_data"
	KeyPetSitters = "petcare_petsitters_data"
	KeyFavorites  = "petcare_favorite_professionals"
)
