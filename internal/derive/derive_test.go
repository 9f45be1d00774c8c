package derive

import (
	"reflect"
	"testing"

	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

func samplePets() []models.Pet {
	return []models.Pet{
		{ID: 1, Name: "Rex", UserID: 10},
		{ID: 2, Name: "Luna", UserID: 20},
		{ID: 3, Name: "Toby", UserID: 10},
	}
}

func sampleProviders() []models.Provider {
	return []models.Provider{
		{ID: 101, Name: "María González", Location: "Centro", Services: []string{"Paseos", "Entrenamiento Básico"}, Avatar: "m.png"},
		{ID: 102, Name: "Carlos Ruiz", Location: "Norte", Services: []string{"Paseos Grupales"}},
		{ID: 201, Name: "Ana López", Location: "Centro", Services: []string{"Cuidado en Casa"}},
	}
}

func TestOwnedPetsWithoutUserReturnsAll(t *testing.T) {
	pets := samplePets()

	got := OwnedPets(pets, nil)

	if !reflect.DeepEqual(got, pets) {
		t.Errorf("expected input unchanged, got %+v", got)
	}
}

func TestOwnedPetsFiltersAndKeepsOrder(t *testing.T) {
	got := OwnedPets(samplePets(), &models.User{ID: 10})

	if len(got) != 2 || got[0].Name != "Rex" || got[1].Name != "Toby" {
		t.Errorf("unexpected pets: %+v", got)
	}

	if n := len(OwnedPets(samplePets(), &models.User{ID: 99})); n != 0 {
		t.Errorf("expected no pets for stranger, got %d", n)
	}
}

func TestOwnedBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 20},
	}

	if got := OwnedBookings(bookings, nil); len(got) != 2 {
		t.Errorf("expected all bookings for guest, got %d", len(got))
	}

	got := OwnedBookings(bookings, &models.User{ID: 20})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("unexpected bookings: %+v", got)
	}
}

func TestLookups(t *testing.T) {
	if p, ok := LookupProvider(sampleProviders(), 102); !ok || p.Name != "Carlos Ruiz" {
		t.Errorf("unexpected provider lookup: %+v %v", p, ok)
	}
	if _, ok := LookupProvider(sampleProviders(), 999); ok {
		t.Error("expected provider miss")
	}
	if p, ok := LookupPet(samplePets(), 3); !ok || p.Name != "Toby" {
		t.Errorf("unexpected pet lookup: %+v %v", p, ok)
	}
	if _, ok := LookupPet(nil, 1); ok {
		t.Error("expected pet miss on empty list")
	}
	if _, ok := LookupBooking([]models.Booking{{ID: 5}}, 5); !ok {
		t.Error("expected booking hit")
	}
}

func TestDistinctLocations(t *testing.T) {
	got := DistinctLocations(sampleProviders())

	want := []string{"Centro", "Norte"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestFilterProviders(t *testing.T) {
	providers := sampleProviders()

	cases := []struct {
		query    string
		location string
		want     []int64
	}{
		{"", "", []int64{101, 102, 201}},
		{"paseos", "", []int64{101, 102}},
		{"MARÍA", "", []int64{101}},
		{"", "Centro", []int64{101, 201}},
		{"paseos", "Centro", []int64{101}},
		{"gatos", "", nil},
	}

	for _, tc := range cases {
		got := FilterProviders(providers, tc.query, tc.location)

		var ids []int64
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Errorf("query=%q location=%q: got %v want %v", tc.query, tc.location, ids, tc.want)
		}
	}
}

func TestBookingViewsFallbackLabels(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, PetID: 1, WalkerID: 101, Status: "pending", TotalPrice: 30},
		{ID: 2, PetID: 42, WalkerID: 999, Status: "archived"},
	}

	views := BookingViews(bookings, samplePets(), sampleProviders())

	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].PetName != "Rex" || views[0].ProviderName != "María González" || views[0].ProviderAvatar != "m.png" {
		t.Errorf("unexpected view: %+v", views[0])
	}
	if views[0].StatusLabel != "Pendiente" {
		t.Errorf("unexpected label: %s", views[0].StatusLabel)
	}
	if views[1].PetName != UnknownPetLabel || views[1].ProviderName != UnknownProviderLabel {
		t.Errorf("expected fallback labels, got %+v", views[1])
	}
	if views[1].StatusLabel != "archived" {
		t.Errorf("unknown status should pass through, got %s", views[1].StatusLabel)
	}
}
