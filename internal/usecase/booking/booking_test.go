package booking

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/booking"
	petdomain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/infra/auth"
	"github.com/BruksfildServices01/petcare-marketplace/internal/infra/kv"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
	petuc "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/pet"
	"github.com/BruksfildServices01/petcare-marketplace/internal/usecase/session"
)

type recorder struct {
	list []notify.Notification
}

func (r *recorder) Notify(_ context.Context, n notify.Notification) {
	r.list = append(r.list, n)
}

func (r *recorder) Last() (notify.Notification, bool) {
	if len(r.list) == 0 {
		return notify.Notification{}, false
	}
	return r.list[len(r.list)-1], true
}

type fixture struct {
	holder *state.Holder
	mem    *kv.MemoryStore
	ids    *idgen.Sequence
	rec    *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := kv.NewMemoryStore()
	return &fixture{
		holder: state.NewHolder(context.Background(), state.NewStore(mem)),
		mem:    mem,
		ids:    idgen.New(nil),
		rec:    &recorder{},
	}
}

func (f *fixture) login(t *testing.T, email string) models.User {
	t.Helper()
	u, err := session.NewLogin(f.holder, f.ids, auth.NewMock(), f.rec).
		Execute(context.Background(), account.Credentials{Email: email, Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return u
}

func (f *fixture) addPet(t *testing.T, owner int64, name string) models.Pet {
	t.Helper()
	p, err := petuc.NewAddPet(f.holder, f.ids, f.rec).Execute(context.Background(), petuc.AddPetInput{
		OwnerID: owner,
		Pet:     petdomain.Input{Name: name, Breed: "Labrador", Age: "3", Weight: "30"},
	})
	if err != nil {
		t.Fatalf("add pet: %v", err)
	}
	return p
}

// foreignPet stores a pet owned by someone other than the signed-in user.
func (f *fixture) foreignPet(t *testing.T, owner int64, name string) models.Pet {
	t.Helper()
	p := models.Pet{ID: f.ids.Next(), UserID: owner, Name: name, Breed: "Labrador", Age: "3", Weight: "30"}
	_, err := f.holder.Apply(context.Background(), func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		cur.Pets = append(append([]models.Pet(nil), cur.Pets...), p)
		return cur, state.DirtyPets, nil
	})
	if err != nil {
		t.Fatalf("store pet: %v", err)
	}
	return p
}

func request(petID int64) domain.CreateInput {
	return domain.CreateInput{
		PetID:    petID,
		WalkerID: 101,
		Date:     "2024-01-01",
		Time:     "10:00",
		Service:  "Paseos",
		Duration: 2,
	}
}

func TestLoginAddPetAndBook(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := f.login(t, "ana@example.com")
	if user.Name != "ana" {
		t.Fatalf("expected name ana, got %s", user.Name)
	}
	rex := f.addPet(t, user.ID, "Rex")

	b, err := NewCreateBooking(f.holder, f.ids, f.rec, "UTC").Execute(ctx, CreateBookingInput{UserID: user.ID, Booking: request(rex.ID)})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if b.TotalPrice != 30 || b.Status != "pending" || b.UserID != user.ID {
		t.Errorf("unexpected booking %+v", b)
	}
	if n, _ := f.rec.Last(); n.Title != "¡Reserva creada!" {
		t.Errorf("unexpected notification %+v", n)
	}

	reloaded := state.NewStore(f.mem).Load(ctx)
	if len(reloaded.Bookings) != 1 || reloaded.Bookings[0].ID != b.ID {
		t.Errorf("expected booking persisted, got %+v", reloaded.Bookings)
	}
}

func TestCreateBookingWithoutUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := NewCreateBooking(f.holder, f.ids, f.rec, "UTC").Execute(ctx, CreateBookingInput{UserID: 1, Booking: request(1)})

	if !httperr.IsBusiness(err, httperr.CodeLoginRequired) {
		t.Fatalf("expected login_required, got %v", err)
	}
	if len(f.holder.Current().Bookings) != 0 {
		t.Error("no booking must be created")
	}
	n, _ := f.rec.Last()
	if n.Title != "¡Inicia sesión!" || n.Variant != notify.VariantDestructive {
		t.Errorf("unexpected notification %+v", n)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.login(t, "ana@example.com")
	rex := f.addPet(t, user.ID, "Rex")
	other := f.foreignPet(t, user.ID+1000, "Ajena")
	uc := NewCreateBooking(f.holder, f.ids, f.rec, "UTC")

	cases := map[string]struct {
		mutate func(*domain.CreateInput)
		code   string
	}{
		"missing service":   {func(in *domain.CreateInput) { in.Service = "" }, httperr.CodeMissingFields},
		"negative duration": {func(in *domain.CreateInput) { in.Duration = -2 }, httperr.CodeInvalidDuration},
		"bad date":          {func(in *domain.CreateInput) { in.Date = "mañana" }, httperr.CodeInvalidDateOrTime},
		"unknown provider":  {func(in *domain.CreateInput) { in.WalkerID = 999 }, httperr.CodeProviderNotFound},
		"foreign pet":       {func(in *domain.CreateInput) { in.PetID = other.ID }, httperr.CodePetNotFound},
		"service not sold":  {func(in *domain.CreateInput) { in.Service = "Hospedaje nocturno" }, httperr.CodeServiceNotOffered},
	}

	for name, tc := range cases {
		in := request(rex.ID)
		tc.mutate(&in)
		if _, err := uc.Execute(ctx, CreateBookingInput{UserID: user.ID, Booking: in}); !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", name, tc.code, err)
		}
	}

	if len(f.holder.Current().Bookings) != 0 {
		t.Error("rejected requests must not create bookings")
	}
}

func TestCreateBookingDefaultsDurationAndBooksSitters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.login(t, "ana@example.com")
	rex := f.addPet(t, user.ID, "Rex")

	in := request(rex.ID)
	in.WalkerID = 201
	in.Service = "Hospedaje nocturno"
	in.Duration = 0

	b, err := NewCreateBooking(f.holder, f.ids, f.rec, "UTC").Execute(ctx, CreateBookingInput{UserID: user.ID, Booking: in})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Duration != 1 || b.TotalPrice != 12 {
		t.Errorf("unexpected booking %+v", b)
	}
}

func TestUpdateStatusLastWriteWins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.login(t, "ana@example.com")
	rex := f.addPet(t, user.ID, "Rex")
	b, err := NewCreateBooking(f.holder, f.ids, f.rec, "UTC").Execute(ctx, CreateBookingInput{UserID: user.ID, Booking: request(rex.ID)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewUpdateBookingStatus(f.holder, f.rec, false)

	if _, found, err := uc.Execute(ctx, UpdateStatusInput{ID: b.ID, Status: "confirmed"}); err != nil || !found {
		t.Fatalf("confirm: found=%v err=%v", found, err)
	}
	if n, _ := f.rec.Last(); n.Description != "La reserva ha sido confirmada." {
		t.Errorf("unexpected notification %+v", n)
	}

	updated, _, err := uc.Execute(ctx, UpdateStatusInput{ID: b.ID, Status: "cancelled"})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if updated.Status != "cancelled" || updated.TotalPrice != b.TotalPrice {
		t.Errorf("only the status may change, got %+v", updated)
	}

	if _, found, err := uc.Execute(ctx, UpdateStatusInput{ID: 12345, Status: "confirmed"}); err != nil || found {
		t.Errorf("unknown id must be a no-op: found=%v err=%v", found, err)
	}

	if _, _, err := uc.Execute(ctx, UpdateStatusInput{ID: b.ID, Status: "archived"}); !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Errorf("expected invalid_status, got %v", err)
	}
}

func TestUpdateStatusStrict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.login(t, "ana@example.com")
	rex := f.addPet(t, user.ID, "Rex")
	b, err := NewCreateBooking(f.holder, f.ids, f.rec, "UTC").Execute(ctx, CreateBookingInput{UserID: user.ID, Booking: request(rex.ID)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewUpdateBookingStatus(f.holder, f.rec, true)

	if _, _, err := uc.Execute(ctx, UpdateStatusInput{ID: b.ID, Status: "confirmed"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	_, _, err = uc.Execute(ctx, UpdateStatusInput{ID: b.ID, Status: "cancelled"})
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}

	got := f.holder.Current()
	if got.Bookings[0].Status != "confirmed" {
		t.Errorf("rejected transition must not change state, got %s", got.Bookings[0].Status)
	}
}

func TestCreateBookingRejectsStaleRequester(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := f.login(t, "ana@example.com")
	rex := f.addPet(t, first.ID, "Rex")
	second := f.login(t, "luis@example.com")
	uc := NewCreateBooking(f.holder, f.ids, f.rec, "UTC")

	if second.ID == first.ID {
		t.Fatal("expected distinct users")
	}

	for name, id := range map[string]int64{"anonymous": 0, "previous user": first.ID} {
		_, err := uc.Execute(ctx, CreateBookingInput{UserID: id, Booking: request(rex.ID)})
		if !httperr.IsBusiness(err, httperr.CodeLoginRequired) {
			t.Errorf("%s: expected login_required, got %v", name, err)
		}
	}

	if len(f.holder.Current().Bookings) != 0 {
		t.Error("no booking must be created")
	}
}

func TestUpdateStatusMessages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.login(t, "ana@example.com")
	rex := f.addPet(t, user.ID, "Rex")
	b, err := NewCreateBooking(f.holder, f.ids, f.rec, "UTC").Execute(ctx, CreateBookingInput{UserID: user.ID, Booking: request(rex.ID)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewUpdateBookingStatus(f.holder, f.rec, false)
	expected := map[string]string{
		"completed": "La reserva ha sido marcada como completada.",
		"pending":   "La reserva ha vuelto a quedar pendiente.",
		"cancelled": "La reserva ha sido cancelada.",
	}

	for status, msg := range expected {
		if _, _, err := uc.Execute(ctx, UpdateStatusInput{ID: b.ID, Status: status}); err != nil {
			t.Fatalf("%s: %v", status, err)
		}
		if n, _ := f.rec.Last(); n.Title != "Estado actualizado" || n.Description != msg {
			t.Errorf("%s: unexpected notification %+v", status, n)
		}
	}
}
