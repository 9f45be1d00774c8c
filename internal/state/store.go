package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/store"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

// Store reads and writes whole entity collections through a KV backend.
type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// ======================================================
// LOAD
// ======================================================

// Load reads every collection. It never fails: missing or corrupted data
// degrades to an empty collection, or to the seed for provider catalogs.
func (s *Store) Load(ctx context.Context) Snapshot {
	snap := Snapshot{
		Pets:     loadList[models.Pet](ctx, s.kv, KeyPets),
		Bookings: loadList[models.Booking](ctx, s.kv, KeyBookings),
		User:     s.loadUser(ctx),
	}

	snap.Walkers = s.loadCatalog(ctx, KeyWalkers, seedWalkers)
	snap.PetSitters = s.loadCatalog(ctx, KeyPetSitters, seedPetSitters)
	snap.Favorites = s.loadCatalog(ctx, KeyFavorites, seedFavorites)

	return snap
}

func (s *Store) loadUser(ctx context.Context) *models.User {
	raw, ok, err := s.kv.Load(ctx, KeyUser)
	if err != nil {
		log.Printf("state: load %s: %v", KeyUser, err)
		return nil
	}
	if !ok || raw == "" || raw == "null" {
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("state: corrupted %s, starting logged out: %v", KeyUser, err)
		return nil
	}
	return &u
}

// loadCatalog returns the stored provider list, or seeds it and writes the
// seed back so later loads see the same rows.
func (s *Store) loadCatalog(
	ctx context.Context,
	key string,
	seed func() []models.Provider,
) []models.Provider {

	raw, ok, err := s.kv.Load(ctx, key)
	if err != nil {
		log.Printf("state: load %s: %v, using seed", key, err)
		return seed()
	}

	if ok {
		var items []models.Provider
		if err := json.Unmarshal([]byte(raw), &items); err == nil && items != nil {
			return items
		}
		log.Printf("state: corrupted %s, reseeding", key)
	}

	items := seed()
	if err := saveList(ctx, s.kv, key, items); err != nil {
		log.Printf("state: seed %s: %v", key, err)
	}
	return items
}

func loadList[T any](ctx context.Context, kv store.KV, key string) []T {
	raw, ok, err := kv.Load(ctx, key)
	if err != nil {
		log.Printf("state: load %s: %v", key, err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("state: corrupted %s, starting empty: %v", key, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// ======================================================
// PERSIST
// ======================================================

// Persist writes the collections named by dirty from snap.
func (s *Store) Persist(ctx context.Context, snap Snapshot, dirty Dirty) error {
	var errs []error

	if dirty.Has(DirtyPets) {
		errs = append(errs, saveList(ctx, s.kv, KeyPets, snap.Pets))
	}
	if dirty.Has(DirtyBookings) {
		errs = append(errs, saveList(ctx, s.kv, KeyBookings, snap.Bookings))
	}
	if dirty.Has(DirtyUser) {
		errs = append(errs, s.saveUser(ctx, snap.User))
	}

	return errors.Join(errs...)
}

// saveUser writes the user, or removes the key when nobody is logged in.
func (s *Store) saveUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.kv.Clear(ctx, KeyUser)
	}

	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyUser, err)
	}
	return s.kv.Save(ctx, KeyUser, string(b))
}

func saveList[T any](ctx context.Context, kv store.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Save(ctx, key, string(b))
}
