package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/infra/kv"
	"github.com/BruksfildServices01/petcare-marketplace/internal/middleware"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// loggedOutHolder holds records for users 7 and 8 with nobody signed in,
// the state a logout leaves behind between authentication and the read.
func loggedOutHolder(t *testing.T) *state.Holder {
	t.Helper()
	ctx := context.Background()
	h := state.NewHolder(ctx, state.NewStore(kv.NewMemoryStore()))
	_, err := h.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		cur.Pets = []models.Pet{
			{ID: 1, Name: "Rex", UserID: 7},
			{ID: 2, Name: "Luna", UserID: 8},
		}
		cur.Bookings = []models.Booking{
			{ID: 10, PetID: 1, WalkerID: 101, Status: "pending", UserID: 7},
			{ID: 11, PetID: 2, WalkerID: 101, Status: "pending", UserID: 8},
		}
		return cur, state.DirtyPets | state.DirtyBookings, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	return h
}

func authenticatedAs(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Next()
	}
}

func TestMeListFiltersByAuthenticatedUser(t *testing.T) {
	h := loggedOutHolder(t)

	r := gin.New()
	r.Use(authenticatedAs(7))
	r.GET("/me/pets", NewPetHandler(h, nil, nil, nil, true).MeList)
	r.GET("/me/bookings", NewBookingHandler(h, nil, nil).MeList)

	for path, want := range map[string]int64{"/me/pets": 1, "/me/bookings": 10} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		var body struct {
			Data []struct {
				ID int64 `json:"id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode %s: %v", path, w.Body.String(), err)
		}
		if len(body.Data) != 1 || body.Data[0].ID != want {
			t.Errorf("%s: expected only record %d, got %+v", path, want, body.Data)
		}
	}
}
