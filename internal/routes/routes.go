package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/config"
	"github.com/BruksfildServices01/petcare-marketplace/internal/handlers"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/infra/auth"
	"github.com/BruksfildServices01/petcare-marketplace/internal/media"
	"github.com/BruksfildServices01/petcare-marketplace/internal/middleware"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
	ucBooking "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/booking"
	ucPet "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/pet"
	ucSession "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/session"
)

// RegisterRoutes wires use cases and handlers. images may be nil when
// uploads are not configured. history is the sink behind
// GET /api/notifications and may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	holder *state.Holder,
	ids *idgen.Sequence,
	notifier notify.Notifier,
	history *notify.History,
	images *media.PetImages,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CorrelationID())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	authProvider := auth.NewMock()

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	addPetUC := ucPet.NewAddPet(holder, ids, notifier)
	deletePetUC := ucPet.NewDeletePet(holder, notifier)

	createBookingUC := ucBooking.NewCreateBooking(holder, ids, notifier, cfg.Timezone)
	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		holder,
		notifier,
		cfg.BookingStrictTransitions,
	)

	loginUC := ucSession.NewLogin(holder, ids, authProvider, notifier)
	registerUC := ucSession.NewRegister(holder, ids, authProvider, notifier)
	googleUC := ucSession.NewGoogleLogin(holder, ids, authProvider, notifier)
	logoutUC := ucSession.NewLogout(holder, notifier)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, loginUC, registerUC, googleUC, logoutUC)
	meHandler := handlers.NewMeHandler(holder)
	providerHandler := handlers.NewProviderHandler(holder)
	petHandler := handlers.NewPetHandler(holder, addPetUC, deletePetUC, images, cfg.GuestPetsVisible)
	bookingHandler := handlers.NewBookingHandler(holder, createBookingUC, updateBookingStatusUC)
	stateHandler := handlers.NewStateHandler(holder, ids)
	notificationHandler := handlers.NewNotificationHandler(history)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 CATALOG
		// ------------------------------
		api.GET("/walkers", providerHandler.ListWalkers)
		api.GET("/walkers/locations", providerHandler.WalkerLocations)
		api.GET("/petsitters", providerHandler.ListPetSitters)
		api.GET("/petsitters/locations", providerHandler.PetSitterLocations)
		api.GET("/favorites", providerHandler.Favorites)

		// ------------------------------
		// 🐾 PETS / BOOKINGS
		// ------------------------------
		api.GET("/pets", petHandler.List)

		// Anonymous requests reach the use case, which answers
		// login_required.
		actor := middleware.OptionalSession(cfg.JWTSecret, holder)
		api.POST("/pets", actor, petHandler.Create)
		api.POST("/bookings", actor, bookingHandler.Create)

		// ------------------------------
		// 🔔 NOTIFICATIONS / STATE
		// ------------------------------
		api.GET("/notifications", notificationHandler.Recent)
		api.POST("/sync", stateHandler.Sync)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/google", authHandler.Google)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// 🔐 SESSION
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.SessionAuth(cfg.JWTSecret, holder))
		{
			secured.GET("/pets", petHandler.MeList)
			secured.DELETE("/pets/:id", petHandler.Delete)

			secured.GET("/bookings", bookingHandler.MeList)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
		}
	}
}
