package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cloudstay/internal/auth"
	"cloudstay/internal/cache"
	"cloudstay/internal/config"
	"cloudstay/internal/handler"
	mw "cloudstay/internal/middleware"
)

const idempotencyTTL = 24 * time.Hour

// Handlers groups the route handlers.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Room    *handler.RoomHandler
	Booking *handler.BookingHandler
	Payment *handler.PaymentHandler
	Stats   *handler.StatsHandler
	Health  *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	codec *auth.SessionCodec,
	resolver auth.RoleResolver,
	replay *cache.Client,
	h Handlers,
) {
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, mw.HeaderIdempotencyKey},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", handler.Welcome)
	e.GET("/healthz", h.Health.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	session := mw.RequireSession(codec)
	admin := mw.RequireAdmin(resolver)
	host := mw.RequireHost(resolver)

	// Session
	e.POST("/jwt", h.Auth.IssueToken)
	e.GET("/sign-out", h.Auth.SignOut)

	// Payments
	e.POST("/create-payment-intent", h.Payment.CreatePaymentIntent, session)

	// Users
	e.PUT("/users", h.User.SaveUser)
	e.GET("/users", h.User.ListUsers, session, admin)
	e.GET("/users/:email", h.User.GetUser, session)
	e.PATCH("/users/update/:email", h.User.UpdateUser, session, admin)

	// Rooms
	e.GET("/rooms", h.Room.ListRooms)
	e.GET("/rooms/:id", h.Room.GetRoom)
	e.POST("/rooms", h.Room.CreateRoom, session, host)
	e.GET("/my-listings/:email", h.Room.ListHostRooms, session, host)
	e.DELETE("/rooms/:id", h.Room.DeleteRoom, session, host)
	e.PATCH("/rooms/status/:id", h.Room.UpdateStatus, session)
	e.PUT("/rooms/update/:id", h.Room.UpdateRoom, session, host)

	// Bookings
	e.POST("/bookings", h.Booking.CreateBooking, session, mw.Idempotency(replay, idempotencyTTL))
	e.GET("/my-bookings/:email", h.Booking.ListGuestBookings, session)
	e.GET("/manage-bookings/:email", h.Booking.ListHostBookings, session, host)
	e.DELETE("/bookings/:id", h.Booking.DeleteBooking, session)

	// Statistics
	e.GET("/admin-stats", h.Stats.AdminStats, session, admin)
	e.GET("/host-stats", h.Stats.HostStats, session, host)
	e.GET("/guest-stats", h.Stats.GuestStats, session)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
