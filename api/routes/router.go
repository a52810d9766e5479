// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cricverse/internal/auth"
	"cricverse/internal/bookings"
	"cricverse/internal/customers"
	"cricverse/internal/events"
	"cricverse/internal/notifications"
	"cricverse/internal/realtime"
	"cricverse/internal/seats"
	"cricverse/internal/shared/config"
	"cricverse/internal/shared/database"
	"cricverse/internal/stadiums"
	"cricverse/pkg/cache"
	"cricverse/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// shared across route groups
	seatRepo    seats.Repository
	eventReader events.Reader
	custReader  customers.Reader
}

// NewRouter creates a new router instance. producer may be nil when
// Kafka is not configured; booking notifications are then skipped.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared readers, wired once
	pg := r.db.GetPostgreSQL()
	r.seatRepo = seats.NewRepository(pg)
	r.eventReader = events.NewRepository(pg)
	r.custReader = customers.NewRepository(pg)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupEventRoutes(api)
		r.setupStadiumRoutes(api)
		r.setupSeatRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cricverse-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cricverse-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures registration and login routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	auth.SetupAuthRoutes(rg, authController)
}

// setupEventRoutes configures the public event browse routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventController := events.NewController(r.eventReader)
	events.SetupEventRoutes(rg, eventController)
}

// setupStadiumRoutes configures the public stadium browse routes
func (r *Router) setupStadiumRoutes(rg *gin.RouterGroup) {
	stadiumReader := stadiums.NewRepository(r.db.GetPostgreSQL())
	stadiumController := stadiums.NewController(stadiumReader)
	stadiums.SetupStadiumRoutes(rg, stadiumController)
}

// setupSeatRoutes configures seat inventory and availability routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	cacheService := cache.NewService(r.db.GetRedisClient())
	seatService := seats.NewService(r.seatRepo, r.eventReader, cacheService, r.config)
	seatController := seats.NewController(seatService)
	seats.SetupSeatRoutes(rg, seatController)
}

// setupBookingRoutes configures the booking orchestrator routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	pendingStore := bookings.NewPendingOrderStore(r.db.GetRedisClient(), r.config.Redis.PendingOrderTTL)
	broadcaster := realtime.NewBroadcaster(r.db.GetRedisClient())

	bookingService := bookings.NewService(
		bookingRepo,
		pendingStore,
		r.seatRepo,
		r.eventReader,
		r.custReader,
		r.producer,
		broadcaster,
		logger.GetDefault(),
	)
	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(rg, bookingController)
}
