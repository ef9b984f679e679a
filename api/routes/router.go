// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinebook/internal/customers"
	"cinebook/internal/movies"
	"cinebook/internal/notifications"
	"cinebook/internal/reservations"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/showtimes"
	"cinebook/internal/snacks"
	"cinebook/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer *notifications.Producer

	cacheService    cache.Service
	showtimeService showtimes.Service // shared with reservations for cache invalidation
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer *notifications.Producer) *Router {
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

	// One cache service shared by every feature
	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.GetRedis())
	}

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupMovieRoutes(api)

		// Showtimes before reservations: the booking flow invalidates the
		// showtimings cache through the showtime service.
		r.setupShowtimeRoutes(api)

		r.setupCustomerRoutes(api)
		r.setupSnackRoutes(api)
		r.setupReservationRoutes(api)
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
				"service":   "cinebook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	movieRepo := movies.NewRepository(r.db.GetPostgreSQL())
	movieService := movies.NewService(movieRepo, r.config)
	if r.cacheService != nil {
		movieService.SetCacheService(r.cacheService)
	}
	movieController := movies.NewController(movieService)

	movies.SetupMovieRoutes(rg, movieController)
}

func (r *Router) setupShowtimeRoutes(rg *gin.RouterGroup) {
	showtimeRepo := showtimes.NewRepository(r.db.GetPostgreSQL())
	showtimeService := showtimes.NewService(showtimeRepo, r.config)
	if r.cacheService != nil {
		showtimeService.SetCacheService(r.cacheService)
	}
	showtimeController := showtimes.NewController(showtimeService)

	// Kept for the reservation flow's cache invalidation
	r.showtimeService = showtimeService

	showtimes.SetupShowtimeRoutes(rg, showtimeController)
}

func (r *Router) setupCustomerRoutes(rg *gin.RouterGroup) {
	customerRepo := customers.NewRepository(r.db.GetPostgreSQL())
	customerService := customers.NewService(customerRepo)
	customerController := customers.NewController(customerService)

	customers.SetupCustomerRoutes(rg, customerController)
}

func (r *Router) setupSnackRoutes(rg *gin.RouterGroup) {
	snackRepo := snacks.NewRepository(r.db.GetPostgreSQL())
	snackService := snacks.NewService(snackRepo, r.config)
	snackController := snacks.NewController(snackService)

	snacks.SetupSnackRoutes(rg, snackController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	reservationService := reservations.NewService(reservationRepo, r.config)

	if r.showtimeService != nil {
		reservationService.SetShowtimeInvalidator(r.showtimeService)
	}
	if r.producer != nil {
		reservationService.SetEventPublisher(r.producer)
	}

	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}
