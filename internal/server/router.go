package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/config"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/mockapi"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/overlay"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/security"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/handlers"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/mw"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/swaggerui"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Catalog  *catalog.Catalog
	Backend  mockapi.Backend
	Overlay  overlay.Store
	Sessions *security.SessionManager
	// Redis is optional; without it rate limiting is off.
	Redis    *redis.Client
}

func NewRouter(cfg config.Config, deps Deps, logger *zap.Logger) http.Handler {
	if cfg.IsLocal() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw.RequestID())
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.SecurityHeaders())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}))

	r.GET("/health", func(c *gin.Context) {
		resp.OK(c, gin.H{"status": "ok", "backend": cfg.BackendMode})
	})

	swaggerui.Register(r)

	v1 := r.Group("/v1")
	v1.Use(mw.RequireBaseHeaders(cfg))
	if deps.Redis != nil && cfg.RateLimitPerSec > 0 {
		v1.Use(mw.RateLimit(deps.Redis, cfg.RateLimitPerSec, logger))
	}

	authH := handlers.NewAuthHandler(logger, deps.Backend, deps.Sessions)
	kycH := handlers.NewKYCHandler(logger, deps.Backend)
	jobsH := handlers.NewJobsHandler(logger, deps.Catalog)
	tripsH := handlers.NewTripsHandler(logger, deps.Catalog)
	bookingsH := handlers.NewBookingsHandler(logger, deps.Catalog)
	fleetH := handlers.NewFleetHandler(logger, deps.Catalog)
	calendarH := handlers.NewCalendarHandler(logger, deps.Catalog)
	learningH := handlers.NewLearningHandler(logger, deps.Catalog)
	feedH := handlers.NewFeedHandler(logger, deps.Catalog)
	overlayH := handlers.NewOverlayHandler(logger, deps.Catalog, deps.Overlay)

	v1.POST("/auth/register", authH.Register)
	v1.POST("/auth/social/:provider", authH.SocialLogin)
	v1.GET("/kyc/:user_id", kycH.Get)

	v1.GET("/jobs", jobsH.List)
	v1.GET("/jobs/stats", jobsH.Stats)
	v1.GET("/jobs/:id", jobsH.Get)

	v1.GET("/trips", tripsH.List)
	v1.GET("/trips/stats", tripsH.Stats)
	v1.GET("/trips/:id", tripsH.Get)

	v1.GET("/bookings", bookingsH.List)
	v1.GET("/bookings/stats", bookingsH.Stats)
	v1.GET("/bookings/:id", bookingsH.Get)

	v1.GET("/fleet/vehicles", fleetH.ListVehicles)
	v1.GET("/fleet/vehicles/:id", fleetH.GetVehicle)
	v1.GET("/fleet/drivers", fleetH.ListDrivers)
	v1.GET("/fleet/drivers/:id", fleetH.GetDriver)
	v1.GET("/fleet/stats", fleetH.Stats)

	v1.GET("/calendar", calendarH.List)
	v1.GET("/calendar/:date", calendarH.Get)

	v1.GET("/learning/modules", learningH.List)
	v1.GET("/learning/modules/:id", learningH.Get)
	v1.GET("/learning/modules/:id/certificate", learningH.Certificate)
	v1.GET("/learning/stats", learningH.Stats)

	v1.GET("/feed", feedH.List)
	v1.GET("/feed/:id", feedH.Get)

	me := v1.Group("/me")
	me.Use(mw.RequireSession(deps.Sessions))
	me.GET("", authH.Me)
	me.GET("/overlay", overlayH.Snapshot)
	me.DELETE("/overlay", overlayH.Clear)
	me.PUT("/overlay/:kind/:id", overlayH.Add)
	me.DELETE("/overlay/:kind/:id", overlayH.Remove)
	me.GET("/jobs/stats", overlayH.JobStats)
	me.GET("/bookings", overlayH.Bookings)

	return r
}
