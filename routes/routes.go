package routes

import (
	"net/http"
	"time"

	"klinik/handlers"
	"klinik/middleware"
	"klinik/models"
	"klinik/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the pieces the route table needs besides the handlers.
type Deps struct {
	Identity middleware.IdentityProvider
	Gatherer prometheus.Gatherer
}

// RegisterAuthRoutes registers login, registration and the caller's profile.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requireIdentity gin.HandlerFunc) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/register", hb.Auth.Register)
		api.POST("/admin/login", hb.Auth.AdminLogin)
	}
	r.GET("/api/me", requireIdentity, hb.Auth.Me)
}

// RegisterPublicRoutes registers the schedule endpoints that need no token.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/schedules/general", hb.Schedule.GeneralSchedule)
		api.GET("/specializations", hb.Schedule.Specializations)
		api.GET("/schedules/specialization", hb.Schedule.SpecializationSchedules)
	}
}

// RegisterReservationRoutes registers the patient reservation flow.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requireIdentity gin.HandlerFunc) {
	api := r.Group("/api/reservations")
	{
		api.Use(requireIdentity)
		api.GET("/general/slots", hb.Schedule.GeneralSlots)
		api.POST("/general", hb.Booking.ReserveGeneral)
		api.GET("/specialization/:id/slots", hb.Schedule.SpecializationSlots)
		api.POST("/specialization", hb.Booking.ReserveSpecialization)
		api.GET("/history", hb.Booking.History)
		api.PUT("/:id/cancel", hb.Booking.Cancel)
		api.DELETE("/:id", hb.Booking.Delete)
	}
}

// RegisterAdminRoutes registers the clinic staff endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requireIdentity gin.HandlerFunc) {
	api := r.Group("/api/admin")
	{
		api.Use(requireIdentity, middleware.AdminOnly())
		api.GET("/queue", hb.Admin.Queue)
		api.PUT("/queue/:id/complete", hb.Admin.Complete)
		api.DELETE("/queue/:id", hb.Admin.Delete)
		api.GET("/schedules/general/coverage", hb.Schedule.AdminGeneralCoverage)
		if hb.Audit != nil {
			api.GET("/audit/:patientId", hb.Audit.ByPatient)
			api.DELETE("/audit/entries/:id", hb.Audit.Delete)
		}
		if hb.Catalogue != nil {
			registerCatalogueRoutes(api.Group("/catalogue"), hb.Catalogue)
		}
	}
}

func registerCatalogueRoutes(g *gin.RouterGroup, h *handlers.CatalogueHandler) {
	resources := []struct {
		path     string
		resource models.CatalogueResource
		save     gin.HandlerFunc
	}{
		{"/doctors", models.ResourceDoctors, h.SaveDoctor},
		{"/general-doctors", models.ResourceGeneralDoctors, h.SaveGeneralDoctor},
		{"/specializations", models.ResourceSpecializations, h.SaveSpecialization},
		{"/general-schedules", models.ResourceGeneralSchedules, h.SaveGeneralSchedule},
		{"/specialization-schedules", models.ResourceSpecializationSchedules, h.SaveSpecializationSchedule},
	}
	for _, r := range resources {
		g.GET(r.path, h.List(r.resource))
		g.GET(r.path+"/:id", h.Get(r.resource))
		g.POST(r.path, r.save)
		g.PUT(r.path+"/:id", r.save)
	}
}

// RegisterHealthRoute registers the health check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": http.StatusText(code), "checks": status})
	})
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, deps Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", utils.RequestHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestHeader},
		MaxAge:        12 * time.Hour,
	}))

	requireIdentity := middleware.IdentityMiddleware(deps.Identity, utils.GetLogger())

	RegisterHealthRoute(r, deps.Gatherer)
	RegisterAuthRoutes(r, hb, requireIdentity)
	RegisterPublicRoutes(r, hb)
	RegisterReservationRoutes(r, hb, requireIdentity)
	RegisterAdminRoutes(r, hb, requireIdentity)
}
