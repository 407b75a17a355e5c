package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/vetify/booking-api/internal/handler"
	adminhandler "github.com/vetify/booking-api/internal/handler/admin"
	authhandler "github.com/vetify/booking-api/internal/handler/auth"
	bookinghandler "github.com/vetify/booking-api/internal/handler/booking"
	directoryhandler "github.com/vetify/booking-api/internal/handler/directory"
	pethandler "github.com/vetify/booking-api/internal/handler/pet"
	"github.com/vetify/booking-api/internal/middleware"
	"github.com/vetify/booking-api/internal/model"
)

type Router struct {
	engine     *gin.Engine
	auth       *middleware.AuthMiddleware
	h          *handler.Handler
	authH      *authhandler.Handler
	petH       *pethandler.Handler
	bookingH   *bookinghandler.Handler
	directoryH *directoryhandler.Handler
	adminH     *adminhandler.Handler
	metrics    *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	h *handler.Handler,
	authH *authhandler.Handler,
	petH *pethandler.Handler,
	bookingH *bookinghandler.Handler,
	directoryH *directoryhandler.Handler,
	adminH *adminhandler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()

	engine := gin.New()

	r := &Router{
		engine:     engine,
		auth:       auth,
		h:          h,
		authH:      authH,
		petH:       petH,
		bookingH:   bookingH,
		directoryH: directoryH,
		adminH:     adminH,
		metrics:    initRouterMetrics("booking_api"),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)

	// Public routes
	r.authH.RegisterRoutes(api)
	directoryGroup := api.Group("")
	directoryGroup.Use(middleware.Cache(middleware.DefaultCacheConfig()))
	r.directoryH.RegisterRoutes(directoryGroup)

	// Authenticated routes
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
	r.petH.RegisterRoutes(protected)
	r.bookingH.RegisterRoutes(protected)

	// Superuser routes
	adminGroup := protected.Group("/admin")
	adminGroup.Use(r.auth.RequireSuperuser())
	r.adminH.RegisterRoutes(adminGroup)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// registerValidations adds the hhmm tag used by time-of-day request fields.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(model.TimeLayout, fl.Field().String())
			return err == nil
		})
	}
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
