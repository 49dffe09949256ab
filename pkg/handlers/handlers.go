package handlers

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/middleware"
	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/notify"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

//go:embed static/*
var staticEmbed embed.FS

// Version is reported by the root endpoint
const Version = "1.0.0"

// Error codes returned next to the error message
const (
	CodeInvalidArgument    = "invalid-argument"
	CodeNotFound           = "not-found"
	CodeAlreadyExists      = "already-exists"
	CodeFailedPrecondition = "failed-precondition"
	CodeInternal           = "internal"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Store    repository.Store
	Engine   *staffing.Engine
	Notifier notify.Notifier
	Defaults models.StaffingConfig
	Logger   zerolog.Logger

	// Redis is optional and only used for the health check
	Redis *redis.Client
	// Now defaults to time.Now
	Now func() time.Time
}

// NewRouter builds the gin engine with every route registered
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Logger(h.Logger, "/healthz", "/metrics"),
		gin.Recovery(),
		middleware.CORS(allowedOrigins),
		middleware.SecurityHeaders(),
	)

	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", h.Root)
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/admin", h.AdminInterface)

	api := r.Group("/api")
	{
		api.GET("/staff", h.ListStaff)
		api.POST("/staff", h.CreateStaff)
		api.GET("/staff/:id", h.GetStaff)
		api.PUT("/staff/:id", h.UpdateStaff)
		api.DELETE("/staff/:id", h.DeleteStaff)

		api.POST("/shift-requests", h.SubmitShiftRequest)
		api.POST("/shift-requests/validate", h.ValidateShiftRequest)
		api.GET("/shift-requests", h.ListShiftRequests)
		api.GET("/shift-requests/:id", h.GetShiftRequest)
		api.POST("/shift-requests/:id/approve", h.ApproveShiftRequest)
		api.POST("/shift-requests/:id/reject", h.RejectShiftRequest)

		api.GET("/staffing/daily", h.DailyMetric)
		api.GET("/staffing/series", h.SeriesMetric)
		api.GET("/staffing/chart", h.Chart)
		api.GET("/staffing/calendar", h.Calendar)

		api.GET("/dashboard", h.Dashboard)
		api.GET("/reports/work", h.WorkReport)
	}

	return r
}

// Root returns service information
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shift Admin API",
		"version": Version,
	})
}

// Health reports store and redis connectivity
func (h *Handler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	storeHealthy := h.Store.Ping(ctx) == nil

	status := http.StatusOK
	body := gin.H{"status": "ok", "store": storeHealthy}
	if h.Redis != nil {
		redisHealthy := h.Redis.Ping(ctx).Err() == nil
		body["redis"] = redisHealthy
		if !redisHealthy {
			status = http.StatusServiceUnavailable
		}
	}
	if !storeHealthy {
		status = http.StatusServiceUnavailable
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}

// AdminInterface serves the admin web interface from embedded files
func (h *Handler) AdminInterface(c *gin.Context) {
	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// today is the current calendar day as a UTC midnight
func (h *Handler) today() time.Time {
	y, m, d := h.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func abortWithError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "code": code})
}

// storeError maps repository errors onto HTTP responses. Unexpected errors
// are logged and reported without detail.
func (h *Handler) storeError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, repository.ErrInvalidTransition):
		abortWithError(c, http.StatusConflict, CodeFailedPrecondition, err.Error())
	case errors.Is(err, repository.ErrAlreadyExists):
		abortWithError(c, http.StatusConflict, CodeAlreadyExists, "already exists")
	default:
		h.Logger.Error().Err(err).Str("path", c.FullPath()).Msg(action)
		abortWithError(c, http.StatusInternalServerError, CodeInternal, action)
	}
}

// parseDate parses a YYYY-MM-DD value as a UTC midnight
func parseDate(s string) (time.Time, error) {
	return time.Parse(staffing.DateLayout, s)
}

// staffingConfig reads target and avgHours from the query, falling back to
// the configured defaults.
func (h *Handler) staffingConfig(c *gin.Context) (models.StaffingConfig, error) {
	cfg := h.Defaults
	if v := c.Query("target"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, errors.New("target must be a number")
		}
		cfg.DailyTargetStaffCount = n
	}
	if v := c.Query("avgHours"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, errors.New("avgHours must be a number")
		}
		cfg.AverageHoursPerStaff = n
	}
	if err := cfg.Check(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
