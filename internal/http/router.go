// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/auth"
	"github.com/confqa/go-conference-backend/internal/classifier"
	"github.com/confqa/go-conference-backend/internal/config"
	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/http/handlers"
	"github.com/confqa/go-conference-backend/internal/http/middleware"
	"github.com/confqa/go-conference-backend/internal/repo"
	"github.com/confqa/go-conference-backend/internal/services"
)

// maxJSONBody caps ordinary JSON request bodies.
const maxJSONBody = 1 << 20

// maxUploadBody caps multipart upload bodies (avatar cap plus form overhead).
const maxUploadBody = 6 << 20

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), idempotency and rate
// limiting, CORS and security headers, static file serving for uploads,
// health and metrics endpoints, and then mounts the versioned public API
// under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip response compression
//  7. Metrics
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per user/IP, bypass on replay)
//  10. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			middleware.HeaderIdempotencyKey,
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Body size limit; avatar uploads get a larger cap than JSON bodies.
	r.Use(limitBody(maxJSONBody, maxUploadBody))

	// 6) Response compression (skip the Prometheus scrape endpoint)
	r.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, userID, key string, now time.Time) (bool, error) {
			rec, err := repo.GetSubmission(ctx, db, userID, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Uploaded avatars are served straight from disk.
	r.Static("/uploads", cfg.Uploads.Dir)

	// Dependency injection: services ← db/classifier/auth
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	predictor := classifier.New(cfg.Classifier.BaseURL, cfg.Classifier.Timeout)

	accountSvc := &services.AccountService{DB: db, Tokens: tokens}
	topicSvc := &services.TopicService{DB: db}
	questionSvc := &services.QuestionService{
		DB:              db,
		Classifier:      predictor,
		MaxContentRunes: 2000,
	}
	feedbackSvc := &services.FeedbackService{DB: db}
	profileSvc := &services.ProfileService{
		DB:             db,
		UploadDir:      cfg.Uploads.Dir,
		MaxAvatarBytes: cfg.Uploads.MaxAvatarBytes,
	}
	notifSvc := &services.NotificationService{DB: db}

	h := handlers.New(accountSvc, topicSvc, questionSvc, feedbackSvc, profileSvc, notifSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)

	// Auth endpoints stay open.
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	// Everything else requires a valid token.
	authed := api.Group("", middleware.Authenticate(tokens))
	speaker := middleware.RequireRole(domain.RoleSpeaker)
	{
		// Topics
		authed.POST("/topics", speaker, h.CreateTopic)
		authed.GET("/topics", h.ListTopics)
		authed.GET("/topics/my", speaker, h.ListMyTopics)
		authed.GET("/topics/:id", h.GetTopic)
		authed.PUT("/topics/:id", speaker, h.UpdateTopic)
		authed.DELETE("/topics/:id", speaker, h.DeleteTopic)

		// Questions (any authenticated user may submit, speakers included)
		authed.POST("/questions", h.SubmitQuestion)
		authed.GET("/questions/my-questions", h.MyQuestions)
		authed.GET("/questions/speaker-questions", speaker, h.SpeakerQuestions)
		authed.PUT("/questions/:id/status", speaker, h.UpdateQuestionStatus)
		authed.DELETE("/questions/:id", speaker, h.DeleteQuestion)

		// Feedback
		authed.POST("/feedback", h.SubmitFeedback)
		authed.GET("/feedback/topic/:topicId", h.ListTopicFeedback)
		authed.GET("/feedback/check/:topicId", h.CheckFeedback)

		// Profile
		authed.GET("/users/profile", h.GetProfile)
		authed.PUT("/users/profile", h.UpdateProfile)
		authed.POST("/users/avatar", h.UploadAvatar)

		// Notifications
		authed.GET("/notifications", h.ListNotifications)
		authed.PUT("/notifications/:id/read", h.MarkNotificationRead)
	}
}

// limitBody returns a Gin middleware that caps the request body size using
// http.MaxBytesReader. Multipart endpoints (avatar upload) get uploadMax; all
// other endpoints get jsonMax. Requests exceeding the cap cause downstream
// body reads to error.
func limitBody(jsonMax, uploadMax int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		max := jsonMax
		if strings.HasSuffix(c.Request.URL.Path, "/users/avatar") {
			max = uploadMax
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
