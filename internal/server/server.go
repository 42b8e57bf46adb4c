package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kiwiorbit/speechive-7.1/internal/analytics"
	"github.com/kiwiorbit/speechive-7.1/internal/engine"
	"github.com/kiwiorbit/speechive-7.1/internal/handler"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/metrics"
	"github.com/kiwiorbit/speechive-7.1/internal/notification"
)

type Server struct {
	httpServer          *http.Server
	engineService       engine.Service
	analyticsService    analytics.Service
	notificationService notification.Service
}

// NewServer wires the API routes over the practice engine and its read models.
func NewServer(port int, engineService engine.Service, analyticsService analytics.Service, notificationService notification.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewRateMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(nil, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/timer", func(r chi.Router) {
			r.Get("/", handler.HandleGetTimer(engineService))
			r.Post("/start", handler.HandleStartTimer(engineService))
			r.Post("/stop", handler.HandleStopTimer(engineService))
		})

		r.Get("/challenges", handler.HandleGetChallenges(engineService))

		r.Route("/badges", func(r chi.Router) {
			r.Get("/", handler.HandleGetBadges(engineService))
			r.Post("/claim", handler.HandleClaimBadge(engineService))
		})

		r.Post("/redeem", handler.HandleRedeem(engineService))
		r.Post("/reset", handler.HandleReset(engineService))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", handler.HandleGetProfile(engineService))
			r.Put("/", handler.HandleSaveProfile(engineService))
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/today", handler.HandleGetToday(analyticsService))
			r.Get("/categories", handler.HandleGetCategories(analyticsService))
			r.Get("/daily", handler.HandleGetDailyTotals(analyticsService))
			r.Get("/weekly", handler.HandleGetWeekly(analyticsService))
			r.Get("/monthly", handler.HandleGetMonthly(analyticsService))
			r.Get("/top", handler.HandleGetTopActivities(analyticsService))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.HandleGetNotifications(notificationService))
			r.Post("/read-all", handler.HandleMarkNotificationsRead(notificationService))
			r.Post("/clear", handler.HandleClearNotifications(notificationService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		engineService:       engineService,
		analyticsService:    analyticsService,
		notificationService: notificationService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check and metrics endpoints
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", r.Header)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
