package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"diet-planner/internal/metrics"
	"diet-planner/internal/planner"
	"diet-planner/internal/profile"
	"diet-planner/internal/tracking"
)

// PlanService is the application surface the HTTP API exposes.
type PlanService interface {
	SaveProfile(ctx context.Context, userID string, snap profile.Snapshot) error
	Profile(ctx context.Context, userID string) (*profile.Snapshot, error)
	GeneratePlanForUser(ctx context.Context, userID string, start time.Time) (*planner.PlanCycle, error)
	ActivePlan(ctx context.Context, userID string) (*planner.PlanCycle, error)
	PlanWeek(ctx context.Context, userID string, index int) (*planner.PlanWeek, error)
	SaveDayCheck(ctx context.Context, userID, date string, check tracking.DayCheck) (*tracking.DayCheck, error)
	LogFood(ctx context.Context, userID, date string, entry tracking.FoodLogEntry) (*tracking.FoodLogDay, error)
	DayProgress(ctx context.Context, userID, date string) (*tracking.Progress, error)
	Health() metrics.SysHealth
}

// Server routes JSON requests to the plan service.
type Server struct {
	svc     PlanService
	logger  *zap.Logger
	handler http.Handler
	now     func() time.Time
}

// NewServer creates a Server with CORS restricted to allowedOrigins.
func NewServer(svc PlanService, logger *zap.Logger, allowedOrigins []string) *Server {
	s := &Server{
		svc:    svc,
		logger: logger,
		now:    time.Now,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/users/{userID}").Subrouter()
	api.HandleFunc("/profile", s.handleGetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile", s.handlePutProfile).Methods(http.MethodPut)
	api.HandleFunc("/plans", s.handleGeneratePlan).Methods(http.MethodPost)
	api.HandleFunc("/plans/active", s.handleActivePlan).Methods(http.MethodGet)
	api.HandleFunc("/plans/active/weeks/{week}", s.handlePlanWeek).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}", s.handleDayProgress).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/check", s.handleDayCheck).Methods(http.MethodPut)
	api.HandleFunc("/days/{date}/food-log", s.handleLogFood).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"*"},
	})

	s.handler = c.Handler(s.loggingMiddleware(r))
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapper.statusCode),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
