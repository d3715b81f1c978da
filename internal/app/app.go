package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"diet-planner/internal/clipper"
	"diet-planner/internal/config"
	"diet-planner/internal/database"
	"diet-planner/internal/ghost"
	"diet-planner/internal/metrics"
	"diet-planner/internal/planner"
	"diet-planner/internal/profile"
	"diet-planner/internal/recipe"
	"diet-planner/internal/storage"
	"diet-planner/internal/tracking"
)

// ErrNoActivePlan is returned when a user has never generated a plan.
var ErrNoActivePlan = errors.New("no active plan")

// App holds the application's dependencies.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	ghostClient   ghost.Client
	recipeClipper *clipper.Clipper
	planStore     *storage.PlanStore

	profileRepo  *profile.Repository
	recipeRepo   *recipe.Repository
	planRepo     *planner.PlanRepository
	metricsStore *metrics.Store
	trackingRepo *tracking.Repository

	now func() time.Time
}

// NewApp creates and initializes a new App instance. ghostClient and
// planStore may be nil, which disables Ghost ingestion and JSON exports.
func NewApp(
	cfg *config.Config,
	logger *zap.Logger,
	db *database.DB,
	ghostClient ghost.Client,
	planStore *storage.PlanStore,
) *App {
	recipeRepo := recipe.NewRepository(db.SQL)
	return &App{
		cfg:           cfg,
		logger:        logger,
		ghostClient:   ghostClient,
		recipeClipper: clipper.NewClipper(recipeRepo),
		planStore:     planStore,
		profileRepo:   profile.NewRepository(db.SQL),
		recipeRepo:    recipeRepo,
		planRepo:      planner.NewPlanRepository(db.SQL),
		metricsStore:  metrics.NewStore(db.SQL),
		trackingRepo:  tracking.NewRepository(db.SQL),
		now:           time.Now,
	}
}

// SaveProfile stores the onboarding snapshot of a user.
func (a *App) SaveProfile(ctx context.Context, userID string, snap profile.Snapshot) error {
	if err := a.profileRepo.Save(ctx, userID, snap); err != nil {
		return err
	}
	a.logger.Info("profile saved",
		zap.String("user_id", userID),
		zap.String("goal", string(snap.Goal.GoalType)),
		zap.String("style", string(snap.Preferences.Style)),
	)
	return nil
}

// Profile returns the stored snapshot of a user, or nil when there is none.
func (a *App) Profile(ctx context.Context, userID string) (*profile.Snapshot, error) {
	return a.profileRepo.Get(ctx, userID)
}

// GeneratePlanForUser builds a new 28-day cycle from the user's stored profile
// and the current catalog, archives the previous active cycle and stores the
// new one. A zero start means today.
func (a *App) GeneratePlanForUser(ctx context.Context, userID string, start time.Time) (*planner.PlanCycle, error) {
	snap, err := a.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("%w: no profile saved for user %s", planner.ErrIncompleteProfile, userID)
	}

	catalog, err := a.recipeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if start.IsZero() {
		start = a.now()
	}

	began := time.Now()
	cycle, report, err := planner.GeneratePlan(planner.Request{
		Snapshot:  *snap,
		Catalog:   catalog,
		StartDate: start,
	})
	if err != nil {
		a.logger.Warn("plan generation rejected",
			zap.String("user_id", userID),
			zap.Int("catalog_size", len(catalog)),
			zap.Error(err),
		)
		return nil, err
	}
	latency := time.Since(began)

	if report.Degraded {
		a.logger.Warn("no recipe passed the user's filters, planning with the whole catalog",
			zap.String("user_id", userID),
			zap.String("style", string(snap.Preferences.Style)),
			zap.Int("catalog_size", report.CatalogSize),
		)
	}

	cycleID, err := a.planRepo.Replace(ctx, userID, cycle)
	if err != nil {
		return nil, fmt.Errorf("failed to store plan cycle: %w", err)
	}

	metric := metrics.MapReport(userID, string(snap.Preferences.Style), report, cycle.MealCount(), latency)
	if err := a.metricsStore.Record(ctx, metric); err != nil {
		a.logger.Warn("failed to record generation metric", zap.String("user_id", userID), zap.Error(err))
	}

	a.export(cycle)

	a.logger.Info("plan cycle generated",
		zap.String("user_id", userID),
		zap.String("cycle_id", cycleID),
		zap.String("start_date", cycle.StartDate.Format(time.DateOnly)),
		zap.Int("daily_calories", cycle.Targets.Calories),
		zap.Float64("tdee", report.TDEE),
		zap.Int("eligible_recipes", report.EligibleSize),
		zap.Int("meals", cycle.MealCount()),
		zap.Duration("latency", latency),
	)
	return cycle, nil
}

// export replaces the user's JSON export with the given cycle. Failures are
// logged; the database stays the source of truth.
func (a *App) export(cycle *planner.PlanCycle) {
	if a.planStore == nil {
		return
	}
	if err := a.planStore.RemoveStaleVersions(cycle.UserID); err != nil {
		a.logger.Warn("failed to remove stale plan exports", zap.String("user_id", cycle.UserID), zap.Error(err))
	}
	path, err := a.planStore.Save(cycle)
	if err != nil {
		a.logger.Warn("failed to export plan cycle", zap.String("user_id", cycle.UserID), zap.Error(err))
		return
	}
	a.logger.Debug("plan cycle exported", zap.String("path", path))
}

// ActivePlan returns the user's active cycle.
func (a *App) ActivePlan(ctx context.Context, userID string) (*planner.PlanCycle, error) {
	cycle, err := a.planRepo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, ErrNoActivePlan
	}
	return cycle, nil
}

// PlanWeek returns one week of the user's active cycle.
func (a *App) PlanWeek(ctx context.Context, userID string, index int) (*planner.PlanWeek, error) {
	week, err := a.planRepo.GetWeek(ctx, userID, index)
	if err != nil {
		return nil, err
	}
	if week == nil {
		return nil, ErrNoActivePlan
	}
	return week, nil
}

// ExportActivePlan writes the user's active cycle to the export directory and
// returns the file path.
func (a *App) ExportActivePlan(ctx context.Context, userID string) (string, error) {
	if a.planStore == nil {
		return "", errors.New("plan export directory is not configured")
	}
	cycle, err := a.ActivePlan(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := a.planStore.RemoveStaleVersions(userID); err != nil {
		return "", err
	}
	return a.planStore.Save(cycle)
}

// Health collects process health and the size of the data on disk.
func (a *App) Health() metrics.SysHealth {
	return metrics.GetSysHealth(filepath.Dir(a.cfg.DatabasePath), a.cfg.PlanExportDir)
}

// DailyUsage summarizes plan generations over the last days.
func (a *App) DailyUsage(ctx context.Context, days int) ([]metrics.DailyUsage, error) {
	return a.metricsStore.GetDailyUsage(ctx, days)
}

// CleanupMetrics removes generation metrics older than the given number of days.
func (a *App) CleanupMetrics(ctx context.Context, olderThanDays int) (int64, error) {
	removed, err := a.metricsStore.Cleanup(ctx, olderThanDays)
	if err != nil {
		return 0, err
	}
	a.logger.Info("metrics cleaned up", zap.Int64("removed", removed), zap.Int("older_than_days", olderThanDays))
	return removed, nil
}
