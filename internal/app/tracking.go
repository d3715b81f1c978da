package app

import (
	"context"

	"go.uber.org/zap"

	"diet-planner/internal/tracking"
)

// SaveDayCheck records how the user's plan day on date went.
func (a *App) SaveDayCheck(ctx context.Context, userID, date string, check tracking.DayCheck) (*tracking.DayCheck, error) {
	check.Date = date
	if err := a.trackingRepo.SaveDayCheck(ctx, userID, &check); err != nil {
		return nil, err
	}
	a.logger.Info("day checked",
		zap.String("user_id", userID),
		zap.String("date", check.Date),
		zap.Bool("completed", check.IsCompleted),
	)
	return &check, nil
}

// LogFood adds an entry to the user's food log for date and returns the day
// with its updated totals.
func (a *App) LogFood(ctx context.Context, userID, date string, entry tracking.FoodLogEntry) (*tracking.FoodLogDay, error) {
	if err := a.trackingRepo.LogFood(ctx, userID, date, &entry); err != nil {
		return nil, err
	}
	day, err := a.trackingRepo.GetFoodLogDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	a.logger.Info("food logged",
		zap.String("user_id", userID),
		zap.String("date", day.Date),
		zap.String("meal_type", string(entry.MealType)),
		zap.String("source", string(entry.Source)),
		zap.Float64("day_calories", day.Totals.Calories),
	)
	return day, nil
}

// DayProgress compares what the user logged and checked off on date with the
// active plan's day, when there is one.
func (a *App) DayProgress(ctx context.Context, userID, date string) (*tracking.Progress, error) {
	date, err := tracking.ParseDate(date)
	if err != nil {
		return nil, err
	}
	check, err := a.trackingRepo.GetDayCheck(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	log, err := a.trackingRepo.GetFoodLogDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	cycle, err := a.planRepo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := tracking.NewProgress(date, check, log, cycle)
	return &progress, nil
}
