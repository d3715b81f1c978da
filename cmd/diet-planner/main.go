package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"diet-planner/internal/app"
	"diet-planner/internal/config"
	"diet-planner/internal/database"
	"diet-planner/internal/ghost"
	"diet-planner/internal/planner"
	"diet-planner/internal/profile"
	"diet-planner/internal/storage"
	"diet-planner/internal/tracking"
)

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	planStore, err := storage.NewPlanStore(cfg.PlanExportDir)
	if err != nil {
		logger.Fatal("failed to initialize plan export store", zap.Error(err))
	}

	var ghostClient ghost.Client
	if cfg.GhostConfigured() {
		ghostClient = ghost.NewClient(cfg)
	}

	application := app.NewApp(cfg, logger, db, ghostClient, planStore)

	switch os.Args[1] {
	case "seed":
		n, err := application.SeedCatalog(ctx)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		fmt.Printf("Seeded %d recipes.\n", n)
	case "ingest":
		result, err := application.IngestRecipes(ctx)
		if err != nil {
			log.Fatalf("Ingestion failed: %v", err)
		}
		fmt.Printf("Fetched %d posts: %d saved, %d skipped, %d removed.\n",
			result.Fetched, result.Saved, result.Skipped, result.Removed)
	case "clip":
		if len(os.Args) < 3 {
			log.Fatal("Usage: diet-planner clip <url>")
		}
		rec, err := application.ClipRecipe(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Clipping failed: %v", err)
		}
		fmt.Printf("Added %q (%s) with %d ingredients.\n", rec.Name, rec.ID, len(rec.Ingredients))
	case "onboard":
		userID, snap := parseOnboarding(os.Args[2:])
		if err := application.SaveProfile(ctx, userID, snap); err != nil {
			log.Fatalf("Onboarding failed: %v", err)
		}
		fmt.Printf("Profile saved for %s.\n", userID)
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		userID := generateCmd.String("user", "", "User ID")
		startDate := generateCmd.String("start", "", "Cycle start date (YYYY-MM-DD, default today)")
		generateCmd.Parse(os.Args[2:])
		requireUser(*userID)

		start, err := planner.ParseStartDate(*startDate, time.Now())
		if err != nil {
			log.Fatalf("Invalid start date: %v", err)
		}
		cycle, err := application.GeneratePlanForUser(ctx, *userID, start)
		if err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
		fmt.Printf("Generated cycle %s: %s to %s, %d kcal/day (P %dg, C %dg, F %dg).\n",
			cycle.ID,
			cycle.StartDate.Format(time.DateOnly),
			cycle.EndDate.Format(time.DateOnly),
			cycle.Targets.Calories, cycle.Targets.Protein, cycle.Targets.Carbs, cycle.Targets.Fat)
	case "show":
		showCmd := flag.NewFlagSet("show", flag.ExitOnError)
		userID := showCmd.String("user", "", "User ID")
		weekIndex := showCmd.Int("week", 1, "Week of the active cycle (1-4)")
		showCmd.Parse(os.Args[2:])
		requireUser(*userID)

		week, err := application.PlanWeek(ctx, *userID, *weekIndex)
		if err != nil {
			log.Fatalf("Failed to load week: %v", err)
		}
		printWeek(week)
	case "export":
		exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
		userID := exportCmd.String("user", "", "User ID")
		exportCmd.Parse(os.Args[2:])
		requireUser(*userID)

		path, err := application.ExportActivePlan(ctx, *userID)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported active plan to %s\n", path)
	case "check-day":
		checkCmd := flag.NewFlagSet("check-day", flag.ExitOnError)
		userID := checkCmd.String("user", "", "User ID")
		date := checkCmd.String("date", time.Now().Format(time.DateOnly), "Day to check (YYYY-MM-DD)")
		done := checkCmd.Bool("done", false, "Mark the whole day as completed")
		meals := checkCmd.String("meals", "", "Comma separated meal types eaten as planned (e.g. BREAKFAST,LUNCH)")
		notes := checkCmd.String("notes", "", "Free-text notes")
		checkCmd.Parse(os.Args[2:])
		requireUser(*userID)

		completed := map[planner.MealType]bool{}
		for _, meal := range profile.SplitList(*meals) {
			completed[planner.MealType(strings.ToUpper(meal))] = true
		}
		check, err := application.SaveDayCheck(ctx, *userID, *date, tracking.DayCheck{
			IsCompleted:    *done,
			MealsCompleted: completed,
			Notes:          *notes,
		})
		if err != nil {
			log.Fatalf("Check-in failed: %v", err)
		}
		fmt.Printf("Checked %s: %d meals done, completed=%t.\n", check.Date, len(check.MealsCompleted), check.IsCompleted)
	case "log-food":
		logCmd := flag.NewFlagSet("log-food", flag.ExitOnError)
		userID := logCmd.String("user", "", "User ID")
		date := logCmd.String("date", time.Now().Format(time.DateOnly), "Day eaten (YYYY-MM-DD)")
		meal := logCmd.String("meal", string(planner.MealLunch), "BREAKFAST, LUNCH, DINNER or SNACK")
		name := logCmd.String("name", "", "What was eaten")
		serving := logCmd.String("serving", "", "Serving description (e.g. 1 bowl)")
		kcal := logCmd.Float64("kcal", 0, "Calories")
		protein := logCmd.Float64("protein", 0, "Protein in grams")
		carbs := logCmd.Float64("carbs", 0, "Carbs in grams")
		fat := logCmd.Float64("fat", 0, "Fat in grams")
		logCmd.Parse(os.Args[2:])
		requireUser(*userID)

		day, err := application.LogFood(ctx, *userID, *date, tracking.FoodLogEntry{
			MealType:    planner.MealType(strings.ToUpper(*meal)),
			Source:      tracking.SourceManual,
			Name:        *name,
			ServingText: *serving,
			Totals:      tracking.Totals{Calories: *kcal, Protein: *protein, Carbs: *carbs, Fat: *fat},
		})
		if err != nil {
			log.Fatalf("Food log failed: %v", err)
		}
		fmt.Printf("Logged. %s total: %.0f kcal (P %.0fg, C %.0fg, F %.0fg) over %d entries.\n",
			day.Date, day.Totals.Calories, day.Totals.Protein, day.Totals.Carbs, day.Totals.Fat, len(day.Entries))
	case "progress":
		progressCmd := flag.NewFlagSet("progress", flag.ExitOnError)
		userID := progressCmd.String("user", "", "User ID")
		date := progressCmd.String("date", time.Now().Format(time.DateOnly), "Day (YYYY-MM-DD)")
		progressCmd.Parse(os.Args[2:])
		requireUser(*userID)

		progress, err := application.DayProgress(ctx, *userID, *date)
		if err != nil {
			log.Fatalf("Failed to load progress: %v", err)
		}
		printProgress(progress)
	case "metrics":
		metricsCmd := flag.NewFlagSet("metrics", flag.ExitOnError)
		days := metricsCmd.Int("days", 7, "Show the last N days")
		metricsCmd.Parse(os.Args[2:])

		usage, err := application.DailyUsage(ctx, *days)
		if err != nil {
			log.Fatalf("Failed to load metrics: %v", err)
		}
		fmt.Printf("%-12s %12s %9s %7s %12s\n", "DATE", "GENERATIONS", "DEGRADED", "MEALS", "AVG LATENCY")
		for _, u := range usage {
			fmt.Printf("%-12s %12d %9d %7d %10.0fms\n", u.Date, u.Generations, u.Degraded, u.Meals, u.AvgLatencyMS)
		}
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := application.CleanupMetrics(ctx, *days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func requireUser(userID string) {
	if userID == "" {
		log.Fatal("-user is required")
	}
}

func parseOnboarding(args []string) (string, profile.Snapshot) {
	cmd := flag.NewFlagSet("onboard", flag.ExitOnError)
	userID := cmd.String("user", "", "User ID")
	age := cmd.Int("age", 0, "Age in years (12-90)")
	height := cmd.Float64("height", 0, "Height in cm (120-230)")
	weight := cmd.Float64("weight", 0, "Weight in kg (35-250)")
	sex := cmd.String("sex", "", "Sex (free text, e.g. female, male)")
	country := cmd.String("country", "", "Country")
	goal := cmd.String("goal", string(profile.GoalMaintain), "LOSE_FAT, GAIN_MUSCLE, MAINTAIN or RECOMP")
	pace := cmd.String("pace", string(profile.PaceModerate), "AGGRESSIVE, MODERATE or GENTLE")
	activity := cmd.String("activity", string(profile.ActivityModerate), "LOW, MODERATE, HIGH or ATHLETE")
	meals := cmd.Int("meals", 3, "Meals per day (2-6)")
	style := cmd.String("style", string(profile.StyleNormal), "NORMAL, LOW_CARB, HIGH_PROTEIN, VEGETARIAN, VEGAN or KETO")
	snacks := cmd.Bool("snacks", false, "Include a snack slot when eating 4+ meals")
	repeat := cmd.Bool("repeat", false, "Eat the same recipe for every meal of a day")
	freeDay := cmd.Bool("free-day", false, "Keep a free day per week")
	dislikes := cmd.String("dislikes", "", "Comma separated disliked foods")
	allergies := cmd.String("allergies", "", "Comma separated allergies")
	intolerances := cmd.String("intolerances", "", "Comma separated intolerances")
	cultural := cmd.String("cultural", "", "Comma separated cultural restrictions")
	budget := cmd.String("budget", "", "Budget level (e.g. low)")
	cooking := cmd.String("cooking", "", "Cooking time level (e.g. quick)")
	cmd.Parse(args)
	requireUser(*userID)

	return *userID, profile.Snapshot{
		Profile: &profile.Profile{
			Age:      *age,
			HeightCm: *height,
			WeightKg: *weight,
			Sex:      *sex,
			Country:  *country,
		},
		Goal: &profile.Goal{
			GoalType:      profile.GoalType(strings.ToUpper(*goal)),
			Pace:          profile.Pace(strings.ToUpper(*pace)),
			ActivityLevel: profile.ActivityLevel(strings.ToUpper(*activity)),
		},
		Preferences: &profile.Preferences{
			MealsPerDay:          *meals,
			Style:                profile.DietStyle(strings.ToUpper(*style)),
			Snacks:               *snacks,
			RepeatMeals:          *repeat,
			FreeDay:              *freeDay,
			DislikedFoods:        profile.SplitList(*dislikes),
			Allergies:            profile.SplitList(*allergies),
			Intolerances:         profile.SplitList(*intolerances),
			CulturalRestrictions: profile.SplitList(*cultural),
			BudgetLevel:          *budget,
			CookingTimeLevel:     *cooking,
		},
	}
}

func printWeek(week *planner.PlanWeek) {
	fmt.Printf("\n=== WEEK %d ===\n", week.WeekIndex)
	for _, day := range week.Days {
		fmt.Printf("\n%s (day %d)\n", day.Date.Format("Mon 2006-01-02"), day.DayIndex)
		for _, meal := range day.Meals {
			fmt.Printf("  %-10s %-32s %4d kcal  P %3dg  C %3dg  F %3dg\n",
				meal.Type, meal.RecipeName,
				meal.Targets.Calories, meal.Targets.Protein, meal.Targets.Carbs, meal.Targets.Fat)
		}
	}

	fmt.Println("\n=== SHOPPING LIST ===")
	for _, item := range week.GroceryItems {
		fmt.Printf("- %s %s\n", item.Quantity, item.Name)
	}
}

func printProgress(p *tracking.Progress) {
	fmt.Printf("\n=== %s ===\n", p.Date)
	fmt.Printf("Eaten:     %6.0f kcal  P %4.0fg  C %4.0fg  F %4.0fg\n", p.Logged.Calories, p.Logged.Protein, p.Logged.Carbs, p.Logged.Fat)
	if p.Target == nil {
		fmt.Println("No plan for this day.")
		return
	}
	fmt.Printf("Target:    %6d kcal  P %4dg  C %4dg  F %4dg\n", p.Target.Calories, p.Target.Protein, p.Target.Carbs, p.Target.Fat)
	fmt.Printf("Remaining: %6.0f kcal  P %4.0fg  C %4.0fg  F %4.0fg\n", p.Remaining.Calories, p.Remaining.Protein, p.Remaining.Carbs, p.Remaining.Fat)
	fmt.Printf("Meals done: %d/%d\n", p.MealsDone, p.MealsPlanned)
	for _, meal := range p.Planned.Meals {
		mark := " "
		if p.Check != nil && p.Check.MealsCompleted[meal.Type] {
			mark = "x"
		}
		fmt.Printf("  [%s] %-10s %s\n", mark, meal.Type, meal.RecipeName)
	}
}

func printUsage() {
	fmt.Println("Usage: diet-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed               Load the built-in starter recipes into the catalog")
	fmt.Println("  ingest             Sync the catalog with recipes published on Ghost")
	fmt.Println("  clip <url>         Import a recipe from a web page")
	fmt.Println("  onboard            Save a user's profile, goal and preferences")
	fmt.Println("  generate           Generate a new 28-day plan for a user")
	fmt.Println("  show               Print one week of a user's active plan")
	fmt.Println("  export             Write a user's active plan to a JSON file")
	fmt.Println("  check-day          Record which planned meals of a day were eaten")
	fmt.Println("  log-food           Add what was eaten to a day's food log")
	fmt.Println("  progress           Compare a day's food log with the plan")
	fmt.Println("  metrics            Show plan generation statistics")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
