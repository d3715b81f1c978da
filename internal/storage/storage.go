package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"diet-planner/internal/planner"
)

// PlanStore keeps JSON exports of plan cycles on disk, one file per user and
// cycle start date.
type PlanStore struct {
	basePath string
}

// NewPlanStore creates a new PlanStore and ensures the base directory exists.
func NewPlanStore(basePath string) (*PlanStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &PlanStore{basePath: basePath}, nil
}

// sanitize makes a user ID safe for filenames. Escaping keeps distinct IDs on
// distinct names; only letters, digits and "-_.~" pass through unchanged.
func sanitize(s string) string {
	return url.QueryEscape(s)
}

// Path returns the file an export of the given user and start date lives in.
func (s *PlanStore) Path(userID string, start time.Time) string {
	filename := fmt.Sprintf("%s_%s.json", sanitize(userID), start.Format(time.DateOnly))
	return filepath.Join(s.basePath, filename)
}

// Save writes the cycle to its export file and returns the path.
func (s *PlanStore) Save(cycle *planner.PlanCycle) (string, error) {
	if cycle == nil || cycle.UserID == "" {
		return "", errors.New("cannot export a cycle without a user")
	}

	data, err := json.MarshalIndent(cycle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan cycle: %w", err)
	}

	filePath := s.Path(cycle.UserID, cycle.StartDate)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write plan file: %w", err)
	}
	return filePath, nil
}

// Load reads the export of a user's cycle starting on the given date.
func (s *PlanStore) Load(userID string, start time.Time) (*planner.PlanCycle, error) {
	data, err := os.ReadFile(s.Path(userID, start))
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var cycle planner.PlanCycle
	if err := json.Unmarshal(data, &cycle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan cycle: %w", err)
	}
	return &cycle, nil
}

// Exists checks if an export for the user and start date exists.
func (s *PlanStore) Exists(userID string, start time.Time) bool {
	_, err := os.Stat(s.Path(userID, start))
	return !os.IsNotExist(err)
}

// RemoveStaleVersions removes every export of the user. It is called before
// writing a new one so only the active cycle stays on disk. Exports of other
// users are never touched, even when their ID starts with this one.
func (s *PlanStore) RemoveStaleVersions(userID string) error {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return fmt.Errorf("failed to list plan exports: %w", err)
	}

	prefix := sanitize(userID) + "_"
	for _, entry := range entries {
		if entry.IsDir() || !isExportOf(entry.Name(), prefix) {
			continue
		}
		path := filepath.Join(s.basePath, entry.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove stale file %s: %w", path, err)
		}
	}
	return nil
}

// isExportOf reports whether name is exactly "<prefix><YYYY-MM-DD>.json".
func isExportOf(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return false
	}
	date, ok := strings.CutSuffix(rest, ".json")
	if !ok {
		return false
	}
	_, err := time.Parse(time.DateOnly, date)
	return err == nil
}
