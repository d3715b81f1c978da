package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	profiledb "diet-planner/internal/profile/db"
)

// Repository stores one snapshot per user.
type Repository struct {
	queries *profiledb.Queries
}

// NewRepository creates a new profile Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{queries: profiledb.New(d)}
}

// Save validates the snapshot and replaces whatever was stored for the user.
func (r *Repository) Save(ctx context.Context, userID string, s Snapshot) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.queries.UpsertSnapshot(ctx, profiledb.UpsertSnapshotParams{
		UserID:    userID,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to save snapshot for user %s: %w", userID, err)
	}
	return nil
}

// Get returns the stored snapshot of a user, or nil, nil when there is none.
func (r *Repository) Get(ctx context.Context, userID string) (*Snapshot, error) {
	row, err := r.queries.GetSnapshotByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot for user %s: %w", userID, err)
	}

	var s Snapshot
	if err := json.Unmarshal([]byte(row.Data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot for user %s: %w", userID, err)
	}
	return &s, nil
}
