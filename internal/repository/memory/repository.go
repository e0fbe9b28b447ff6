package memory

import (
	"context"
	"sync"

	"github.com/leaguelens/leaguelens/internal/models"
)

// Repository holds the latest league snapshot in process memory. It
// backs tests and cache-less runs; production uses the redis store.
type Repository struct {
	snapshot *models.LeagueSnapshot
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveSnapshot(_ context.Context, snapshot *models.LeagueSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
	return nil
}

// GetSnapshot returns the stored snapshot, or nil when no connect pass
// has run yet.
func (r *Repository) GetSnapshot(_ context.Context) (*models.LeagueSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, nil
}
