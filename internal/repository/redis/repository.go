package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/leaguelens/leaguelens/internal/models"
)

const keyPrefix = "leaguelens:snapshot:"

// Repository persists league snapshots in Redis under a well-known key
// per league. Snapshots are written whole and read whole; consumers
// treat what they read as immutable.
type Repository struct {
	client   *goredis.Client
	leagueID string
}

func NewRepository(redisURL, leagueID string) (*Repository, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := goredis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Repository{client: client, leagueID: leagueID}, nil
}

func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) key() string {
	return keyPrefix + r.leagueID
}

func (r *Repository) SaveSnapshot(ctx context.Context, snapshot *models.LeagueSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("storing snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the stored snapshot, or nil when the key does not
// exist yet.
func (r *Repository) GetSnapshot(ctx context.Context) (*models.LeagueSnapshot, error) {
	data, err := r.client.Get(ctx, r.key()).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	var snapshot models.LeagueSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshalling snapshot: %w", err)
	}
	return &snapshot, nil
}
