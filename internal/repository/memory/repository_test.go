package memory

import (
	"context"
	"testing"

	"github.com/leaguelens/leaguelens/internal/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	got, err := repo.GetSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if got != nil {
		t.Error("empty repository should return nil snapshot")
	}

	snapshot := &models.LeagueSnapshot{
		LeagueID:   "42",
		LeagueName: "Test League",
		Rosters:    map[string][]models.Player{},
	}
	if err := repo.SaveSnapshot(ctx, snapshot); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err = repo.GetSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if got == nil || got.LeagueID != "42" {
		t.Errorf("round trip lost the snapshot: %+v", got)
	}
}

func TestSaveReplacesWhole(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	repo.SaveSnapshot(ctx, &models.LeagueSnapshot{LeagueID: "1"})
	repo.SaveSnapshot(ctx, &models.LeagueSnapshot{LeagueID: "2"})

	got, _ := repo.GetSnapshot(ctx)
	if got.LeagueID != "2" {
		t.Errorf("latest save should win, got league %s", got.LeagueID)
	}
}
