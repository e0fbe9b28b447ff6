package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/leaguelens/leaguelens/internal/models"
	"github.com/leaguelens/leaguelens/internal/normalize"
	"github.com/leaguelens/leaguelens/internal/repository/memory"
)

type stubFetcher struct {
	payload *models.RawLeaguePayload
	err     error
}

func (f *stubFetcher) FetchLeaguePayload(context.Context) (*models.RawLeaguePayload, error) {
	return f.payload, f.err
}

func strp(s string) *string { return &s }
func intp(i int) *int { return &i }
func fltp(f float64) *float64 { return &f }

func testPayload() *models.RawLeaguePayload {
	return &models.RawLeaguePayload{
		LeagueName: strp("Test League"),
		LeagueID:   "99",
		Teams: []models.RawTeam{
			{TeamID: intp(1), Name: strp("UGF Pandas"), Wins: intp(9), PointsFor: fltp(1200)},
			{TeamID: intp(2), Name: strp("Coach Dad"), Wins: intp(5), PointsFor: fltp(1000)},
		},
		Rosters: map[string][]models.RawPlayer{
			"UGF Pandas": {
				{
					Name:        strp("Justin Jefferson"),
					PlayerID:    intp(4262921),
					Position:    strp("WR"),
					LineupSlot:  strp("WR"),
					TotalPoints: fltp(210.4),
					AvgPoints:   fltp(15.0),
					Stats: map[string]models.WeeklyStatLine{
						"1": {Points: 15, ProjectedPoints: 14, Breakdown: map[string]float64{"receivingYards": 110}, ProjectedBreakdown: map[string]float64{}},
						"2": {Points: 15, ProjectedPoints: 16, Breakdown: map[string]float64{"receivingYards": 95}, ProjectedBreakdown: map[string]float64{}},
					},
				},
			},
			"Coach Dad": {},
		},
	}
}

func newTestService(t *testing.T) (*FantasyService, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	svc := NewFantasyService(&stubFetcher{payload: testPayload()}, repo, normalize.DefaultOptions())
	return svc, repo
}

func TestRefreshStoresSnapshot(t *testing.T) {
	svc, repo := newTestService(t)

	snapshot, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if snapshot.LeagueName != "Test League" {
		t.Errorf("league name = %s", snapshot.LeagueName)
	}

	stored, _ := repo.GetSnapshot(context.Background())
	if stored == nil || stored.LeagueID != "99" {
		t.Error("refresh did not store the snapshot")
	}
}

func TestConnectShapeErrorPropagates(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Connect(context.Background(), &models.RawLeaguePayload{LeagueID: "99"})
	var shapeErr *normalize.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("err = %v, want *ShapeError", err)
	}

	// No partial snapshot may be stored.
	stored, _ := repo.GetSnapshot(context.Background())
	if stored != nil {
		t.Error("shape error must not store a snapshot")
	}
}

func TestQueriesRequireSnapshot(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.GetStandings(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("GetStandings err = %v, want ErrNoSnapshot", err)
	}
}

func TestGetStandings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	standings, err := svc.GetStandings(ctx)
	if err != nil {
		t.Fatalf("GetStandings: %v", err)
	}
	// Pandas lead on wins and must be listed first.
	if !strings.Contains(standings, "1. *UGF Pandas*") {
		t.Errorf("standings missing leader:\n%s", standings)
	}
}

func TestWhoHasFuzzyMatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	result, err := svc.WhoHas(ctx, "justin jeferson") // sloppy spelling
	if err != nil {
		t.Fatalf("WhoHas: %v", err)
	}
	if !strings.Contains(result, "Justin Jefferson") || !strings.Contains(result, "UGF Pandas") {
		t.Errorf("WhoHas result wrong:\n%s", result)
	}
}

func TestPlayerCardIncludesMetrics(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	card, err := svc.PlayerCard(ctx, "Justin Jefferson")
	if err != nil {
		t.Fatalf("PlayerCard: %v", err)
	}
	// Two identical 15-point weeks: perfectly consistent.
	if !strings.Contains(card, "Consistency: 100/100") {
		t.Errorf("card missing consistency:\n%s", card)
	}
	if !strings.Contains(card, "Floor / Ceiling: 15.00 / 15.00") {
		t.Errorf("card missing floor/ceiling:\n%s", card)
	}
}

func TestSearchPlayers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	results, err := svc.SearchPlayers(ctx, "", "WR", "", 10)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Justin Jefferson" {
		t.Errorf("search results = %+v", results)
	}

	results, err = svc.SearchPlayers(ctx, "", "QB", "", 10)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("QB search should be empty, got %d", len(results))
	}
}
