package normalize

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/leaguelens/leaguelens/internal/models"
)

func samplePayload() *models.RawLeaguePayload {
	return &models.RawLeaguePayload{
		LeagueName: strp("The Gridiron Collective"),
		LeagueID:   "1237219",
		Teams: []models.RawTeam{
			{TeamID: intp(1), Name: strp("Coach Dad"), Wins: intp(8), PointsFor: fltp(1204.5)},
			{TeamID: intp(2), Name: strp("UGF Pandas"), Wins: intp(10), PointsFor: fltp(1333.2)},
			{TeamID: intp(3), Name: strp("Beyond Cursed"), Wins: intp(8), PointsFor: fltp(1100.0)},
		},
		Rosters: map[string][]models.RawPlayer{
			"Coach Dad": {
				{
					Name:       strp("The Quarterback"),
					PlayerID:   intp(12),
					Position:   strp("QB"),
					LineupSlot: strp("QB"),
					Stats: map[string]models.WeeklyStatLine{
						"1": line(24.5, 20.1, map[string]float64{"passingYards": 305}),
					},
				},
			},
			"UGF Pandas": {},
		},
	}
}

func TestNormalizeMissingRostersIsShapeError(t *testing.T) {
	payload := samplePayload()
	payload.Rosters = nil

	snapshot, err := Normalize(payload, DefaultOptions())

	if snapshot != nil {
		t.Error("no partial snapshot may be returned on abort")
	}
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("err = %v, want *ShapeError", err)
	}
}

func TestNormalizeNilPayloadIsShapeError(t *testing.T) {
	var shapeErr *ShapeError
	if _, err := Normalize(nil, DefaultOptions()); !errors.As(err, &shapeErr) {
		t.Fatalf("err = %v, want *ShapeError", err)
	}
}

func TestNormalizeBuildsCompleteSnapshot(t *testing.T) {
	snapshot, err := Normalize(samplePayload(), DefaultOptions())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if snapshot.LeagueName != "The Gridiron Collective" || snapshot.LeagueID != "1237219" {
		t.Errorf("league identity wrong: %s / %s", snapshot.LeagueName, snapshot.LeagueID)
	}
	if len(snapshot.Teams) != 3 {
		t.Fatalf("teams = %d, want 3", len(snapshot.Teams))
	}

	// Every rostered player carries the full canonical week range.
	for team, roster := range snapshot.Rosters {
		for _, p := range roster {
			if len(p.Stats) != 17 {
				t.Errorf("%s / %s has %d weeks, want 17", team, p.Name, len(p.Stats))
			}
		}
	}
}

func TestNormalizeSynthesizedStandings(t *testing.T) {
	// No standings container: teams are ranked by record, ties broken
	// by points-for, ranks assigned 1..N.
	snapshot, diag, err := NormalizeWithDiagnostics(samplePayload(), DefaultOptions())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if diag.Defaulted("standings") == 0 {
		t.Error("standings default was not recorded")
	}

	wantOrder := []string{"UGF Pandas", "Coach Dad", "Beyond Cursed"}
	for i, name := range wantOrder {
		if snapshot.Standings[i].Name != name {
			t.Errorf("standings[%d] = %s, want %s", i, snapshot.Standings[i].Name, name)
		}
		if snapshot.Standings[i].Standing != i+1 {
			t.Errorf("standings[%d].Standing = %d, want %d", i, snapshot.Standings[i].Standing, i+1)
		}
	}
}

func TestNormalizeProvidedStandingsKeepSourceOrder(t *testing.T) {
	payload := samplePayload()
	payload.Standings = []models.RawTeam{
		{TeamID: intp(3), Name: strp("Beyond Cursed")},
		{TeamID: intp(1), Name: strp("Coach Dad")},
	}

	snapshot, err := Normalize(payload, DefaultOptions())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if snapshot.Standings[0].Name != "Beyond Cursed" || snapshot.Standings[0].Standing != 1 {
		t.Errorf("source standings order not preserved: %+v", snapshot.Standings[0])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first, err := Normalize(samplePayload(), DefaultOptions())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	second, err := Normalize(samplePayload(), DefaultOptions())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Error("normalizing the same payload twice produced different snapshots")
	}
}

func TestNormalizeRosterForUnknownTeamTolerated(t *testing.T) {
	payload := samplePayload()
	payload.Rosters["Ghost Team"] = []models.RawPlayer{rawPlayer("Phantom", "BE")}

	snapshot, err := Normalize(payload, DefaultOptions())
	if err != nil {
		t.Fatalf("unknown roster team must not abort, got %v", err)
	}
	if len(snapshot.Rosters["Ghost Team"]) != 1 {
		t.Error("unknown team roster was dropped")
	}
}
