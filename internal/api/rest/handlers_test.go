package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leaguelens/leaguelens/internal/models"
	"github.com/leaguelens/leaguelens/internal/normalize"
	"github.com/leaguelens/leaguelens/internal/repository/memory"
	"github.com/leaguelens/leaguelens/internal/service"
)

type stubFetcher struct{}

func (stubFetcher) FetchLeaguePayload(context.Context) (*models.RawLeaguePayload, error) {
	return nil, nil
}

func newTestRouter() http.Handler {
	svc := service.NewFantasyService(stubFetcher{}, memory.NewRepository(), normalize.DefaultOptions())
	return NewServer("0", svc).Router()
}

func connectBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	payload := map[string]interface{}{
		"leagueName": "Test League",
		"leagueId":   "42",
		"teams": []map[string]interface{}{
			{"team_id": 1, "team_name": "UGF Pandas", "wins": 9},
			{"team_id": 2, "team_name": "Coach Dad", "wins": 4},
		},
		"rosters": map[string]interface{}{
			"UGF Pandas": []map[string]interface{}{
				{"name": "Justin Jefferson", "playerId": 4262921, "position": "WR", "lineupSlot": "WR", "total_points": 210.4},
			},
			"Coach Dad": []map[string]interface{}{},
		},
	}
	body := new(bytes.Buffer)
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return body
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestConnectAndGetLeague(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/connect", connectBody(t)))
	if rec.Code != http.StatusOK {
		t.Fatalf("connect status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/league", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("league status = %d", rec.Code)
	}

	var snapshot models.LeagueSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot.LeagueName != "Test League" || len(snapshot.Teams) != 2 {
		t.Errorf("snapshot = %s with %d teams", snapshot.LeagueName, len(snapshot.Teams))
	}
}

func TestConnectMissingRostersIsUnprocessable(t *testing.T) {
	router := newTestRouter()

	body := bytes.NewBufferString(`{"leagueId": "42", "teams": []}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/connect", body))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestConnectRostersNotAMappingIsUnprocessable(t *testing.T) {
	router := newTestRouter()

	body := bytes.NewBufferString(`{"leagueId": "42", "rosters": []}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/connect", body))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestConnectMalformedJSONIsBadRequest(t *testing.T) {
	router := newTestRouter()

	body := bytes.NewBufferString(`{"leagueId": `)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/connect", body))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetLeagueBeforeConnectIsNotFound(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/league", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetTeamRoster(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/connect", connectBody(t)))
	if rec.Code != http.StatusOK {
		t.Fatalf("connect status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/teams/UGF%20Pandas/roster", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("roster status = %d, body %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Team   models.Team     `json:"team"`
		Roster []models.Player `json:"roster"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if response.Team.Name != "UGF Pandas" || len(response.Roster) != 1 {
		t.Errorf("team = %s with %d players", response.Team.Name, len(response.Roster))
	}
}

func TestGetPlayerWithMetrics(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/connect", connectBody(t)))
	if rec.Code != http.StatusOK {
		t.Fatalf("connect status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/players/4262921", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("player status = %d, body %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Player  models.Player     `json:"player"`
		Team    string            `json:"team"`
		Metrics normalize.Metrics `json:"metrics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if response.Player.Name != "Justin Jefferson" || response.Team != "UGF Pandas" {
		t.Errorf("player = %s on %s", response.Player.Name, response.Team)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/players/999", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing player status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
