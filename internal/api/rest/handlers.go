package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/leaguelens/leaguelens/internal/models"
	"github.com/leaguelens/leaguelens/internal/normalize"
	"github.com/leaguelens/leaguelens/internal/service"
	"github.com/leaguelens/leaguelens/internal/statmap"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	fantasyService *service.FantasyService
}

// NewHandler creates a new handler
func NewHandler(fantasyService *service.FantasyService) *Handler {
	return &Handler{fantasyService: fantasyService}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "leaguelens",
	})
}

// Connect accepts a raw league export, normalizes it, and stores the
// resulting snapshot. A structurally unusable payload gets a 422.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	var payload models.RawLeaguePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// A field of the wrong aggregate type (rosters as an array,
		// say) is a shape problem, not a transport problem.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			respondError(w, http.StatusUnprocessableEntity, "League payload is structurally unusable", err)
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	snapshot, err := h.fantasyService.Connect(r.Context(), &payload)
	if err != nil {
		var shapeErr *normalize.ShapeError
		if errors.As(err, &shapeErr) {
			respondError(w, http.StatusUnprocessableEntity, "League payload is structurally unusable", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to connect league", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"league_name": snapshot.LeagueName,
		"league_id":   snapshot.LeagueID,
		"teams":       len(snapshot.Teams),
	})
}

// Refresh re-fetches the league from upstream and replaces the snapshot.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.fantasyService.Refresh(r.Context())
	if err != nil {
		var shapeErr *normalize.ShapeError
		if errors.As(err, &shapeErr) {
			respondError(w, http.StatusUnprocessableEntity, "Upstream payload is structurally unusable", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to refresh league", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"league_name": snapshot.LeagueName,
		"teams":       len(snapshot.Teams),
	})
}

// GetLeague returns the full stored snapshot.
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.fantasyService.Snapshot(r.Context())
	if err != nil {
		respondError(w, http.StatusNotFound, "No league connected", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// GetStandings returns the ordered standings from the snapshot.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.fantasyService.Snapshot(r.Context())
	if err != nil {
		respondError(w, http.StatusNotFound, "No league connected", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot.Standings)
}

// GetTeamRoster returns a team's normalized roster, matched fuzzily by
// team name.
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamName := vars["teamName"]

	team, roster, err := h.fantasyService.FindTeam(r.Context(), teamName)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":   team,
		"roster": roster,
	})
}

// SearchPlayers filters rostered players by name, position, and pro
// team query parameters.
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 25
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	players, err := h.fantasyService.SearchPlayers(r.Context(),
		query.Get("name"), query.Get("position"), query.Get("proTeam"), limit)
	if err != nil {
		respondError(w, http.StatusNotFound, "No league connected", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayer returns a rostered player with derived scoring metrics.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	playerID, err := strconv.Atoi(vars["playerID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	player, teamName, metrics, err := h.fantasyService.PlayerByID(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	response := map[string]interface{}{
		"player":  player,
		"team":    teamName,
		"metrics": metrics,
	}
	if player.SeasonTotals != nil {
		response["season_breakdown"] = statmap.FilterBreakdown(player.SeasonTotals.Breakdown, player.Position)
	}

	respondJSON(w, http.StatusOK, response)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
