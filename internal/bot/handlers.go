package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/leaguelens/leaguelens/internal/service"
)

type Handler struct {
	fantasyService *service.FantasyService
}

func NewHandler(fantasyService *service.FantasyService) *Handler {
	return &Handler{fantasyService: fantasyService}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to LeagueLens! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/standings - Get league standings\n/team <team> - View team's roster and points\n/whohas <player> - Check which team has a player\n/player <player> - Player scoring profile\n/refresh - Pull the latest league data"
	case "standings":
		h.handleStandings(ctx, &msg)
	case "whohas":
		h.handleWhoHas(ctx, &msg, args)
	case "player":
		h.handlePlayer(ctx, &msg, args)
	case "refresh":
		h.handleRefresh(ctx, &msg)
	case "team":
		h.handleTeam(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleStandings(ctx context.Context, msg *tgbotapi.MessageConfig) {
	standings, err := h.fantasyService.GetStandings(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching standings: %v", err)
	} else {
		msg.Text = standings
	}
}

func (h *Handler) handleWhoHas(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /whohas <player name>"
		return
	}
	result, err := h.fantasyService.WhoHas(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error checking who has player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handlePlayer(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /player <player name>"
		return
	}
	result, err := h.fantasyService.PlayerCard(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building player profile: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleRefresh(ctx context.Context, msg *tgbotapi.MessageConfig) {
	snapshot, err := h.fantasyService.Refresh(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error refreshing league data: %v", err)
	} else {
		msg.Text = fmt.Sprintf("Refreshed *%s*: %d teams loaded.", snapshot.LeagueName, len(snapshot.Teams))
	}
}

func (h *Handler) handleTeam(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name>"
		return
	}
	result, err := h.fantasyService.GetTeamRoster(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team roster: %v", err)
	} else {
		msg.Text = result
	}
}
