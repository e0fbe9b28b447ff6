package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/leaguelens/leaguelens/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	sendMessage    func(string) error
}

// NewScheduler wires periodic snapshot refreshes. sendMessage may be
// nil when no chat surface is configured.
func NewScheduler(fantasyService *service.FantasyService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		fantasyService: fantasyService,
		sendMessage:    sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Full rebuild every morning 6:30 CDT
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(6, 30, 0))),
		gocron.NewTask(s.refreshSnapshot),
	)
	if err != nil {
		return fmt.Errorf("failed to create daily refresh job: %w", err)
	}

	// Game-day refreshes - Sunday 15:00 and 19:00 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(15, 0, 0), gocron.NewAtTime(19, 0, 0))),
		gocron.NewTask(s.refreshSnapshot),
	)
	if err != nil {
		return fmt.Errorf("failed to create Sunday refresh job: %w", err)
	}

	// Game-day refreshes - Monday and Thursday night 21:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday, time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(21, 30, 0))),
		gocron.NewTask(s.refreshSnapshot),
	)
	if err != nil {
		return fmt.Errorf("failed to create night refresh job: %w", err)
	}

	// Standings report - Wednesday 7:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, err := s.fantasyService.Refresh(ctx)
	if err != nil {
		slog.Error("Failed to refresh league snapshot", "error", err)
		return
	}
	slog.Info("Refreshed league snapshot", "league", snapshot.LeagueName, "teams", len(snapshot.Teams))
}

func (s *Scheduler) sendStandings() {
	if s.sendMessage == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	standings, err := s.fantasyService.GetStandings(ctx)
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	s.sendMessage(standings)
}
