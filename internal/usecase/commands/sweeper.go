package commands

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically completes confirmed reservations whose slot has ended.
type Sweeper struct {
	commands ReservationCommands
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(cmds ReservationCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		commands: cmds,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Reservation sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.RunOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) RunOnce(ctx context.Context) SweepResult {
	result, err := s.commands.ExpireDue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Reservation sweep failed", "error", err.Error(), "expired", result.Expired)
		}
		return result
	}
	if result.Expired > 0 || result.Skipped > 0 {
		s.logger.Info("Reservation sweep finished", "expired", result.Expired, "skipped", result.Skipped)
	} else {
		s.logger.Debug("Reservation sweep found nothing due")
	}
	return result
}
