package jobs

import (
	"context"
	"log/slog"
	"time"

	"eventora/internal/pkg/config"
	"eventora/internal/usecase/commands"
)

const sweepTimeout = 30 * time.Second

// Sweeper periodically retires stale rows: past free calendar dates become
// blocked and promotions past their end date are switched off.
type Sweeper struct {
	calendar   commands.CalendarCommands
	promotions commands.PromotionCommands
	interval   time.Duration
	logger     *slog.Logger
	stop       chan struct{}
	done       chan struct{}
}

func NewSweeper(calendar commands.CalendarCommands, promotions commands.PromotionCommands, cfg config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		calendar:   calendar,
		promotions: promotions,
		interval:   cfg.Sweeper.Interval,
		logger:     logger,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)

	// First pass at startup so a long interval doesn't delay cleanup after
	// a restart.
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	blocked, err := s.calendar.SweepPastDates(ctx)
	if err != nil {
		s.logger.Error("calendar sweep failed", "error", err)
	} else if blocked > 0 {
		s.logger.Info("blocked past calendar dates", "count", blocked)
	}

	deactivated, err := s.promotions.DeactivateExpired(ctx)
	if err != nil {
		s.logger.Error("promotion sweep failed", "error", err)
	} else if deactivated > 0 {
		s.logger.Info("deactivated expired promotions", "count", deactivated)
	}
}
