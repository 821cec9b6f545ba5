// Package scheduler fires the log generation engine once per day via an
// in-process cron. Duplicate or overlapping triggers are harmless: the
// generator is idempotent per date.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/routinely/backend/internal/infrastructure/journal"
	"github.com/routinely/backend/usecase/generator"
)

const runTimeout = 5 * time.Minute

// Scheduler owns the cron loop around the generation engine.
type Scheduler struct {
	generator *generator.Service
	journal   *journal.Store
	cron      *cron.Cron
	spec      string
	logger    *zap.Logger
}

func New(gen *generator.Service, jrnl *journal.Store, spec string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if spec == "" {
		spec = "0 5 * * *"
	}
	return &Scheduler{
		generator: gen,
		journal:   jrnl,
		cron:      cron.New(),
		spec:      spec,
		logger:    logger,
	}
}

// Start registers the daily job and launches the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce("cron")
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("scheduler stopped")
}

// RunOnce generates logs for the current date and journals the outcome.
// It is also the entry point for operator-initiated catch-up runs.
func (s *Scheduler) RunOnce(trigger string) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	date := s.generator.Calendar().Today()
	started := time.Now()

	result, err := s.generator.GenerateAll(ctx, date)

	entry := journal.Entry{
		Date:    date.Format("2006-01-02"),
		Trigger: trigger,
		Elapsed: time.Since(started).String(),
	}
	if err != nil {
		entry.Error = err.Error()
		s.logger.Error("scheduled generation failed", zap.Error(err))
	} else {
		entry.Created = result.Created
		entry.Frequencies = result.Frequencies
	}

	if s.journal != nil {
		if jerr := s.journal.Append(entry); jerr != nil {
			s.logger.Warn("failed to journal generation run", zap.Error(jerr))
		}
	}
}
