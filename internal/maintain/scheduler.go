package maintain

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"recfile"
)

// Scheduler runs a cron-driven vacuum pass over a recfile database. On each
// tick it inspects the catalog and vacuums every table not named in
// cfg.Exclude, concurrently (vacuum is always a full compacting delete, so
// running it on an already-compact table is a cheap no-op).
type Scheduler struct {
	db   *recfile.DB
	cfg  Config
	cron *cron.Cron

	mu   sync.Mutex
	last []string // tables vacuumed during the most recent pass
}

// NewScheduler builds a Scheduler for db using cfg's schedule and filters.
func NewScheduler(db *recfile.DB, cfg Config) *Scheduler {
	loc, _ := time.LoadLocation("UTC")
	return &Scheduler{
		db:   db,
		cfg:  cfg,
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// Start registers the vacuum job with cfg.Schedule and begins running it in
// the background. Call Stop to halt it.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.runOnce(context.Background()); err != nil {
			log.Printf("maintain: vacuum pass failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	log.Printf("maintain: scheduler started, schedule=%q db=%s", s.cfg.Schedule, s.db.Path())
	return nil
}

// Stop halts the scheduler, waiting for the cron runner to quiesce.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("maintain: scheduler stopped")
}

// RunOnce performs a single vacuum pass immediately, outside the cron
// schedule. The maintenance CLI uses this for a one-shot run.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	return s.runOnce(ctx)
}

// LastVacuumed returns the table names vacuumed during the most recent pass,
// in no particular order (they ran concurrently).
func (s *Scheduler) LastVacuumed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.last))
	copy(out, s.last)
	return out
}

func (s *Scheduler) runOnce(ctx context.Context) error {
	passID := uuid.New()

	tables, err := s.db.InspectCatalog()
	if err != nil {
		return fmt.Errorf("inspect catalog: %w", err)
	}

	var mu sync.Mutex
	var done []string

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tables {
		t := t
		if s.cfg.excludes(t.Name) {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := s.db.Vacuum(t.Name); err != nil {
				return fmt.Errorf("vacuum %q: %w", t.Name, err)
			}
			mu.Lock()
			done = append(done, t.Name)
			mu.Unlock()
			log.Printf("maintain: pass=%s vacuumed %q (%d pages, %d rows)", passID, t.Name, t.PageCount, t.RowCount)
			return nil
		})
	}

	err = g.Wait()

	s.mu.Lock()
	s.last = done
	s.mu.Unlock()

	return err
}
