// Package scheduler drives per-era restyle requests with a bounded worker
// pool and tracks each era's lifecycle in a shared status map.
package scheduler

import (
	"context"
	"sync"

	"retrobooth/internal/domain"
	"retrobooth/internal/infra"
	"retrobooth/internal/providers/style"
)

const defaultWorkerCount = 2

// Options configures a Scheduler.
type Options struct {
	// Eras fixes the key set and its queue/layout order. Defaults to the
	// canonical six-era set.
	Eras []domain.Era
	// Workers caps concurrent generation requests during RunAll. It is a
	// tunable limit, not derived from the era count. Defaults to 2.
	Workers int
	Logger  infra.Logger
}

// Scheduler owns the per-era status map and the FIFO work queue for one album
// session. The status map's key set never changes after construction; workers
// replace whole entries, each for the era it alone dequeued.
type Scheduler struct {
	gen     style.Generator
	eras    []domain.Era
	workers int
	logger  infra.Logger

	mu       sync.Mutex
	statuses map[domain.Era]domain.GenerationStatus
	queue    eraQueue
}

func New(gen style.Generator, opts Options) *Scheduler {
	eras := opts.Eras
	if len(eras) == 0 {
		eras = domain.Eras()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkerCount
	}

	s := &Scheduler{
		gen:      gen,
		eras:     append([]domain.Era(nil), eras...),
		workers:  workers,
		logger:   opts.Logger,
		statuses: make(map[domain.Era]domain.GenerationStatus, len(eras)),
	}
	for _, era := range s.eras {
		s.statuses[era] = domain.GenerationStatus{Kind: domain.StatusPending}
	}
	return s
}

// Eras returns the fixed key set in queue order.
func (s *Scheduler) Eras() []domain.Era {
	return append([]domain.Era(nil), s.eras...)
}

// RunAll resets every era to pending, fills the queue in fixed order and
// processes it with the configured worker pool. It returns only after every
// worker has terminated; individual failures are recorded per era and never
// abort the run. Cancelling ctx settles all not-yet-started eras as errors so
// no entry is left pending.
//
// Concurrent RunAll calls on the same Scheduler are a caller error; the HTTP
// layer starts a fresh Scheduler per upload instead.
func (s *Scheduler) RunAll(ctx context.Context, source domain.SourceImage) {
	s.mu.Lock()
	for _, era := range s.eras {
		s.statuses[era] = domain.GenerationStatus{Kind: domain.StatusPending}
	}
	s.queue.reset(s.eras)
	s.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			s.runWorker(ctx, worker, source)
		}(i)
	}
	wg.Wait()
}

func (s *Scheduler) runWorker(ctx context.Context, worker int, source domain.SourceImage) {
	for {
		era, ok := s.queue.dequeue()
		if !ok {
			return
		}
		if err := ctx.Err(); err != nil {
			s.settle(era, nil, err)
			continue
		}

		s.logger.Debug().Int("worker", worker).Str("era", era.String()).Msg("scheduler: era dequeued")
		asset, err := s.gen.Generate(ctx, source, era)
		s.settle(era, asset, err)
	}
}

// Regenerate retries a single era outside the queue, independent of any
// in-flight run. The claim is atomic: while the era is pending the call is
// rejected with ErrAlreadyPending and no new request is issued, so repeated
// user action cannot create duplicate in-flight requests for one era.
//
// ctx must outlive the HTTP request that triggered the retry; callers pass
// the album session's context.
func (s *Scheduler) Regenerate(ctx context.Context, source domain.SourceImage, era domain.Era) error {
	s.mu.Lock()
	status, ok := s.statuses[era]
	if !ok {
		s.mu.Unlock()
		return domain.ErrUnknownEra
	}
	if status.Pending() {
		s.mu.Unlock()
		return domain.ErrAlreadyPending
	}
	s.statuses[era] = domain.GenerationStatus{Kind: domain.StatusPending}
	s.mu.Unlock()

	go func() {
		asset, err := s.gen.Generate(ctx, source, era)
		s.settle(era, asset, err)
	}()
	return nil
}

// settle replaces the era's status entry wholesale with the request outcome.
func (s *Scheduler) settle(era domain.Era, asset *domain.ImageAsset, err error) {
	s.mu.Lock()
	if err != nil {
		s.statuses[era] = domain.GenerationStatus{Kind: domain.StatusError, ErrorMessage: err.Error()}
	} else {
		s.statuses[era] = domain.GenerationStatus{Kind: domain.StatusDone, Image: asset}
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn().Err(err).Str("era", era.String()).Msg("scheduler: era failed")
	} else {
		s.logger.Info().Str("era", era.String()).Int("bytes", len(asset.Data)).Msg("scheduler: era done")
	}
}

// Snapshot returns a copy of the live status map for rendering.
func (s *Scheduler) Snapshot() map[domain.Era]domain.GenerationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.Era]domain.GenerationStatus, len(s.statuses))
	for era, status := range s.statuses {
		out[era] = status
	}
	return out
}

// Status returns the current status for one era.
func (s *Scheduler) Status(era domain.Era) (domain.GenerationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[era]
	if !ok {
		return domain.GenerationStatus{}, domain.ErrUnknownEra
	}
	return status, nil
}

// CompletedImages collects the encoded image per era. ok is false until every
// era in the set has reached done.
func (s *Scheduler) CompletedImages() (map[domain.Era][]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.Era][]byte, len(s.statuses))
	for era, status := range s.statuses {
		if status.Kind != domain.StatusDone || status.Image == nil {
			return nil, false
		}
		out[era] = status.Image.Data
	}
	return out, true
}
