package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/loopservices/talent-platform/internal/core/domain"
	"github.com/loopservices/talent-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher writes application audit events to a fixed set of workers using
// consistent hashing on the applicant id, guaranteeing per-application
// ordering of the history trail. Recording never blocks the request path
// beyond channel capacity.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit event on the worker responsible for its
// applicant. A zero OccurredAt is stamped with the current time.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	d.workers[d.shardIndex(event.ApplicantID)] <- event
}

// History returns the recorded trail for an applicant, oldest first.
func (d *Dispatcher) History(ctx context.Context, applicantID string) ([]domain.AuditEvent, error) {
	return d.repo.FindByApplicant(ctx, applicantID)
}

// shardIndex maps an applicant id deterministically to a worker index.
func (d *Dispatcher) shardIndex(applicantID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(applicantID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("applicant_id", event.ApplicantID).
					Int("worker_id", id).
					Msg("audit event write failed")
			}
		}
	}
}
