// Package queue decouples best-effort writes from the request path.
package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hunter122526/quantum2017/internal/api/metrics"
	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/ports"
)

const (
	channelBuffer = 256
	writeTimeout  = 5 * time.Second
)

// AuditRecorder buffers audit entries through a single worker so the primary
// action never waits on, or fails because of, the audit write. A single
// worker also preserves append order. Entries are dropped (and counted) when
// the buffer is full or a write fails; audit logging is best effort and is
// not transactionally coupled to the action it records.
type AuditRecorder struct {
	entries chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
	done    chan struct{}
}

// NewAuditRecorder creates an AuditRecorder writing through repo.
func NewAuditRecorder(repo ports.AuditRepository, log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{
		entries: make(chan domain.AuditEntry, channelBuffer),
		repo:    repo,
		log:     log,
		done:    make(chan struct{}),
	}
}

// Start launches the worker goroutine. The worker stops when ctx is
// cancelled; entries still buffered at that point are flushed first. Cancel
// the context only after all producers have quiesced (the HTTP server has
// shut down), or entries recorded during the teardown window are lost.
func (r *AuditRecorder) Start(ctx context.Context) {
	go r.run(ctx)
}

// Wait blocks until the worker has flushed and exited. Call after cancelling
// the Start context.
func (r *AuditRecorder) Wait() {
	<-r.done
}

// Record enqueues an entry without blocking. A full buffer drops the entry.
func (r *AuditRecorder) Record(entry domain.AuditEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	select {
	case r.entries <- entry:
	default:
		metrics.AuditWriteFailuresTotal.WithLabelValues("buffer_full").Inc()
		r.log.Warn().Str("action", entry.Action).Msg("audit buffer full, entry dropped")
	}
}

func (r *AuditRecorder) run(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case entry := <-r.entries:
			r.write(entry)
		case <-ctx.Done():
			r.drain()
			return
		}
	}
}

// drain flushes whatever is still buffered at shutdown.
func (r *AuditRecorder) drain() {
	for {
		select {
		case entry := <-r.entries:
			r.write(entry)
		default:
			return
		}
	}
}

func (r *AuditRecorder) write(entry domain.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.repo.Append(ctx, &entry); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues("write_error").Inc()
		r.log.Error().Err(err).Str("action", entry.Action).Msg("audit write failed")
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues(entry.Action).Inc()
}
