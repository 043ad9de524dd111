package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/logger"
	"github.com/guttosm/planning-service/internal/metrics"
	"github.com/guttosm/planning-service/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is how many entries may wait for a worker.
	BufferSize int
	// NumWorkers is the number of goroutines writing entries.
	NumWorkers int
	// WriteTimeout bounds a single database write.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used by the API.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLoggerStats counts what happened to logged entries.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// AsyncLogger persists request and audit entries off the request path. A
// full buffer drops entries rather than slowing plan edits down.
type AsyncLogger struct {
	loggingService service.LoggingService
	writeTimeout   time.Duration

	mu      sync.RWMutex
	closed  bool
	entryCh chan *model.LogEntry
	wg      sync.WaitGroup

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the worker pool. A nil logging service yields a nil
// logger, on which Log and Stop are no-ops.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	cfg.BufferSize = max(cfg.BufferSize, 1)
	cfg.NumWorkers = max(cfg.NumWorkers, 1)
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultAsyncLoggerConfig().WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		writeTimeout:   cfg.WriteTimeout,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
	}
	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go func() {
			defer al.wg.Done()
			for entry := range al.entryCh {
				al.write(entry)
			}
		}()
	}
	return al
}

func (al *AsyncLogger) write(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		al.failed.Add(1)
		metrics.RecordLogEntry(metrics.LogEntryFailed)
		l := logger.Logger()
		l.Warn().Err(err).
			Str("request_id", entry.RequestID).
			Str("action", entry.ActionType).
			Msg("Failed to write log entry")
		return
	}
	al.written.Add(1)
	metrics.RecordLogEntry(metrics.LogEntryWritten)
}

// Log enqueues entry and reports whether it was accepted. Entries are
// dropped when the buffer is full or the logger is stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}

	al.mu.RLock()
	defer al.mu.RUnlock()
	if !al.closed {
		select {
		case al.entryCh <- entry:
			al.enqueued.Add(1)
			return true
		default:
		}
	}
	al.dropped.Add(1)
	metrics.RecordLogEntry(metrics.LogEntryDropped)
	return false
}

// Stop writes the entries still buffered and waits for the workers.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.mu.Lock()
	if !al.closed {
		al.closed = true
		close(al.entryCh)
	}
	al.mu.Unlock()
	al.wg.Wait()
}

// Stats returns a snapshot of the entry counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}
