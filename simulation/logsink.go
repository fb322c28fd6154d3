package simulation

import (
	"log"
	"sync"
	"sync/atomic"
)

// Severity is the level of a log message.
type Severity int

// The severity levels, from most to least verbose.
const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// A LogSink receives log messages from the engine. Emit must never block
// the dispatch loop.
type LogSink interface {
	Emit(severity Severity, message string)
}

type logEntry struct {
	severity Severity
	message  string
}

// A QueuedLogSink filters messages below a minimum severity and forwards
// the rest to a log.Logger through a bounded queue. When the queue is full
// the message is dropped and counted instead of blocking the engine.
type QueuedLogSink struct {
	minSeverity Severity
	entries     chan logEntry
	dropped     atomic.Uint64

	logger    *log.Logger
	drainDone sync.WaitGroup
	closeOnce sync.Once
}

// NewQueuedLogSink creates a QueuedLogSink draining into the given logger.
// depth bounds the number of undelivered messages.
func NewQueuedLogSink(
	logger *log.Logger,
	minSeverity Severity,
	depth int,
) *QueuedLogSink {
	s := &QueuedLogSink{
		minSeverity: minSeverity,
		entries:     make(chan logEntry, depth),
		logger:      logger,
	}

	s.drainDone.Add(1)
	go s.drain()

	return s
}

func (s *QueuedLogSink) drain() {
	defer s.drainDone.Done()

	for entry := range s.entries {
		s.logger.Printf("%s %s", entry.severity, entry.message)
	}
}

// Emit enqueues a message. Messages below the minimum severity are ignored.
// Messages that do not fit in the queue are dropped and counted.
func (s *QueuedLogSink) Emit(severity Severity, message string) {
	if severity < s.minSeverity {
		return
	}

	select {
	case s.entries <- logEntry{severity: severity, message: message}:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns the number of messages dropped on overflow.
func (s *QueuedLogSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close delivers the remaining queued messages and reports the dropped
// count, if any. Emit must not be called after Close.
func (s *QueuedLogSink) Close() {
	s.closeOnce.Do(func() {
		close(s.entries)
		s.drainDone.Wait()

		if n := s.dropped.Load(); n > 0 {
			s.logger.Printf("%s %d log messages dropped on overflow",
				SeverityWarn, n)
		}
	})
}

// NopLogSink discards every message.
type NopLogSink struct{}

// Emit does nothing.
func (NopLogSink) Emit(Severity, string) {}
