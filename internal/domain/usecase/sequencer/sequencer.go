package sequencer

import (
	"context"
	"sync"

	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
)

// Sequencer serializes ledger mutations per key. Escrow operations use the
// owner as the key; vault operations all share the singleton vault key
// because every conversion reads the global exchange rate. Each key gets a
// dedicated worker goroutine draining a queue, so two operations on the same
// key can never interleave.
type Sequencer struct {
	logger coreport.Logger

	queues sync.Map // map[string]chan *queuedOp
	wg     sync.WaitGroup

	// done tells workers to stop; it closes only after every in-flight Do has
	// returned, so a queue send never races the workers' exit.
	done    chan struct{}
	pending sync.WaitGroup

	mu       sync.Mutex
	shutdown bool
}

type queuedOp struct {
	ctx      context.Context
	fn       func(ctx context.Context) error
	resultCh chan error
}

// queueBacklog bounds how many operations may wait per key before enqueueing
// blocks.
const queueBacklog = 100

// New creates a sequencer.
func New(logger coreport.Logger) *Sequencer {
	return &Sequencer{
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Do runs fn serialized with every other operation sharing the same key. It
// blocks until fn has run (or ctx is done) and returns fn's error.
func (s *Sequencer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return errs.ErrInternalServer
	}
	s.pending.Add(1)
	defer s.pending.Done()

	queueIface, loaded := s.queues.LoadOrStore(key, make(chan *queuedOp, queueBacklog))
	queue, ok := queueIface.(chan *queuedOp)
	if !ok {
		s.mu.Unlock()
		s.logger.Error("Failed to type assert sequencer queue", map[string]any{"key": key})
		return errs.ErrInternalServer
	}

	if !loaded {
		s.logger.Debug("Starting sequencer worker", map[string]any{"key": key})
		s.wg.Add(1)
		go s.drain(key, queue)
	}
	s.mu.Unlock()

	op := &queuedOp{ctx: ctx, fn: fn, resultCh: make(chan error, 1)}

	select {
	case queue <- op:
	case <-ctx.Done():
		s.logger.Warn("Context done while enqueueing operation", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-op.resultCh:
		return err
	case <-ctx.Done():
		// The worker will still run the operation; the caller just stops
		// waiting for it.
		s.logger.Warn("Context done while waiting for operation result", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// drain is the worker loop for one key's queue. Queues are never closed;
// workers stop on the done signal after emptying what is already queued, so
// a send racing Shutdown can never hit a closed channel.
func (s *Sequencer) drain(key string, queue chan *queuedOp) {
	defer s.wg.Done()
	defer s.logger.Debug("Sequencer worker stopped", map[string]any{"key": key})

	for {
		select {
		case op := <-queue:
			s.run(op)
		case <-s.done:
			for {
				select {
				case op := <-queue:
					s.run(op)
				default:
					return
				}
			}
		}
	}
}

func (s *Sequencer) run(op *queuedOp) {
	if err := op.ctx.Err(); err != nil {
		op.resultCh <- err
		close(op.resultCh)
		return
	}

	op.resultCh <- op.fn(op.ctx)
	close(op.resultCh)
}

// Shutdown stops the workers and waits for in-flight operations to finish.
// Do returns an error for anything submitted afterwards.
func (s *Sequencer) Shutdown() {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return
	}
	s.shutdown = true
	s.mu.Unlock()

	// No new Do can get past the flag; once the in-flight ones have landed
	// their sends the workers can be told to finish the queues and stop.
	s.pending.Wait()
	close(s.done)
	s.wg.Wait()

	s.logger.Info("Sequencer shut down", nil)
}
