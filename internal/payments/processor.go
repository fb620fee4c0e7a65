package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/payouts7000-backend/internal/clock"
	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
)

// DefaultMaxInFlight caps submitted unconfirmed transactions when the caller
// passes a non-positive limit.
const DefaultMaxInFlight = 10

// Cycle statuses reported to metrics.
const (
	CycleSuccess = "success"
	CycleError   = "error"
	CycleBlocked = "blocked"
	CycleSkipped = "skipped"
)

const (
	releaseTimeout = 5 * time.Second
	pollJitter     = 0.1
)

// Status is a snapshot of the processor state.
type Status struct {
	Running             bool
	Sequence            uint32
	SequenceInitialized bool
	FatalError          string
	FatalTransactionID  int64
	LastCycleID         string
	LastCycleStartedAt  time.Time
	LastCycleDuration   time.Duration
	LastCycleError      string
}

type cycleInfo struct {
	id       string
	started  time.Time
	duration time.Duration
	err      error
}

// Processor runs payment cycles: sign new rows, submit signed rows and recover
// from sequence conflicts. Cycles never overlap.
type Processor struct {
	store     Store
	ledger    LedgerClient
	signer    TransactionSigner
	submitter TransactionSubmitter
	counter   *SequenceCounter
	lease     Lease
	address   string
	metrics   Metrics
	logger    *zap.Logger
	sleep     func(context.Context, time.Duration) error
	jitter    float64

	running atomic.Bool

	mu    sync.Mutex
	fatal *FatalError
	last  cycleInfo
}

// NewProcessor builds a Processor paying from account. lease may be nil when
// a single process owns the account.
func NewProcessor(
	store Store,
	client LedgerClient,
	lease Lease,
	metrics Metrics,
	account Account,
	logger *zap.Logger,
	recorders ...SubmissionRecorder,
) (*Processor, error) {
	if store == nil {
		return nil, errors.New("payments store is required")
	}
	if client == nil {
		return nil, errors.New("ledger client is required")
	}
	if metrics == nil {
		return nil, errors.New("payments metrics is required")
	}
	if account.Address == "" || account.Secret == "" {
		return nil, errors.New("payout account address and secret are required")
	}

	logger = logger.With(zap.String("account", account.Address))
	counter := &SequenceCounter{}

	return &Processor{
		store:     store,
		ledger:    client,
		signer:    NewSigner(store, client, counter, account, metrics, logger.Named("signer")),
		submitter: NewReconciler(store, client, newRecorders(recorders...), metrics, logger.Named("reconciler")),
		counter:   counter,
		lease:     lease,
		address:   account.Address,
		metrics:   metrics,
		logger:    logger,
		sleep:     clock.SleepWithContext,
		jitter:    pollJitter,
	}, nil
}

// Run calls ProcessPayments every interval until ctx is canceled.
func (p *Processor) Run(ctx context.Context, interval time.Duration, maxInFlight int) error {
	if p.lease != nil {
		defer func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()
			if err := p.lease.Release(releaseCtx); err != nil {
				p.logger.Warn("release lease failed", zap.Error(err))
			}
		}()
	}

	for {
		err := p.ProcessPayments(ctx, maxInFlight)
		var fatal *FatalError
		switch {
		case err == nil, ctx.Err() != nil:
		case errors.As(err, &fatal):
			p.logger.Error("payments halted until the offending transaction is aborted", zap.Error(err))
		default:
			p.logger.Warn("payment cycle failed", zap.Error(err))
		}

		if err := p.sleep(ctx, clock.Jitter(interval, p.jitter)); err != nil {
			return err
		}
	}
}

// ProcessPayments runs a single cycle. It returns nil without doing anything
// when another cycle is in progress, and a *FatalError while one is latched.
func (p *Processor) ProcessPayments(ctx context.Context, maxInFlight int) error {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Debug("previous payment cycle still running")
		return nil
	}
	defer p.running.Store(false)

	started := time.Now()
	cycleID := uuid.NewString()
	logger := p.logger.With(zap.String("cycle_id", cycleID))

	status, err := p.process(ctx, logger, maxInFlight)

	p.mu.Lock()
	p.last = cycleInfo{id: cycleID, started: started, duration: time.Since(started), err: err}
	p.mu.Unlock()
	p.metrics.ObserveCycle(status, started)
	return err
}

func (p *Processor) process(ctx context.Context, logger *zap.Logger, maxInFlight int) (string, error) {
	if err := p.checkFatal(ctx, logger); err != nil {
		return CycleBlocked, err
	}

	if p.lease != nil {
		held, fresh, err := p.lease.Acquire(ctx)
		if err != nil {
			return CycleError, fmt.Errorf("acquire lease: %w", err)
		}
		if !held {
			logger.Debug("lease held by another process, skipping cycle")
			p.counter.Invalidate()
			return CycleSkipped, nil
		}
		if fresh {
			logger.Info("lease acquired, reloading sequence")
			p.counter.Invalidate()
		}
	}

	if err := p.ensureSequence(ctx, logger); err != nil {
		return CycleError, p.latch(ctx, logger, err)
	}

	budget, err := p.signingBudget(ctx, maxInFlight)
	if err != nil {
		return CycleError, p.latch(ctx, logger, err)
	}
	if budget > 0 {
		if err := p.signer.SignTransactions(ctx, budget); err != nil {
			return CycleError, p.latch(ctx, logger, err)
		}
	} else {
		logger.Debug("in-flight limit reached, not signing", zap.Int("max_in_flight", maxInFlight))
	}

	err = p.submitter.SubmitTransactions(ctx)
	var resignErr *ResignRequiredError
	if errors.As(err, &resignErr) {
		if rbErr := p.rollback(ctx, logger, resignErr.Transaction); rbErr != nil {
			return CycleError, p.latch(ctx, logger, rbErr)
		}
		err = resignErr.Err
	}
	if err != nil {
		return CycleError, p.latch(ctx, logger, err)
	}
	return CycleSuccess, nil
}

// checkFatal returns the latched error unless an operator has since aborted
// the offending transaction.
func (p *Processor) checkFatal(ctx context.Context, logger *zap.Logger) error {
	p.mu.Lock()
	fatal := p.fatal
	p.mu.Unlock()

	if fatal == nil {
		return nil
	}
	if fatal.Transaction == nil {
		return fatal
	}

	aborted, err := p.store.IsAborted(ctx, fatal.Transaction.ID)
	if err != nil {
		logger.Warn("check aborted transaction failed", zap.Int64("transaction_id", fatal.Transaction.ID), zap.Error(err))
		return fatal
	}
	if !aborted {
		return fatal
	}

	logger.Info("offending transaction aborted, clearing fatal error",
		zap.Int64("transaction_id", fatal.Transaction.ID), zap.NamedError("fatal", fatal.Err))
	p.mu.Lock()
	p.fatal = nil
	p.mu.Unlock()
	p.metrics.SetFatal(false)

	if fatal.Transaction.Sequence == nil {
		p.counter.Invalidate()
		return nil
	}
	if err := p.rollback(ctx, logger, *fatal.Transaction); err != nil {
		return p.latch(ctx, logger, err)
	}
	return nil
}

func (p *Processor) ensureSequence(ctx context.Context, logger *zap.Logger) error {
	if _, ok := p.counter.Get(); ok {
		return nil
	}

	highest, found, err := p.store.HighestSequence(ctx)
	if err != nil {
		return fmt.Errorf("query highest sequence: %w", err)
	}

	if found && highest == math.MaxUint32 {
		return fmt.Errorf("highest stored sequence %d cannot be incremented", highest)
	}
	next := highest + 1
	source := "store"
	if !found {
		next, err = p.ledger.AccountSequence(ctx, p.address)
		if err != nil {
			return fmt.Errorf("query account sequence: %w", err)
		}
		source = "ledger"
	}

	p.counter.Set(next)
	p.metrics.SetSequence(next)
	logger.Info("sequence initialized", zap.Uint32("sequence", next), zap.String("source", source))
	return nil
}

func (p *Processor) signingBudget(ctx context.Context, maxInFlight int) (int, error) {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	inFlight, err := p.store.SubmittedUnconfirmedTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("query submitted unconfirmed transactions: %w", err)
	}
	return maxInFlight - len(inFlight), nil
}

// rollback clears every unconfirmed row signed at or after tx's sequence and
// rewinds the counter to that sequence.
func (p *Processor) rollback(ctx context.Context, logger *zap.Logger, tx model.Transaction) error {
	sequence := tx.SequenceValue()
	cleared, err := p.store.ClearSignedTransactionsFromSequence(context.WithoutCancel(ctx), sequence)
	if err != nil {
		return &TransactionError{Transaction: tx, Err: fmt.Errorf("clear signed transactions from sequence %d: %w", sequence, err)}
	}

	p.counter.Set(sequence)
	p.metrics.ObserveRollback(cleared)
	p.metrics.SetSequence(sequence)
	logger.Warn("signed transactions rolled back for resign",
		zap.Int64("transaction_id", tx.ID),
		zap.Uint32("sequence", sequence),
		zap.Int64("cleared", cleared),
	)
	return nil
}

// latch records err as the fatal error. Cancellation is returned as is.
func (p *Processor) latch(ctx context.Context, logger *zap.Logger, err error) error {
	if ctx.Err() != nil {
		return err
	}

	fatal := &FatalError{Err: err, Transaction: offendingTransaction(err)}
	p.mu.Lock()
	p.fatal = fatal
	p.mu.Unlock()
	p.metrics.SetFatal(true)

	fields := []zap.Field{zap.Error(err)}
	if fatal.Transaction != nil {
		fields = append(fields, zap.Int64("transaction_id", fatal.Transaction.ID))
	}
	logger.Error("payment cycle failed, fatal error latched", fields...)
	return fatal
}

// Status returns a snapshot of the processor state.
func (p *Processor) Status() Status {
	sequence, initialized := p.counter.Get()

	p.mu.Lock()
	defer p.mu.Unlock()

	status := Status{
		Running:             p.running.Load(),
		Sequence:            sequence,
		SequenceInitialized: initialized,
		LastCycleID:         p.last.id,
		LastCycleStartedAt:  p.last.started,
		LastCycleDuration:   p.last.duration,
	}
	if p.last.err != nil {
		status.LastCycleError = p.last.err.Error()
	}
	if p.fatal != nil {
		status.FatalError = p.fatal.Error()
		if p.fatal.Transaction != nil {
			status.FatalTransactionID = p.fatal.Transaction.ID
		}
	}
	return status
}
