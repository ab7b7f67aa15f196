// Package processor runs the replay loop: it pulls transactions from a
// source, resolves the target account through the registry, and hands both
// to the payment engine. Failures are logged, counted and collected, never
// fatal: one bad transaction must not block the rest of the stream.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fusillicode/toyoments/pkg/csvio"
	"github.com/fusillicode/toyoments/pkg/engine"
	"github.com/fusillicode/toyoments/pkg/ledger"
	"github.com/fusillicode/toyoments/pkg/metrics"
	"github.com/fusillicode/toyoments/pkg/models"
	"github.com/fusillicode/toyoments/pkg/storage"
)

// TransactionSource yields validated transactions one at a time. Next
// returns io.EOF once the source is exhausted and a *csvio.RowError for a
// malformed row that the source skipped past (recoverable; call Next again).
type TransactionSource interface {
	Next() (models.Transaction, error)
}

// Failure records one transaction that could not be applied. Tx is the zero
// value when the row never parsed into a transaction.
type Failure struct {
	Tx  models.Transaction
	Err error
}

// Processor drives a replay run against a storage layer.
type Processor struct {
	store     storage.Storage
	engine    *engine.PaymentEngine
	logger    *slog.Logger
	collector *metrics.Collector
	shards    int
}

// New creates a Processor. shards <= 1 runs the stream sequentially; larger
// values route transactions to that many workers by client id, which keeps
// per-client ordering while letting independent clients proceed in parallel.
func New(store storage.Storage, logger *slog.Logger, collector *metrics.Collector, shards int) *Processor {
	if shards < 1 {
		shards = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	if collector == nil {
		collector = metrics.New()
	}
	return &Processor{
		store:     store,
		engine:    engine.New(store),
		logger:    logger,
		collector: collector,
		shards:    shards,
	}
}

// Run consumes the source until exhaustion and returns every per-transaction
// failure. The returned error is non-nil only for unrecoverable problems
// (unreadable source, cancelled context); business-rule rejections end up in
// the failure list instead.
func (p *Processor) Run(ctx context.Context, src TransactionSource) ([]Failure, error) {
	var failures []Failure
	var err error
	if p.shards > 1 {
		failures, err = p.runSharded(ctx, src)
	} else {
		failures, err = p.runSequential(ctx, src)
	}

	p.publishAccountMetrics(ctx)
	return failures, err
}

func (p *Processor) runSequential(ctx context.Context, src TransactionSource) ([]Failure, error) {
	var failures []Failure
	for {
		tx, err := src.Next()
		if err == io.EOF {
			return failures, nil
		}
		if failure, fatal := p.classifySourceErr(err); fatal != nil {
			return failures, fatal
		} else if failure != nil {
			failures = append(failures, *failure)
			continue
		}
		if err := ctx.Err(); err != nil {
			return failures, err
		}

		if failure := p.apply(ctx, tx); failure != nil {
			failures = append(failures, *failure)
		}
	}
}

// runSharded fans transactions out to workers keyed by client id. Accounts
// and disputable records are independent per client, so only per-client
// ordering matters, and routing by client id preserves it within a shard.
func (p *Processor) runSharded(ctx context.Context, src TransactionSource) ([]Failure, error) {
	var mu sync.Mutex
	var failures []Failure
	record := func(f Failure) {
		mu.Lock()
		failures = append(failures, f)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	shards := make([]chan models.Transaction, p.shards)
	for i := range shards {
		ch := make(chan models.Transaction, 64)
		shards[i] = ch
		g.Go(func() error {
			for tx := range ch {
				if failure := p.apply(ctx, tx); failure != nil {
					record(*failure)
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			for _, ch := range shards {
				close(ch)
			}
		}()
		for {
			tx, err := src.Next()
			if err == io.EOF {
				return nil
			}
			if failure, fatal := p.classifySourceErr(err); fatal != nil {
				return fatal
			} else if failure != nil {
				record(*failure)
				continue
			}

			select {
			case shards[int(tx.Client)%p.shards] <- tx:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	err := g.Wait()
	return failures, err
}

// classifySourceErr splits source errors into recoverable row failures and
// fatal reader errors. A nil error yields (nil, nil).
func (p *Processor) classifySourceErr(err error) (*Failure, error) {
	if err == nil {
		return nil, nil
	}
	var rowErr *csvio.RowError
	if errors.As(err, &rowErr) {
		p.logger.Warn("skipping malformed transaction row", slog.String("error", rowErr.Error()))
		p.collector.TransactionFailed("malformed_row")
		return &Failure{Err: rowErr}, nil
	}
	return nil, fmt.Errorf("failed to read transaction source: %w", err)
}

func (p *Processor) apply(ctx context.Context, tx models.Transaction) *Failure {
	account, err := p.store.GetOrCreateAccount(ctx, tx.Client)
	if err != nil {
		p.logger.Warn("failed to resolve account for transaction",
			slog.String("tx", tx.String()), slog.String("error", err.Error()))
		p.collector.TransactionFailed("registry")
		return &Failure{Tx: tx, Err: err}
	}

	if err := p.engine.Handle(ctx, account, tx); err != nil {
		p.logger.Warn("failed to handle transaction",
			slog.String("tx", tx.String()),
			slog.String("account", account.String()),
			slog.String("error", err.Error()))
		p.collector.TransactionFailed(failureReason(err))
		return &Failure{Tx: tx, Err: err}
	}

	p.collector.TransactionProcessed(tx.Kind)
	return nil
}

func (p *Processor) publishAccountMetrics(ctx context.Context) {
	accounts, err := p.store.ListAccounts(ctx)
	if err != nil {
		p.logger.Warn("failed to list accounts for metrics", slog.String("error", err.Error()))
		return
	}
	locked := 0
	for _, account := range accounts {
		if account.Locked() {
			locked++
		}
	}
	p.collector.SetAccounts(len(accounts), locked)
}

// failureReason maps an engine error onto a stable metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ledger.ErrOverflow):
		return "overflow"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, engine.ErrUnrelatedTransaction):
		return "unrelated_transaction"
	case errors.Is(err, engine.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, storage.ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, engine.ErrAlreadyDisputed):
		return "already_disputed"
	case errors.Is(err, engine.ErrNotDisputed):
		return "not_disputed"
	default:
		return "other"
	}
}
