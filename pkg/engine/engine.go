// Package engine applies transactions to client accounts, enforcing the
// dispute/resolve/chargeback lifecycle over the disputable transaction
// ledger. Every failure is local to one transaction: the account and the
// ledger are left in the state they held before the failing transaction, and
// the caller is free to keep feeding subsequent ones.
package engine

import (
	"context"
	"fmt"

	"github.com/fusillicode/toyoments/pkg/ledger"
	"github.com/fusillicode/toyoments/pkg/models"
	"github.com/fusillicode/toyoments/pkg/storage"
)

// PaymentEngine is the transaction state machine. It mutates accounts
// through the ledger primitives and consults the dispute store for the
// lifecycle transactions.
type PaymentEngine struct {
	disputes storage.DisputeStore
}

// New creates a PaymentEngine backed by the given dispute store.
func New(disputes storage.DisputeStore) *PaymentEngine {
	return &PaymentEngine{disputes: disputes}
}

// Handle applies one transaction to the account belonging to its client.
// Resolving the account is the caller's responsibility; Handle verifies the
// pairing and rejects mismatches instead of trusting it.
func (e *PaymentEngine) Handle(ctx context.Context, account *ledger.Account, tx models.Transaction) error {
	if account.ClientID() != tx.Client {
		return fmt.Errorf("%w, %s, %s", ErrUnrelatedTransaction, tx, account)
	}
	if account.Locked() {
		return fmt.Errorf("%w, %s, %s", ErrAccountLocked, tx, account)
	}

	var err error
	switch tx.Kind {
	case models.TxDeposit:
		err = account.Deposit(tx.Amount)
	case models.TxWithdrawal:
		err = account.Withdraw(tx.Amount)
	case models.TxDispute:
		err = e.dispute(ctx, account, tx)
	case models.TxResolve:
		err = e.resolve(ctx, account, tx)
	case models.TxChargeback:
		err = e.chargeback(ctx, account, tx)
	default:
		err = fmt.Errorf("unknown transaction kind %q", tx.Kind)
	}
	if err != nil {
		return err
	}

	// Applied deposits and withdrawals become eligible for dispute. The
	// lifecycle transactions only flip the flag on existing records.
	if tx.Disputable() {
		record := models.DisputableTransaction{
			Client: tx.Client,
			ID:     tx.ID,
			Amount: tx.Amount,
			Kind:   tx.Kind,
		}
		if err := e.disputes.RecordDisputable(ctx, record); err != nil {
			return fmt.Errorf("failed to record disputable %s: %w", tx, err)
		}
	}
	return nil
}

// dispute freezes the disputed transaction's amount. For a deposit the funds
// move from available to held, reflecting that the deposit's legitimacy is
// in question. For a withdrawal the amount already left available at
// withdrawal time, so only held grows, reserving an equal amount against an
// eventual reversal.
func (e *PaymentEngine) dispute(ctx context.Context, account *ledger.Account, tx models.Transaction) error {
	record, err := e.disputes.GetDisputable(ctx, tx.Key())
	if err != nil {
		return err
	}
	if record.Disputed {
		return fmt.Errorf("%w, %s, %s", ErrAlreadyDisputed, tx, account)
	}

	if record.IsDeposit() {
		err = account.WithdrawAndHold(record.Amount)
	} else {
		err = account.Hold(record.Amount)
	}
	if err != nil {
		return err
	}

	return e.disputes.SetDisputed(ctx, tx.Key(), true)
}

// resolve decides a dispute in the client's favor: the held amount moves
// back to available and the record becomes disputable again.
func (e *PaymentEngine) resolve(ctx context.Context, account *ledger.Account, tx models.Transaction) error {
	record, err := e.disputes.GetDisputable(ctx, tx.Key())
	if err != nil {
		return err
	}
	if !record.Disputed {
		return fmt.Errorf("%w, %s, %s", ErrNotDisputed, tx, account)
	}

	if err := account.UnholdAndDeposit(record.Amount); err != nil {
		return err
	}

	return e.disputes.SetDisputed(ctx, tx.Key(), false)
}

// chargeback decides a dispute against the client and locks the account for
// good. A disputed deposit is reversed by dropping its held funds; a
// disputed withdrawal is reversed in the client's favor by refunding the
// amount and releasing the hold.
func (e *PaymentEngine) chargeback(ctx context.Context, account *ledger.Account, tx models.Transaction) error {
	record, err := e.disputes.GetDisputable(ctx, tx.Key())
	if err != nil {
		return err
	}
	if !record.Disputed {
		return fmt.Errorf("%w, %s, %s", ErrNotDisputed, tx, account)
	}

	if record.IsDeposit() {
		err = account.Unhold(record.Amount)
	} else {
		err = account.DepositAndUnhold(record.Amount)
	}
	if err != nil {
		return err
	}
	account.Lock()

	return e.disputes.SetDisputed(ctx, tx.Key(), false)
}
