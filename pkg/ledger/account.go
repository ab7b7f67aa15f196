// Package ledger holds the per-client account state and the checked mutation
// primitives the payment engine drives. Fields are unexported: the invariants
// (available >= 0, held >= 0, locked never resets) hold because every write
// path goes through a method that validates the full result before committing
// any of it.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fusillicode/toyoments/pkg/models"
)

// maxBalance is the largest magnitude a balance bucket (or the reported
// total) may reach. Results beyond it are reported as ErrOverflow.
var maxBalance = decimal.RequireFromString("79228162514264337593543950335")

// Account is the balance state for one client: funds available for
// withdrawal, funds held pending dispute resolution, and the terminal locked
// flag set by a chargeback.
type Account struct {
	clientID  models.ClientID
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(clientID models.ClientID) *Account {
	return &Account{
		clientID:  clientID,
		available: decimal.Zero,
		held:      decimal.Zero,
	}
}

// ClientID returns the owning client's id.
func (a *Account) ClientID() models.ClientID {
	return a.clientID
}

// Available returns the funds spendable right now.
func (a *Account) Available() decimal.Decimal {
	return a.available
}

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() decimal.Decimal {
	return a.held
}

// Locked reports whether a chargeback has permanently locked the account.
func (a *Account) Locked() bool {
	return a.locked
}

// Total returns available + held. The buckets are bounded independently, so
// their sum must itself be overflow-checked before it is reported.
func (a *Account) Total() (decimal.Decimal, error) {
	return a.checkedAdd(a.available, a.held)
}

// Deposit adds amount to available funds.
func (a *Account) Deposit(amount models.Amount) error {
	available, err := a.checkedAdd(a.available, amount.Decimal())
	if err != nil {
		return err
	}
	a.available = available
	return nil
}

// Withdraw subtracts amount from available funds. The account is unchanged
// when available funds do not cover the amount.
func (a *Account) Withdraw(amount models.Amount) error {
	available, err := a.checkedSub(a.available, amount.Decimal())
	if err != nil {
		return err
	}
	a.available = available
	return nil
}

// Hold adds amount to held funds without touching available. Used when
// disputing a withdrawal, where the amount already left available at
// withdrawal time and the hold models a claim against its reversal.
func (a *Account) Hold(amount models.Amount) error {
	held, err := a.checkedAdd(a.held, amount.Decimal())
	if err != nil {
		return err
	}
	a.held = held
	return nil
}

// Unhold subtracts amount from held funds. The account is unchanged when
// held funds do not cover the amount.
func (a *Account) Unhold(amount models.Amount) error {
	held, err := a.checkedSub(a.held, amount.Decimal())
	if err != nil {
		return err
	}
	a.held = held
	return nil
}

// WithdrawAndHold atomically moves amount from available to held. Used when
// disputing a deposit: the previously credited funds are frozen. Both new
// balances are computed and validated before either is committed, so a
// failure never leaves a partial update.
func (a *Account) WithdrawAndHold(amount models.Amount) error {
	available, err := a.checkedSub(a.available, amount.Decimal())
	if err != nil {
		return err
	}
	held, err := a.checkedAdd(a.held, amount.Decimal())
	if err != nil {
		return err
	}
	a.available = available
	a.held = held
	return nil
}

// UnholdAndDeposit atomically moves amount from held back to available.
// Used when a dispute resolves in the client's favor.
func (a *Account) UnholdAndDeposit(amount models.Amount) error {
	held, err := a.checkedSub(a.held, amount.Decimal())
	if err != nil {
		return err
	}
	available, err := a.checkedAdd(a.available, amount.Decimal())
	if err != nil {
		return err
	}
	a.held = held
	a.available = available
	return nil
}

// DepositAndUnhold atomically credits amount to available and releases the
// matching hold. Used when charging back a withdrawal: the original debit is
// refunded and the claim recorded at dispute time is released.
func (a *Account) DepositAndUnhold(amount models.Amount) error {
	available, err := a.checkedAdd(a.available, amount.Decimal())
	if err != nil {
		return err
	}
	held, err := a.checkedSub(a.held, amount.Decimal())
	if err != nil {
		return err
	}
	a.available = available
	a.held = held
	return nil
}

// Lock marks the account as locked. Idempotent; the flag never resets.
func (a *Account) Lock() {
	a.locked = true
}

func (a *Account) String() string {
	return fmt.Sprintf("account=(client_id=%d available=%s held=%s locked=%t)",
		a.clientID, a.available, a.held, a.locked)
}

func (a *Account) checkedAdd(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	sum := balance.Add(amount)
	if sum.Cmp(maxBalance) > 0 {
		return decimal.Decimal{}, fmt.Errorf("%w adding %s to %s", ErrOverflow, amount, a)
	}
	return sum, nil
}

func (a *Account) checkedSub(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if balance.Cmp(amount) < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w, need %s in %s", ErrInsufficientFunds, amount, a)
	}
	diff := balance.Sub(amount)
	// Unreachable with non-negative operands; kept for symmetry with
	// checkedAdd so both paths validate their result.
	if diff.IsNegative() || diff.Cmp(maxBalance) > 0 {
		return decimal.Decimal{}, fmt.Errorf("%w subtracting %s from %s", ErrOverflow, amount, a)
	}
	return diff, nil
}
