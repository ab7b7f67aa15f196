package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusillicode/toyoments/pkg/ledger"
	"github.com/fusillicode/toyoments/pkg/models"
)

// maxAmount is the largest balance the ledger can represent; one more unit
// on top of it must be rejected as overflow.
var maxAmount = models.MustAmount("79228162514264337593543950335")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		account := ledger.NewAccount(1)

		require.NoError(t, account.Deposit(models.MustAmount("5.50")))

		assert.True(t, account.Available().Equal(dec("5.50")))
		assert.True(t, account.Held().IsZero())
	})

	t.Run("Overflow", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(maxAmount))

		err := account.Deposit(models.MustAmount("1"))

		assert.ErrorIs(t, err, ledger.ErrOverflow)
		assert.True(t, account.Available().Equal(maxAmount.Decimal()))
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("10.00")))

		require.NoError(t, account.Withdraw(models.MustAmount("3.25")))

		assert.True(t, account.Available().Equal(dec("6.75")))
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("1.00")))

		err := account.Withdraw(models.MustAmount("1.01"))

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		assert.True(t, account.Available().Equal(dec("1.00")))
	})

	t.Run("Exact Balance", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("2.50")))

		require.NoError(t, account.Withdraw(models.MustAmount("2.50")))

		assert.True(t, account.Available().IsZero())
	})
}

func TestHoldAndUnhold(t *testing.T) {
	t.Run("Hold grows held only", func(t *testing.T) {
		account := ledger.NewAccount(1)

		require.NoError(t, account.Hold(models.MustAmount("4.00")))

		assert.True(t, account.Available().IsZero())
		assert.True(t, account.Held().Equal(dec("4.00")))
	})

	t.Run("Unhold shrinks held only", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Hold(models.MustAmount("4.00")))

		require.NoError(t, account.Unhold(models.MustAmount("1.50")))

		assert.True(t, account.Held().Equal(dec("2.50")))
	})

	t.Run("Unhold more than held", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Hold(models.MustAmount("4.00")))

		err := account.Unhold(models.MustAmount("4.01"))

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		assert.True(t, account.Held().Equal(dec("4.00")))
	})
}

func TestWithdrawAndHold(t *testing.T) {
	t.Run("Moves funds atomically", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("12.00")))

		require.NoError(t, account.WithdrawAndHold(models.MustAmount("12.00")))

		assert.True(t, account.Available().IsZero())
		assert.True(t, account.Held().Equal(dec("12.00")))
	})

	t.Run("Insufficient available leaves account unchanged", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("5.00")))

		err := account.WithdrawAndHold(models.MustAmount("5.01"))

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		assert.True(t, account.Available().Equal(dec("5.00")))
		assert.True(t, account.Held().IsZero())
	})

	t.Run("Hold overflow rolls back the withdraw", func(t *testing.T) {
		// The withdraw leg would succeed on its own; the hold leg overflows,
		// and neither balance may change.
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("5.00")))
		require.NoError(t, account.Hold(maxAmount))

		err := account.WithdrawAndHold(models.MustAmount("5.00"))

		assert.ErrorIs(t, err, ledger.ErrOverflow)
		assert.True(t, account.Available().Equal(dec("5.00")))
		assert.True(t, account.Held().Equal(maxAmount.Decimal()))
	})
}

func TestUnholdAndDeposit(t *testing.T) {
	t.Run("Releases held into available", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Hold(models.MustAmount("8.00")))

		require.NoError(t, account.UnholdAndDeposit(models.MustAmount("8.00")))

		assert.True(t, account.Available().Equal(dec("8.00")))
		assert.True(t, account.Held().IsZero())
	})

	t.Run("Deposit overflow rolls back the unhold", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(maxAmount))
		require.NoError(t, account.Hold(models.MustAmount("1.00")))

		err := account.UnholdAndDeposit(models.MustAmount("1.00"))

		assert.ErrorIs(t, err, ledger.ErrOverflow)
		assert.True(t, account.Available().Equal(maxAmount.Decimal()))
		assert.True(t, account.Held().Equal(dec("1.00")))
	})
}

func TestDepositAndUnhold(t *testing.T) {
	t.Run("Refunds and releases the hold", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Hold(models.MustAmount("3.00")))

		require.NoError(t, account.DepositAndUnhold(models.MustAmount("3.00")))

		assert.True(t, account.Available().Equal(dec("3.00")))
		assert.True(t, account.Held().IsZero())
	})

	t.Run("Insufficient held leaves account unchanged", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("5.00")))
		require.NoError(t, account.Hold(models.MustAmount("1.00")))

		err := account.DepositAndUnhold(models.MustAmount("2.00"))

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		assert.True(t, account.Available().Equal(dec("5.00")))
		assert.True(t, account.Held().Equal(dec("1.00")))
	})
}

func TestLock(t *testing.T) {
	account := ledger.NewAccount(1)
	assert.False(t, account.Locked())

	account.Lock()
	assert.True(t, account.Locked())

	// Idempotent.
	account.Lock()
	assert.True(t, account.Locked())
}

func TestTotal(t *testing.T) {
	t.Run("Sums available and held", func(t *testing.T) {
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(models.MustAmount("6.75")))
		require.NoError(t, account.Hold(models.MustAmount("3.25")))

		total, err := account.Total()

		require.NoError(t, err)
		assert.True(t, total.Equal(dec("10.00")))
	})

	t.Run("Overflow", func(t *testing.T) {
		// Both buckets are individually within range, their sum is not.
		account := ledger.NewAccount(1)
		require.NoError(t, account.Deposit(maxAmount))
		require.NoError(t, account.Hold(models.MustAmount("0.01")))

		_, err := account.Total()

		assert.ErrorIs(t, err, ledger.ErrOverflow)
	})
}
