package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusillicode/toyoments/pkg/models"
	"github.com/fusillicode/toyoments/pkg/storage"
	"github.com/fusillicode/toyoments/pkg/storage/memory"
)

func TestGetOrCreateAccount(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	t.Run("Creates on first reference", func(t *testing.T) {
		account, err := store.GetOrCreateAccount(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, models.ClientID(1), account.ClientID())
		assert.True(t, account.Available().IsZero())
		assert.True(t, account.Held().IsZero())
		assert.False(t, account.Locked())
	})

	t.Run("Returns the same account afterwards", func(t *testing.T) {
		first, err := store.GetOrCreateAccount(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, first.Deposit(models.MustAmount("5.00")))

		second, err := store.GetOrCreateAccount(ctx, 2)

		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}

func TestListAccounts(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = store.GetOrCreateAccount(ctx, 1)
	require.NoError(t, err)
	_, err = store.GetOrCreateAccount(ctx, 2)
	require.NoError(t, err)
	_, err = store.GetOrCreateAccount(ctx, 2)
	require.NoError(t, err)

	accounts, err = store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestDisputableRecords(t *testing.T) {
	ctx := context.Background()
	record := models.DisputableTransaction{
		Client: 1,
		ID:     10,
		Amount: models.MustAmount("5.50"),
		Kind:   models.TxDeposit,
	}

	t.Run("Record then Get", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.RecordDisputable(ctx, record))

		got, err := store.GetDisputable(ctx, record.Key())

		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("Get unknown key", func(t *testing.T) {
		store := memory.New()

		_, err := store.GetDisputable(ctx, models.TxKey{Client: 1, Tx: 99})

		assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
	})

	t.Run("Record overwrites existing key", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.RecordDisputable(ctx, record))

		updated := record
		updated.Amount = models.MustAmount("9.99")
		require.NoError(t, store.RecordDisputable(ctx, updated))

		got, err := store.GetDisputable(ctx, record.Key())
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(models.MustAmount("9.99")))
	})

	t.Run("SetDisputed flips the flag", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.RecordDisputable(ctx, record))

		require.NoError(t, store.SetDisputed(ctx, record.Key(), true))
		got, err := store.GetDisputable(ctx, record.Key())
		require.NoError(t, err)
		assert.True(t, got.Disputed)

		require.NoError(t, store.SetDisputed(ctx, record.Key(), false))
		got, err = store.GetDisputable(ctx, record.Key())
		require.NoError(t, err)
		assert.False(t, got.Disputed)
	})

	t.Run("SetDisputed unknown key", func(t *testing.T) {
		store := memory.New()

		err := store.SetDisputed(ctx, models.TxKey{Client: 3, Tx: 4}, true)

		assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
	})

	t.Run("Same tx id under different clients stays independent", func(t *testing.T) {
		store := memory.New()
		other := record
		other.Client = 2
		require.NoError(t, store.RecordDisputable(ctx, record))
		require.NoError(t, store.RecordDisputable(ctx, other))

		require.NoError(t, store.SetDisputed(ctx, record.Key(), true))

		got, err := store.GetDisputable(ctx, other.Key())
		require.NoError(t, err)
		assert.False(t, got.Disputed)
	})
}
