package storage

import (
	"context"

	"github.com/fusillicode/toyoments/pkg/models"
)

// DisputeStore defines the interface for the disputable transaction ledger:
// the subset of applied transactions that remain eligible for dispute, keyed
// by (client, tx). Records persist after a resolve so the same transaction
// may be disputed again.
type DisputeStore interface {
	// RecordDisputable inserts the record for an applied deposit or
	// withdrawal, overwriting any prior record under the same key.
	RecordDisputable(ctx context.Context, record models.DisputableTransaction) error

	// GetDisputable retrieves the record for the given key. Returns
	// ErrTransactionNotFound when no live record exists for that client and
	// transaction id.
	GetDisputable(ctx context.Context, key models.TxKey) (models.DisputableTransaction, error)

	// SetDisputed flips the disputed flag on an existing record. Returns
	// ErrTransactionNotFound when the record does not exist.
	SetDisputed(ctx context.Context, key models.TxKey, disputed bool) error
}
