package storage

import (
	"context"

	"github.com/fusillicode/toyoments/pkg/ledger"
	"github.com/fusillicode/toyoments/pkg/models"
)

// AccountStore defines the interface for the per-run account registry.
// Accounts are created lazily on first reference and never deleted during a
// run.
type AccountStore interface {
	// GetOrCreateAccount returns the account for the given client, creating
	// a fresh zero-balance unlocked account on first reference.
	GetOrCreateAccount(ctx context.Context, clientID models.ClientID) (*ledger.Account, error)

	// ListAccounts returns a snapshot of every account seen during the run.
	// Order is unspecified; deterministic output ordering is the reporting
	// sink's responsibility.
	ListAccounts(ctx context.Context) ([]*ledger.Account, error)
}
