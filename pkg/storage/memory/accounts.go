package memory

import (
	"context"

	"github.com/fusillicode/toyoments/pkg/ledger"
	"github.com/fusillicode/toyoments/pkg/models"
)

// GetOrCreateAccount returns the existing account for the client or inserts
// a fresh zero-balance unlocked one. Never fails in this implementation.
func (s *Store) GetOrCreateAccount(_ context.Context, clientID models.ClientID) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[clientID]
	if !ok {
		account = ledger.NewAccount(clientID)
		s.accounts[clientID] = account
	}
	return account, nil
}

// ListAccounts returns every account created during the run, in map order.
func (s *Store) ListAccounts(_ context.Context) ([]*ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*ledger.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}
