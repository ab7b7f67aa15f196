package memory

import (
	"context"
	"fmt"

	"github.com/fusillicode/toyoments/pkg/models"
	"github.com/fusillicode/toyoments/pkg/storage"
)

// RecordDisputable inserts the record, overwriting any prior record under
// the same (client, tx) key. Transaction ids are assumed not to repeat
// within one client's stream; if they do, last-write-wins.
func (s *Store) RecordDisputable(_ context.Context, record models.DisputableTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disputable[record.Key()] = record
	return nil
}

// GetDisputable retrieves the record stored under key.
func (s *Store) GetDisputable(_ context.Context, key models.TxKey) (models.DisputableTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.disputable[key]
	if !ok {
		return models.DisputableTransaction{}, fmt.Errorf("%w, %s", storage.ErrTransactionNotFound, key)
	}
	return record, nil
}

// SetDisputed flips the disputed flag on the record stored under key.
func (s *Store) SetDisputed(_ context.Context, key models.TxKey, disputed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.disputable[key]
	if !ok {
		return fmt.Errorf("%w, %s", storage.ErrTransactionNotFound, key)
	}
	record.Disputed = disputed
	s.disputable[key] = record
	return nil
}
