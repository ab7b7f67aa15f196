// Package memory implements the storage interfaces with in-process maps.
// A replay run is finite and single-process (no persistence across runs), so
// this is the only implementation the system needs. Maps are mutex-guarded
// to support the sharded processor; per-client ordering is the processor's
// concern, not the store's.
package memory

import (
	"sync"

	"github.com/fusillicode/toyoments/pkg/ledger"
	"github.com/fusillicode/toyoments/pkg/models"
	"github.com/fusillicode/toyoments/pkg/storage"
)

// Store implements the Storage interface with in-memory maps.
type Store struct {
	mu         sync.RWMutex
	accounts   map[models.ClientID]*ledger.Account
	disputable map[models.TxKey]models.DisputableTransaction
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		accounts:   make(map[models.ClientID]*ledger.Account),
		disputable: make(map[models.TxKey]models.DisputableTransaction),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
