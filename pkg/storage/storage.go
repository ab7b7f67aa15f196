package storage

// Storage defines the root interface for the entire data layer of one replay
// run. It composes all available storage operations. Components should depend
// on the more granular interfaces (AccountStore, DisputeStore) instead of
// this one.
type Storage interface {
	AccountStore
	DisputeStore
}
