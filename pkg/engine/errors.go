package engine

import "errors"

// ErrUnrelatedTransaction is returned when the supplied account does not
// belong to the transaction's client. The caller is expected to resolve the
// matching account, but the engine does not trust that silently.
var ErrUnrelatedTransaction = errors.New("transaction not related to the account")

// ErrAccountLocked is returned for any transaction targeting an account that
// a chargeback has already locked.
var ErrAccountLocked = errors.New("cannot process transaction, locked account")

// ErrAlreadyDisputed is returned when disputing a transaction whose dispute
// is already open.
var ErrAlreadyDisputed = errors.New("transaction already disputed")

// ErrNotDisputed is returned when resolving or charging back a transaction
// that has no open dispute.
var ErrNotDisputed = errors.New("transaction not disputed")
