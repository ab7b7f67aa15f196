package storage

import "errors"

// ErrTransactionNotFound is returned when a dispute, resolve or chargeback
// references a transaction id with no live disputable record for that client.
var ErrTransactionNotFound = errors.New("transaction not found")
