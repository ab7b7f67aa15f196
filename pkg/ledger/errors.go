package ledger

import "errors"

// ErrOverflow is returned when an arithmetic operation's true result cannot
// be represented. Balances are never silently clamped or wrapped; the
// mutation is rejected instead.
var ErrOverflow = errors.New("balance overflow")

// ErrInsufficientFunds is returned when a debit exceeds the relevant balance
// bucket.
var ErrInsufficientFunds = errors.New("insufficient funds")
