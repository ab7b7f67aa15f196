package models

import "fmt"

// ClientID identifies a client account. Transaction ids are scoped per
// client, so a ClientID is always needed alongside a TxID to name a
// transaction unambiguously.
type ClientID uint16

// TxID identifies a transaction within a single client's stream.
type TxID uint32

// TxKey is the composite key for disputable transactions. Two clients may
// legitimately reuse the same numeric transaction id; keying by the pair
// keeps their records fully independent.
type TxKey struct {
	Client ClientID
	Tx     TxID
}

func (k TxKey) String() string {
	return fmt.Sprintf("client=%d tx=%d", k.Client, k.Tx)
}

// TxKind defines the possible kinds of replayed transactions.
type TxKind string

const (
	TxDeposit    TxKind = "deposit"
	TxWithdrawal TxKind = "withdrawal"
	TxDispute    TxKind = "dispute"
	TxResolve    TxKind = "resolve"
	TxChargeback TxKind = "chargeback"
)

// Transaction is one record from the transaction log, already validated for
// shape: known kind, client and transaction ids present, and a non-negative
// Amount for deposits and withdrawals. Dispute, resolve and chargeback rows
// carry no amount of their own; they reference a prior transaction by id.
type Transaction struct {
	Kind   TxKind
	Client ClientID
	ID     TxID
	Amount Amount
}

// Key returns the (client, tx) key this transaction is addressed by.
func (t Transaction) Key() TxKey {
	return TxKey{Client: t.Client, Tx: t.ID}
}

// Disputable reports whether this transaction becomes eligible for dispute
// once applied. Only deposits and withdrawals do; the dispute lifecycle
// transactions act on existing records without creating new ones.
func (t Transaction) Disputable() bool {
	return t.Kind == TxDeposit || t.Kind == TxWithdrawal
}

func (t Transaction) String() string {
	if t.Disputable() {
		return fmt.Sprintf("tx=(%s id=%d client_id=%d amount=%s)", t.Kind, t.ID, t.Client, t.Amount)
	}
	return fmt.Sprintf("tx=(%s id=%d client_id=%d)", t.Kind, t.ID, t.Client)
}

// NewDeposit builds a deposit transaction.
func NewDeposit(client ClientID, id TxID, amount Amount) Transaction {
	return Transaction{Kind: TxDeposit, Client: client, ID: id, Amount: amount}
}

// NewWithdrawal builds a withdrawal transaction.
func NewWithdrawal(client ClientID, id TxID, amount Amount) Transaction {
	return Transaction{Kind: TxWithdrawal, Client: client, ID: id, Amount: amount}
}

// NewDispute builds a dispute referencing a prior transaction.
func NewDispute(client ClientID, id TxID) Transaction {
	return Transaction{Kind: TxDispute, Client: client, ID: id}
}

// NewResolve builds a resolve referencing a disputed transaction.
func NewResolve(client ClientID, id TxID) Transaction {
	return Transaction{Kind: TxResolve, Client: client, ID: id}
}

// NewChargeback builds a chargeback referencing a disputed transaction.
func NewChargeback(client ClientID, id TxID) Transaction {
	return Transaction{Kind: TxChargeback, Client: client, ID: id}
}

// DisputableTransaction is the ledger record kept for every successfully
// applied deposit or withdrawal. It persists for the remainder of the run,
// even after a resolve, so the same transaction may be disputed again.
type DisputableTransaction struct {
	Client   ClientID
	ID       TxID
	Amount   Amount
	Kind     TxKind
	Disputed bool
}

// Key returns the (client, tx) key the record is stored under.
func (d DisputableTransaction) Key() TxKey {
	return TxKey{Client: d.Client, Tx: d.ID}
}

// IsDeposit reports whether the recorded transaction was a deposit. Dispute
// and chargeback handling move funds differently for deposits and
// withdrawals.
func (d DisputableTransaction) IsDeposit() bool {
	return d.Kind == TxDeposit
}
