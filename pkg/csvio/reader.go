// Package csvio adapts the delimited-text boundary: it parses transaction
// logs into validated models.Transaction values and serializes final account
// snapshots back out. No business rules live here; malformed rows never
// reach the engine.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fusillicode/toyoments/pkg/models"
)

// RowError reports a single malformed row. The reader stays usable after
// returning one, so the caller can log the row and keep consuming the rest
// of the log.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("failed to deserialize transaction at line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader streams transactions from a CSV log with the header
// `type,client,tx,amount`. Fields are whitespace-trimmed; dispute, resolve
// and chargeback rows may leave the amount column empty.
type Reader struct {
	csv        *csv.Reader
	headerRead bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Row width varies: lifecycle transactions may omit the amount column
	// entirely. Width is validated per row instead.
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Next returns the next transaction in the log. It returns io.EOF once the
// log is exhausted, a *RowError for a malformed row (recoverable; call Next
// again), and any other error for an unreadable source.
func (r *Reader) Next() (models.Transaction, error) {
	if !r.headerRead {
		if err := r.readHeader(); err != nil {
			return models.Transaction{}, err
		}
	}

	record, err := r.csv.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return models.Transaction{}, &RowError{Line: parseErr.Line, Err: parseErr.Err}
		}
		return models.Transaction{}, err
	}

	line, _ := r.csv.FieldPos(0)
	tx, err := parseRow(record)
	if err != nil {
		return models.Transaction{}, &RowError{Line: line, Err: err}
	}
	return tx, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) < 3 || header[0] != "type" || header[1] != "client" || header[2] != "tx" {
		return fmt.Errorf("unexpected CSV header %v, want type,client,tx,amount", header)
	}
	r.headerRead = true
	return nil
}

func parseRow(record []string) (models.Transaction, error) {
	if len(record) < 3 {
		return models.Transaction{}, fmt.Errorf("row has %d fields, want at least 3", len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	client, err := parseClientID(record[1])
	if err != nil {
		return models.Transaction{}, err
	}
	id, err := parseTxID(record[2])
	if err != nil {
		return models.Transaction{}, err
	}

	kind := models.TxKind(record[0])
	switch kind {
	case models.TxDeposit, models.TxWithdrawal:
		amount, err := parseAmountField(record)
		if err != nil {
			return models.Transaction{}, err
		}
		return models.Transaction{Kind: kind, Client: client, ID: id, Amount: amount}, nil
	case models.TxDispute, models.TxResolve, models.TxChargeback:
		return models.Transaction{Kind: kind, Client: client, ID: id}, nil
	default:
		return models.Transaction{}, fmt.Errorf(
			"unknown variant %q, expected one of deposit, withdrawal, dispute, resolve, chargeback", record[0])
	}
}

func parseClientID(s string) (models.ClientID, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid client id %q: %w", s, err)
	}
	return models.ClientID(v), nil
}

func parseTxID(s string) (models.TxID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return models.TxID(v), nil
}

func parseAmountField(record []string) (models.Amount, error) {
	if len(record) < 4 || record[3] == "" {
		return models.Amount{}, errors.New("missing field amount")
	}
	return models.ParseAmount(record[3])
}
