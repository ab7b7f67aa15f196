package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fusillicode/toyoments/pkg/ledger"
)

// WriteAccounts serializes the final account snapshot to w as CSV in
// ascending client id order. The registry stays a map for O(1) updates
// during the run; the one-shot sort here is what makes the report
// deterministic.
//
// Writing is best-effort: a row whose total cannot be represented is skipped
// and reported, and the remaining rows are still written. All collected
// errors are returned.
func WriteAccounts(w io.Writer, accounts []*ledger.Account) []error {
	sorted := make([]*ledger.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ClientID() < sorted[j].ClientID()
	})

	var errs []error
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client_id", "available", "held", "total", "locked"}); err != nil {
		return []error{fmt.Errorf("failed to write report header: %w", err)}
	}

	for _, account := range sorted {
		total, err := account.Total()
		if err != nil {
			errs = append(errs, fmt.Errorf("overflow in total calculation for %s: %w", account, err))
			continue
		}
		row := []string{
			strconv.FormatUint(uint64(account.ClientID()), 10),
			account.Available().String(),
			account.Held().String(),
			total.String(),
			strconv.FormatBool(account.Locked()),
		}
		if err := cw.Write(row); err != nil {
			errs = append(errs, fmt.Errorf("failed to write report row for %s: %w", account, err))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush report: %w", err))
	}
	return errs
}
