package memdb

import "github.com/go-petr/mem-bank/internal/domain"

// TransactionLog is an append-only sequence of transfers.
//
// TransactionLog is not safe for concurrent use, DB guards it.
type TransactionLog struct {
	records []domain.Transfer
}

// Append adds the transfer to the end of the log.
func (l *TransactionLog) Append(t domain.Transfer) {
	l.records = append(l.records, t)
}

// ForAccount returns, in append order, transfers where the account is sender or receiver.
func (l *TransactionLog) ForAccount(accountID string) []domain.Transfer {
	out := []domain.Transfer{}

	for _, t := range l.records {
		if t.FromAccountID == accountID || t.ToAccountID == accountID {
			out = append(out, t)
		}
	}

	return out
}

// Len returns the number of recorded transfers.
func (l *TransactionLog) Len() int {
	return len(l.records)
}
