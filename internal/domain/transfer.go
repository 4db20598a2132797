package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates that the transfer amount is zero or negative.
	ErrInvalidAmount = errors.New("Transfer amount must be positive")
	// ErrInsufficientFunds indicates that the account does not have sufficient balance.
	ErrInsufficientFunds = errors.New("Insufficient funds")
	// ErrSameAccount indicates that source and target of the transfer are the same account.
	ErrSameAccount = errors.New("Cannot transfer to the same account")
)

// Transfer holds transfer data between two accounts.
type Transfer struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"` // must be positive
	Timestamp     time.Time       `json:"timestamp"`
}

// CreateTransferParams is the input data for the transfer transaction.
type CreateTransferParams struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Journal records completed transfers.
type Journal interface {
	Append(t Transfer)
}

// TransferTo moves amount from a to target and records the transfer in j.
//
// Either all of debit, credit and record happen or none of them does.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal, j Journal) (Transfer, error) {
	if !amount.IsPositive() {
		return Transfer{}, ErrInvalidAmount
	}

	if a == target || a.id == target.id {
		return Transfer{}, ErrSameAccount
	}

	if a.balance.LessThan(amount) {
		return Transfer{}, ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	target.balance = target.balance.Add(amount)

	t := Transfer{
		FromAccountID: a.id,
		ToAccountID:   target.id,
		Amount:        amount,
		Timestamp:     time.Now().UTC(),
	}
	j.Append(t)

	return t, nil
}
