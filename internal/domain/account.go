// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("Account not found")
	// ErrAccountAlreadyExists indicates that an account with the given id already exists.
	ErrAccountAlreadyExists = errors.New("Account already exists")
	// ErrNegativeDeposit indicates that the initial deposit is below zero.
	ErrNegativeDeposit = errors.New("Initial deposit cannot be negative")
)

// NewAccountID builds the human readable account identifier from the customer
// id and the per-customer sequence number.
func NewAccountID(customerID int64, seq int) string {
	return fmt.Sprintf("customer_%d_account_%d", customerID, seq)
}

// Account holds a customer balance.
//
// The balance can only be changed by TransferTo, callers read it through
// accessors or an AccountInfo snapshot.
type Account struct {
	id         string
	customerID int64
	balance    decimal.Decimal
}

// NewAccount returns account with the given initial deposit as its balance.
func NewAccount(id string, customerID int64, initialDeposit decimal.Decimal) (*Account, error) {
	if initialDeposit.IsNegative() {
		return nil, ErrNegativeDeposit
	}

	return &Account{
		id:         id,
		customerID: customerID,
		balance:    initialDeposit,
	}, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// CustomerID returns id of the customer owning the account.
func (a *Account) CustomerID() int64 { return a.customerID }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Info returns a copy of the account data safe to hand out of the store.
func (a *Account) Info() AccountInfo {
	return AccountInfo{
		AccountID:  a.id,
		CustomerID: a.customerID,
		Balance:    a.balance,
	}
}

// AccountInfo is a read-only snapshot of an account.
type AccountInfo struct {
	AccountID  string          `json:"account_id"`
	CustomerID int64           `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
}

// Balance holds the current balance of an account.
type Balance struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}
