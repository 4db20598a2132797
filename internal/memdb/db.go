// Package memdb keeps accounts and transfers in process memory.
//
// All state is lost when the process exits.
package memdb

import "sync"

// Tx gives access to the stores while DB holds its lock.
// A Tx must not be used after the function it was passed to returns.
type Tx struct {
	Accounts  *AccountStore
	Transfers *TransactionLog
}

// DB owns the account store and the transaction log.
type DB struct {
	mu sync.RWMutex
	tx *Tx
}

// New returns an empty DB.
func New() *DB {
	return &DB{
		tx: &Tx{
			Accounts:  newAccountStore(),
			Transfers: &TransactionLog{},
		},
	}
}

// View runs fn under a shared lock. fn must not mutate state.
func (db *DB) View(fn func(tx *Tx) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(db.tx)
}

// Update runs fn under an exclusive lock.
//
// Changes are not rolled back when fn returns an error, so fn has to check
// all preconditions before mutating.
func (db *DB) Update(fn func(tx *Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return fn(db.tx)
}
