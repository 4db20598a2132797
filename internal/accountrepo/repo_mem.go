// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mem-bank/internal/domain"
	"github.com/go-petr/mem-bank/internal/memdb"
)

// RepoMem facilitates account repository layer logic.
type RepoMem struct {
	db *memdb.DB
}

// NewRepoMem returns account RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		db: db,
	}
}

// Create creates the next account of the customer and then returns it.
//
// The sequence number is computed and the account inserted under one lock,
// so concurrent calls for the same customer get distinct identifiers.
func (r *RepoMem) Create(ctx context.Context, customerID int64, initialDeposit decimal.Decimal) (domain.AccountInfo, error) {
	l := zerolog.Ctx(ctx)

	var info domain.AccountInfo

	err := r.db.Update(func(tx *memdb.Tx) error {
		seq := tx.Accounts.CountForCustomer(customerID) + 1

		acc, err := domain.NewAccount(domain.NewAccountID(customerID, seq), customerID, initialDeposit)
		if err != nil {
			return err
		}

		if err := tx.Accounts.Insert(acc); err != nil {
			return err
		}

		info = acc.Info()

		return nil
	})
	if err != nil {
		l.Info().Err(err).Msgf("Create(ctx, %d, %s)", customerID, initialDeposit)
		return domain.AccountInfo{}, err
	}

	return info, nil
}

// Get returns the account with the given id.
func (r *RepoMem) Get(ctx context.Context, accountID string) (domain.AccountInfo, error) {
	l := zerolog.Ctx(ctx)

	var info domain.AccountInfo

	err := r.db.View(func(tx *memdb.Tx) error {
		acc, err := tx.Accounts.Get(accountID)
		if err != nil {
			return err
		}

		info = acc.Info()

		return nil
	})
	if err != nil {
		l.Info().Err(err).Str("account_id", accountID).Send()
		return domain.AccountInfo{}, err
	}

	return info, nil
}

// List returns all accounts in creation order.
func (r *RepoMem) List(ctx context.Context) ([]domain.AccountInfo, error) {
	var result []domain.AccountInfo

	err := r.db.View(func(tx *memdb.Tx) error {
		accounts := tx.Accounts.ListAll()

		result = make([]domain.AccountInfo, 0, len(accounts))
		for _, a := range accounts {
			result = append(result, a.Info())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
