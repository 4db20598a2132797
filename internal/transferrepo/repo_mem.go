// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/mem-bank/internal/domain"
	"github.com/go-petr/mem-bank/internal/memdb"
)

// RepoMem facilitates transfer repository layer logic.
type RepoMem struct {
	db *memdb.DB
}

// NewRepoMem returns transfer RepoMem.
func NewRepoMem(db *memdb.DB) *RepoMem {
	return &RepoMem{
		db: db,
	}
}

// Transfer moves money between the accounts and records the transfer.
//
// The source account is resolved first, then the target. Both balances and
// the log change under a single lock.
func (r *RepoMem) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Transfer

	err := r.db.Update(func(tx *memdb.Tx) error {
		from, err := tx.Accounts.Get(arg.FromAccountID)
		if err != nil {
			return err
		}

		to, err := tx.Accounts.Get(arg.ToAccountID)
		if err != nil {
			return err
		}

		result, err = from.TransferTo(to, arg.Amount, tx.Transfers)

		return err
	})
	if err != nil {
		l.Info().Err(err).Msgf("Transfer(ctx, %+v)", arg)
		return domain.Transfer{}, err
	}

	return result, nil
}

// ListByAccount returns transfers where the account is sender or receiver.
func (r *RepoMem) ListByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	var result []domain.Transfer

	err := r.db.View(func(tx *memdb.Tx) error {
		if _, err := tx.Accounts.Get(accountID); err != nil {
			return err
		}

		result = tx.Transfers.ForAccount(accountID)

		return nil
	})
	if err != nil {
		l.Info().Err(err).Str("account_id", accountID).Send()
		return nil, err
	}

	return result, nil
}
