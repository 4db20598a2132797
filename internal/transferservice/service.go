// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/mem-bank/internal/domain"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo Repo
}

// New return transfer service struct to manage transfer bussines logic.
func New(tr Repo) *Service {
	return &Service{
		repo: tr,
	}
}

// Transfer executes the transfer and returns its record.
//
// Account lookup, amount and balance checks run inside the repository
// transaction, so a failed transfer leaves both balances untouched.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	result, err := s.repo.Transfer(ctx, arg)
	if err != nil {
		return domain.Transfer{}, err
	}

	l.Info().
		Str("from_account_id", result.FromAccountID).
		Str("to_account_id", result.ToAccountID).
		Str("amount", result.Amount.String()).
		Msg("transfer completed")

	return result, nil
}

// ListByAccount returns the transfer history of the account.
func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	return s.repo.ListByAccount(ctx, accountID)
}
