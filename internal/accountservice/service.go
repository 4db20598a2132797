// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mem-bank/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, customerID int64, initialDeposit decimal.Decimal) (domain.AccountInfo, error)
	Get(ctx context.Context, accountID string) (domain.AccountInfo, error)
	List(ctx context.Context) ([]domain.AccountInfo, error)
}

// CustomerRepo provides access to the customer directory.
type CustomerRepo interface {
	Exists(ctx context.Context, customerID int64) bool
	Get(ctx context.Context, customerID int64) (domain.Customer, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo      Repo
	customers CustomerRepo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo, cr CustomerRepo) *Service {
	return &Service{
		repo:      ar,
		customers: cr,
	}
}

// Create opens a new account for the customer with the given initial deposit.
func (s *Service) Create(ctx context.Context, customerID int64, initialDeposit decimal.Decimal) (domain.AccountInfo, error) {
	l := zerolog.Ctx(ctx)

	if !s.customers.Exists(ctx, customerID) {
		l.Info().Err(domain.ErrCustomerNotFound).Int64("customer_id", customerID).Send()
		return domain.AccountInfo{}, domain.ErrCustomerNotFound
	}

	if initialDeposit.IsNegative() {
		l.Info().Err(domain.ErrNegativeDeposit).Str("initial_deposit", initialDeposit.String()).Send()
		return domain.AccountInfo{}, domain.ErrNegativeDeposit
	}

	account, err := s.repo.Create(ctx, customerID, initialDeposit)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	event := l.Info().
		Str("account_id", account.AccountID).
		Int64("customer_id", customerID)

	if customer, err := s.customers.Get(ctx, customerID); err == nil {
		event = event.Str("customer_name", customer.Name)
	}

	event.Msg("account created")

	return account, nil
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]domain.AccountInfo, error) {
	return s.repo.List(ctx)
}

// GetBalance returns the current balance of the account.
func (s *Service) GetBalance(ctx context.Context, accountID string) (domain.Balance, error) {
	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		AccountID: account.AccountID,
		Balance:   account.Balance,
	}, nil
}
