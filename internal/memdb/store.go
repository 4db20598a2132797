package memdb

import "github.com/go-petr/mem-bank/internal/domain"

// AccountStore maps account identifiers to accounts and remembers insertion order.
//
// AccountStore is not safe for concurrent use, DB guards it.
type AccountStore struct {
	byID  map[string]*domain.Account
	order []*domain.Account
}

func newAccountStore() *AccountStore {
	return &AccountStore{byID: make(map[string]*domain.Account)}
}

// Insert adds the account keyed by its identifier.
func (s *AccountStore) Insert(a *domain.Account) error {
	if _, ok := s.byID[a.ID()]; ok {
		return domain.ErrAccountAlreadyExists
	}

	s.byID[a.ID()] = a
	s.order = append(s.order, a)

	return nil
}

// Get returns the account with the given identifier.
func (s *AccountStore) Get(accountID string) (*domain.Account, error) {
	a, ok := s.byID[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

// ListAll returns all accounts in insertion order.
func (s *AccountStore) ListAll() []*domain.Account {
	out := make([]*domain.Account, len(s.order))
	copy(out, s.order)

	return out
}

// CountForCustomer returns the number of accounts owned by the customer.
func (s *AccountStore) CountForCustomer(customerID int64) int {
	n := 0

	for _, a := range s.order {
		if a.CustomerID() == customerID {
			n++
		}
	}

	return n
}
