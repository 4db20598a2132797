// Package customerrepo manages the read-only customer directory.
package customerrepo

import (
	"context"

	"github.com/go-petr/mem-bank/internal/domain"
)

// DefaultCustomers is the directory the server is seeded with.
var DefaultCustomers = []domain.Customer{
	{ID: 1, Name: "Arisha Barron"},
	{ID: 2, Name: "Branden Gibson"},
	{ID: 3, Name: "Rhonda Church"},
	{ID: 4, Name: "Georgina Hazel"},
}

// RepoMem serves customers from a fixed in-memory list.
type RepoMem struct {
	customers map[int64]domain.Customer
}

// NewRepoMem returns customer RepoMem seeded with the given customers.
func NewRepoMem(seed []domain.Customer) *RepoMem {
	customers := make(map[int64]domain.Customer, len(seed))
	for _, c := range seed {
		customers[c.ID] = c
	}

	return &RepoMem{customers: customers}
}

// Exists reports whether the customer is in the directory.
func (r *RepoMem) Exists(ctx context.Context, customerID int64) bool {
	_, ok := r.customers[customerID]
	return ok
}

// Get returns the customer with the given id.
func (r *RepoMem) Get(ctx context.Context, customerID int64) (domain.Customer, error) {
	c, ok := r.customers[customerID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	return c, nil
}
