package domain

import "errors"

// ErrCustomerNotFound indicates that the customer is not in the directory.
var ErrCustomerNotFound = errors.New("Customer not found")

// Customer holds customer data. Customers are seeded at startup and never change.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
