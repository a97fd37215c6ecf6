package model

import "time"

// Customer is a read model of the customer registry. The engine never
// mutates customers; it only validates references and joins names into note
// listings.
type Customer struct {
	ID        string
	FullName  string
	CPF       string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
