package model

import (
	"fmt"
	"strings"
)

// Customer represents a person who can hold reservations.  Customers
// exist independently of hotels and reservations; deleting one does
// not touch the reservations that reference it.
//
// Fields:
//  ID    – unique, immutable identifier.
//  Name  – full name, non-empty.
//  Email – contact address; must contain "@" and a "." in the domain.
type Customer struct {
	ID    string `json:"customer_id"` // record key
	Name  string `json:"name"`        // full name
	Email string `json:"email"`       // contact address
}

// NewCustomer builds a customer with a fresh identifier, validating
// the result before returning it.
func NewCustomer(name, email string) (*Customer, error) {
	c := &Customer{ID: NewID(), Name: name, Email: email}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the customer invariants.  The email rule is
// deliberately shallow: one "@" separating a local part from a domain
// that contains a dot.
func (c *Customer) Validate() error {
	if c.ID == "" {
		return &ValidationError{Reason: "customer identifier is required"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Reason: "customer name must be a non-empty string"}
	}
	local, domain, ok := strings.Cut(c.Email, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return &ValidationError{Reason: "customer email must be a valid email address"}
	}
	return nil
}

// String renders the customer for console output.
func (c *Customer) String() string {
	return fmt.Sprintf("Customer(%s): %s <%s>", c.ID, c.Name, c.Email)
}
