package model

import "time"

// Address is a shipping destination owned by a user.
type Address struct {
	ID         string
	UserID     string
	Label      string
	Recipient  string
	Phone      string
	Street     string
	City       string
	Province   string
	PostalCode string
	IsDefault  bool
	CreatedAt  time.Time
}
