package entity

import "time"

// Client is a directory record keyed by email. Identity, contact and
// payment fields are carried through unchanged from ingestion.
type Client struct {
	LastName         string
	FirstNames       string
	Email            string
	Address          string
	CreditCardNumber string
	ExpiryDate       time.Time
}
