// Package models contains the persisted entities of the rental marketplace.
package models

import "time"

// User is a registered account. PasswordHash is an encoded argon2id hash and
// must never leave the credential store boundary.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	RegisteredAt time.Time
}
