// Package models defines the data records shared across the ShopLens client.
package models

import "time"

// Role labels a user's authorization level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a registered dashboard user. Credential holds the salted one-way
// derivation produced by cryptox; the plaintext password is never stored and
// never compared against Credential directly.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Credential string    `json:"credential,omitempty"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public returns a copy with the credential stripped, safe to hand to
// presentation code.
func (u User) Public() User {
	u.Credential = ""
	return u
}
