// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role names as stored in the users collection.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is the account entity. The ID is the store-native object id encoded
// as a hex string; the domain layer never sees driver types.
type User struct {
	ID           string    // Hex-encoded object id of the user document.
	Name         string    // Display name supplied at registration.
	Email        string    // Login identifier, unique across the users collection.
	PasswordHash string    // bcrypt hash, never the plaintext password.
	Role         string    // One of the Role* constants.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
