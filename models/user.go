// models/user.go
package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Elevated reports whether the role carries cross-account administrative
// visibility (may view any account's orders and invoices).
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`                   // Unique account identifier (UUID).
	Name         string    `bson:"name" json:"name"`               // Display name.
	Email        string    `bson:"email" json:"email"`             // Unique email address.
	PhoneNumber  string    `bson:"phone_number" json:"phone_number"`
	Role         Role      `bson:"role" json:"role"`               // customer, admin or superadmin.
	PasswordHash string    `bson:"password_hash" json:"-"`         // bcrypt hash, never serialized.
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`  // SHA-256 of the current auth token.
	Address      Address   `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
