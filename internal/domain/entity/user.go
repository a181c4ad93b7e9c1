// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credential is a login attempt. It is never persisted.
type Credential struct {
	Username string
	Password string
}

// User is an account known to the user directory.
// The directory owns it; the authentication core only reads it.
type User struct {
	Username    string         // Unique key, also the `name` claim of access tokens.
	DisplayName string         // Human-friendly name, optional.
	Password    HashedPassword // Per-user salted hash.
	Roles       Roles          // Role claims carried into access tokens.
}
