// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

const (
	// RoleNormal is the baseline role of a signed-in account.
	RoleNormal = "Normal"
	// RoleAdmin marks administrative accounts.
	RoleAdmin = "Admin"
)

// Roles is a set of role names kept as a slice for JWT compatibility.
type Roles []string

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role string) bool {
	return slices.Contains(rs, role)
}

// ContainsAny reports whether at least one of the given roles is present.
func (rs Roles) ContainsAny(roles ...string) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// HasBlank reports whether any entry is empty or whitespace-only.
func (rs Roles) HasBlank() bool {
	return slices.ContainsFunc(rs, func(r string) bool {
		return strings.TrimSpace(r) == ""
	})
}

// Normalize drops blank entries and duplicates, keeping first-seen order.
func (rs Roles) Normalize() Roles {
	result := make(Roles, 0, len(rs))
	for _, r := range rs {
		if strings.TrimSpace(r) == "" || result.Contains(r) {
			continue
		}
		result = append(result, r)
	}

	return result
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	copy(result, rs)

	return result
}
