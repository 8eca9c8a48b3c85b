// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole is the authorization level carried in an access token.
type UserRole string

const (
	// RoleAdmin may do everything, including deleting content.
	RoleAdmin UserRole = "admin"

	// RoleEditor manages content and decides what goes live.
	RoleEditor UserRole = "editor"

	// RoleAuthor writes content but cannot publish it.
	RoleAuthor UserRole = "author"

	// RoleMember may only read the admin API.
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 30
	case RoleAuthor:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
