// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"
	"slices"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
)

// Permission is one of the actions a security context can grant.
type Permission string

const (
	PermissionView   Permission = "view"
	PermissionAdd    Permission = "add"
	PermissionEdit   Permission = "edit"
	PermissionDelete Permission = "delete"
	PermissionLive   Permission = "live"
)

// Condition scopes a permission check to a security context and, optionally,
// a content locale.
type Condition struct {
	Context string
	Locale  string
}

// rolePermissions lists what each role may do in any security context.
var rolePermissions = map[UserRole][]Permission{
	RoleAdmin:  {PermissionView, PermissionAdd, PermissionEdit, PermissionDelete, PermissionLive},
	RoleEditor: {PermissionView, PermissionAdd, PermissionEdit, PermissionLive},
	RoleAuthor: {PermissionView, PermissionAdd, PermissionEdit},
	RoleMember: {PermissionView},
}

// Checker decides whether token claims satisfy a permission in a condition.
type Checker struct{}

// NewChecker returns a role-based permission checker.
func NewChecker() *Checker {
	return &Checker{}
}

// CheckPermission returns nil when claims grant permission under condition,
// 401 for anonymous callers and 403 otherwise.
func (checker *Checker) CheckPermission(claims *AuthClaims, condition Condition, permission Permission) error {
	if claims == nil {
		return apperr.Unauthorized("Authentication required")
	}

	granted := rolePermissions[UserRole(claims.Role)]
	if !slices.Contains(granted, permission) {
		return apperr.Forbidden(fmt.Sprintf("Permission %q denied for %s", permission, condition.Context))
	}

	if condition.Locale != "" && len(claims.Locales) > 0 && !slices.Contains(claims.Locales, condition.Locale) {
		return apperr.Forbidden(fmt.Sprintf("Permission %q denied for locale %q", permission, condition.Locale))
	}

	return nil
}
