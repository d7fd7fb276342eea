// Package auth holds the single authorization predicate shared by the admin
// page gate and the API handler gate, plus session tokens and password hashing.
package auth

import (
	pathpkg "path"
	"strings"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the resolved session of the caller.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Policy is the access level a route or page demands.
type Policy int

const (
	Public Policy = iota
	Session
	Admin
)

// Allow reports whether the caller (nil when anonymous) satisfies p.
// It is evaluated fresh on every request.
func Allow(p Policy, id *Identity) bool {
	switch p {
	case Public:
		return true
	case Session:
		return id != nil
	case Admin:
		return id != nil && id.IsAdmin()
	default:
		return false
	}
}

const (
	AdminPagePrefix = "/admin"
	LoginPath       = "/admin/login"
)

// PagePolicy maps an admin panel path to the policy guarding it.
func PagePolicy(path string) Policy {
	if path == LoginPath || strings.HasPrefix(path, LoginPath+"/") || isStaticAsset(path) {
		return Public
	}
	if path == AdminPagePrefix || strings.HasPrefix(path, AdminPagePrefix+"/") {
		return Admin
	}
	return Public
}

// isStaticAsset reports whether path names a bundled file such as a script
// or stylesheet. The login page loads these before any session exists.
// HTML documents stay gated.
func isStaticAsset(path string) bool {
	ext := pathpkg.Ext(pathpkg.Base(path))
	return ext != "" && ext != ".html"
}

// AllowPage is the page gate's view of Allow.
func AllowPage(path string, id *Identity) bool {
	return Allow(PagePolicy(path), id)
}
