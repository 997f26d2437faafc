// Package roles derives the effective authorization role from stored state.
// The stored level is never trusted on its own: the domain override is applied
// at every authorization decision, so a stale level cannot demote a
// domain-admin account.
package roles

import "strings"

const (
	Admin  = "admin"
	Member = "member"
)

// Policy is the single place role derivation happens.
type Policy struct {
	// AdminDomain promotes any account whose email belongs to the
	// organization's own domain.
	AdminDomain string
	// AdminLevel is the stored-level threshold at or above which an account
	// counts as admin.
	AdminLevel int
}

// Effective returns the role granted to an account with the given email and
// stored level.
func (p Policy) Effective(email string, level int) string {
	if p.IsAdminDomain(email) {
		return Admin
	}
	if level >= p.AdminLevel {
		return Admin
	}
	return Member
}

// IsAdminDomain reports whether the email belongs to the administrative
// domain. Subdomains do not match.
func (p Policy) IsAdminDomain(email string) bool {
	if p.AdminDomain == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@"+strings.ToLower(p.AdminDomain))
}
