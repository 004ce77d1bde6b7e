// Package allowlist restricts signup and login to a configured set of
// email addresses. The list comes from the ALLOWED_EMAILS environment
// variable as a comma-separated string, e.g.
//
//	ALLOWED_EMAILS=mom@gmail.com,dad@gmail.com,sister@gmail.com
//
// An empty or unset variable means open registration.
package allowlist

import "strings"

// List is the parsed email allow-list. The zero value allows everyone.
type List struct {
	emails map[string]bool
}

// Parse builds a List from a comma-separated string. Entries are trimmed
// and lower-cased; empty entries are dropped.
func Parse(raw string) *List {
	l := &List{emails: make(map[string]bool)}
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			l.emails[e] = true
		}
	}
	return l
}

// Allowed reports whether email may register or log in. If no allow-list
// is configured, every email is allowed.
func (l *List) Allowed(email string) bool {
	if l == nil || len(l.emails) == 0 {
		return true
	}
	return l.emails[strings.ToLower(strings.TrimSpace(email))]
}
