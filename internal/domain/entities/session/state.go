// Package session defines the singleton per-profile session state.
// One deployed instance serves one browser profile, so session state has no
// identifier: it is a single record with two independent facets, the visitor
// unlock status and the operator admin status.
package session

// State is the per-profile session record. Unlocked is derived state: the
// presence of UnlockToken is the single source of truth, and the two fields
// are always set (and cleared) together. AdminLoggedIn is independent of
// unlock status.
type State struct {
	Unlocked      bool   `json:"unlocked"`
	UnlockToken   string `json:"unlockToken,omitempty"`
	AdminLoggedIn bool   `json:"adminLoggedIn"`
}

// Locked returns the default session state: locked, no token, not admin.
func Locked() State {
	return State{}
}
