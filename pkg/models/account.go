package models

import "time"

// MaxAccountsPerProject caps user accounts per project.
const MaxAccountsPerProject = 20

// ProfileStatus is the lifecycle of a reusable provider-side browser profile.
type ProfileStatus string

// Profile statuses.
const (
	ProfileStatusNone           ProfileStatus = "none"
	ProfileStatusAuthenticating ProfileStatus = "authenticating"
	ProfileStatusAuthenticated  ProfileStatus = "authenticated"
	ProfileStatusExpired        ProfileStatus = "expired"
)

// ProfileSlot names a provider key in a user account's profile map.
// Only providers with persistent profile support have a slot.
type ProfileSlot string

// Profile slots.
const (
	ProfileSlotHyperbrowser    ProfileSlot = "hyperbrowser"
	ProfileSlotBrowserUseCloud ProfileSlot = "browserUseCloud"
)

// ProviderProfile is a reusable provider-side profile descriptor that lets a
// test skip manual login when the provider supports persistent sessions.
type ProviderProfile struct {
	ProfileID string        `json:"profileId"`
	Status    ProfileStatus `json:"status"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// UserAccount is a set of application credentials a test may log in with.
// It is the unit of mutual exclusion: at most one run or AI job may use an
// account at any moment.
type UserAccount struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"projectId"`
	Label     string            `json:"label"`
	Email     string            `json:"email"`
	Password  string            `json:"password"`
	Metadata  map[string]string `json:"metadata,omitempty"`

	// Profiles maps a provider slot to its reusable profile descriptor.
	Profiles map[ProfileSlot]ProviderProfile `json:"profiles,omitempty"`
}

// Profile returns the account's profile for the given slot, if present and
// usable (authenticated).
func (a *UserAccount) Profile(slot ProfileSlot) (ProviderProfile, bool) {
	if slot == "" || a.Profiles == nil {
		return ProviderProfile{}, false
	}
	p, ok := a.Profiles[slot]
	if !ok || p.ProfileID == "" || p.Status != ProfileStatusAuthenticated {
		return ProviderProfile{}, false
	}
	return p, true
}
