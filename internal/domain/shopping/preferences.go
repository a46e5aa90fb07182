package shopping

import "time"

// Preferences holds per-session display settings.
// A nil DarkMode means the client should follow the system preference.
type Preferences struct {
	SessionID string    `json:"session_id"`
	DarkMode  *bool     `json:"dark_mode,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPreferences creates preferences with nothing set
func NewPreferences(sessionID string) *Preferences {
	return &Preferences{SessionID: sessionID, UpdatedAt: time.Now()}
}

// SetDarkMode stores an explicit dark mode choice
func (p *Preferences) SetDarkMode(enabled bool) {
	p.DarkMode = &enabled
	p.UpdatedAt = time.Now()
}

// ToggleDarkMode flips the flag; an unset flag becomes true
func (p *Preferences) ToggleDarkMode() bool {
	next := p.DarkMode == nil || !*p.DarkMode
	p.SetDarkMode(next)
	return next
}
