package shopping

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/shopping"
)

// PreferenceService stores per-session display settings
type PreferenceService struct {
	store shopping.PreferenceStore
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(store shopping.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// DarkMode returns the stored flag, nil when never set
func (s *PreferenceService) DarkMode(ctx context.Context, sessionID string) (*DarkModeResponse, error) {
	prefs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &DarkModeResponse{Enabled: prefs.DarkMode}, nil
}

// SetDarkMode stores an explicit choice
func (s *PreferenceService) SetDarkMode(ctx context.Context, sessionID string, enabled bool) (*DarkModeResponse, error) {
	prefs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prefs.SetDarkMode(enabled)
	if err := s.store.Save(ctx, sessionID, prefs); err != nil {
		return nil, err
	}
	return &DarkModeResponse{Enabled: prefs.DarkMode}, nil
}

// ToggleDarkMode flips the flag
func (s *PreferenceService) ToggleDarkMode(ctx context.Context, sessionID string) (*DarkModeResponse, error) {
	prefs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prefs.ToggleDarkMode()
	if err := s.store.Save(ctx, sessionID, prefs); err != nil {
		return nil, err
	}
	return &DarkModeResponse{Enabled: prefs.DarkMode}, nil
}

func (s *PreferenceService) load(ctx context.Context, sessionID string) (*shopping.Preferences, error) {
	prefs, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return shopping.NewPreferences(sessionID), nil
	}
	return prefs, nil
}
