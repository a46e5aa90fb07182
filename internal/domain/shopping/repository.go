package shopping

import "context"

// SessionStore persists one value per shopping session
type SessionStore[T any] interface {
	// Load returns the stored value; found is false when nothing is stored
	Load(ctx context.Context, sessionID string) (value *T, found bool, err error)
	Save(ctx context.Context, sessionID string, value *T) error
	Delete(ctx context.Context, sessionID string) error
}

// CartStore persists carts
type CartStore = SessionStore[Cart]

// FavoritesStore persists wishlists
type FavoritesStore = SessionStore[Favorites]

// PreferenceStore persists display preferences
type PreferenceStore = SessionStore[Preferences]
