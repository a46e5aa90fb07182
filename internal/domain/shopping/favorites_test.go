package shopping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFavorites(t *testing.T) {
	fav := NewFavorites("s1")
	item := FavoriteItem{ProductID: uuid.New(), Name: "Abaya", NameAr: "عباية", Price: dec("900")}

	assert.True(t, fav.Add(item))
	assert.False(t, fav.Add(item), "duplicates are ignored")
	assert.Equal(t, 1, fav.Count())
	assert.True(t, fav.Contains(item.ProductID))

	assert.False(t, fav.Toggle(item), "toggle removes a saved product")
	assert.False(t, fav.Contains(item.ProductID))
	assert.True(t, fav.Toggle(item), "toggle adds an unsaved product")
	assert.Equal(t, 1, fav.Count())

	assert.True(t, fav.Remove(item.ProductID))
	assert.False(t, fav.Remove(item.ProductID))
	assert.Equal(t, 0, fav.Count())
}

func TestPreferences_DarkMode(t *testing.T) {
	p := NewPreferences("s1")
	assert.Nil(t, p.DarkMode)

	assert.True(t, p.ToggleDarkMode())
	assert.False(t, p.ToggleDarkMode())

	p.SetDarkMode(true)
	if assert.NotNil(t, p.DarkMode) {
		assert.True(t, *p.DarkMode)
	}
}
