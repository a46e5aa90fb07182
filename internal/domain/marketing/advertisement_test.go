package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContent() AdvertisementContent {
	return AdvertisementContent{
		Title:    "Summer Sale",
		TitleAr:  "تخفيضات الصيف",
		ImageURL: "https://cdn.example.com/banners/summer.jpg",
		Link:     "/products?category=summer",
	}
}

func TestNewAdvertisement(t *testing.T) {
	ad, err := NewAdvertisement(validContent())
	require.NoError(t, err)
	assert.True(t, ad.IsActive)
	assert.Equal(t, "Summer Sale", ad.Title)
	assert.Equal(t, "/products?category=summer", ad.Link)
}

func TestNewAdvertisement_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AdvertisementContent)
		errMsg string
	}{
		{"empty title", func(c *AdvertisementContent) { c.Title = " " }, "title cannot be empty"},
		{"missing image", func(c *AdvertisementContent) { c.ImageURL = "" }, "image is required"},
		{"javascript link", func(c *AdvertisementContent) { c.Link = "javascript:alert(1)" }, "http(s) URL"},
		{"protocol relative link", func(c *AdvertisementContent) { c.Link = "//evil.example" }, "http(s) URL"},
		{"negative sort order", func(c *AdvertisementContent) { c.SortOrder = -1 }, "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(&c)
			_, err := NewAdvertisement(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAdvertisement_AbsoluteLinkAndToggle(t *testing.T) {
	c := validContent()
	c.Link = "https://instagram.com/alshbh"
	ad, err := NewAdvertisement(c)
	require.NoError(t, err)

	require.NoError(t, ad.Deactivate())
	assert.False(t, ad.IsActive)
	require.Error(t, ad.Deactivate())
	require.NoError(t, ad.Activate())

	c.SortOrder = 3
	require.NoError(t, ad.Update(c))
	assert.Equal(t, 3, ad.SortOrder)
}
