package marketing

import (
	"net/url"
	"strings"

	"github.com/alshbh/storefront/internal/domain/shared"
)

// Advertisement is a banner shown in the storefront hero carousel
type Advertisement struct {
	shared.BaseAggregateRoot
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	ImageURL      string
	Link          string
	IsActive      bool
	SortOrder     int
}

// AdvertisementContent holds the editable fields of an advertisement
type AdvertisementContent struct {
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	ImageURL      string
	Link          string
	SortOrder     int
}

// NewAdvertisement creates a new active advertisement
func NewAdvertisement(content AdvertisementContent) (*Advertisement, error) {
	ad := &Advertisement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		IsActive:          true,
	}
	if err := ad.apply(content); err != nil {
		return nil, err
	}
	return ad, nil
}

// Update replaces the advertisement content
func (a *Advertisement) Update(content AdvertisementContent) error {
	if err := a.apply(content); err != nil {
		return err
	}
	a.touch()
	return nil
}

// Activate shows the banner
func (a *Advertisement) Activate() error {
	if a.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Advertisement is already active")
	}
	a.IsActive = true
	a.touch()
	return nil
}

// Deactivate hides the banner
func (a *Advertisement) Deactivate() error {
	if !a.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Advertisement is already inactive")
	}
	a.IsActive = false
	a.touch()
	return nil
}

func (a *Advertisement) apply(c AdvertisementContent) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Advertisement title cannot be empty")
	}
	if len([]rune(title)) > 200 || len([]rune(c.TitleAr)) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Advertisement title cannot exceed 200 characters")
	}
	imageURL := strings.TrimSpace(c.ImageURL)
	if imageURL == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Advertisement image is required")
	}
	link := strings.TrimSpace(c.Link)
	if err := validateLink(link); err != nil {
		return err
	}
	if c.SortOrder < 0 {
		return shared.NewDomainError("INVALID_SORT_ORDER", "Sort order cannot be negative")
	}

	a.Title = title
	a.TitleAr = strings.TrimSpace(c.TitleAr)
	a.Description = c.Description
	a.DescriptionAr = c.DescriptionAr
	a.ImageURL = imageURL
	a.Link = link
	a.SortOrder = c.SortOrder
	return nil
}

func (a *Advertisement) touch() {
	a.MarkModified()
}

// validateLink accepts an empty link, a site path or an absolute http(s) URL
func validateLink(link string) error {
	if link == "" {
		return nil
	}
	if strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//") {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return shared.NewDomainError("INVALID_LINK", "Link must be a site path or an http(s) URL")
	}
	return nil
}
