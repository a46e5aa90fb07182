package shopping

import (
	"context"
	"errors"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/google/uuid"
)

// FavoritesService manages the session wishlist
type FavoritesService struct {
	store       shopping.FavoritesStore
	productRepo catalog.ProductRepository
}

// NewFavoritesService creates a new FavoritesService
func NewFavoritesService(store shopping.FavoritesStore, productRepo catalog.ProductRepository) *FavoritesService {
	return &FavoritesService{store: store, productRepo: productRepo}
}

// List returns saved products
func (s *FavoritesService) List(ctx context.Context, sessionID string) (*FavoritesResponse, error) {
	favs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &FavoritesResponse{Items: favs.Items, Count: favs.Count()}, nil
}

// Add saves a product; saving it twice is a no-op
func (s *FavoritesService) Add(ctx context.Context, sessionID string, productID uuid.UUID) (*FavoritesResponse, error) {
	favs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !favs.Contains(productID) {
		item, err := s.snapshot(ctx, productID)
		if err != nil {
			return nil, err
		}
		favs.Add(item)
		if err := s.store.Save(ctx, sessionID, favs); err != nil {
			return nil, err
		}
	}
	return &FavoritesResponse{Items: favs.Items, Count: favs.Count()}, nil
}

// Remove drops a product from the wishlist
func (s *FavoritesService) Remove(ctx context.Context, sessionID string, productID uuid.UUID) (*FavoritesResponse, error) {
	favs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if favs.Remove(productID) {
		if err := s.store.Save(ctx, sessionID, favs); err != nil {
			return nil, err
		}
	}
	return &FavoritesResponse{Items: favs.Items, Count: favs.Count()}, nil
}

// Toggle saves or drops a product and reports the new state
func (s *FavoritesService) Toggle(ctx context.Context, sessionID string, productID uuid.UUID) (*FavoriteStateResponse, error) {
	favs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	saved := false
	if !favs.Remove(productID) {
		item, err := s.snapshot(ctx, productID)
		if err != nil {
			return nil, err
		}
		saved = favs.Add(item)
	}
	if err := s.store.Save(ctx, sessionID, favs); err != nil {
		return nil, err
	}
	return &FavoriteStateResponse{ProductID: productID, IsFavorite: saved}, nil
}

// Contains reports whether a product is saved
func (s *FavoritesService) Contains(ctx context.Context, sessionID string, productID uuid.UUID) (*FavoriteStateResponse, error) {
	favs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &FavoriteStateResponse{ProductID: productID, IsFavorite: favs.Contains(productID)}, nil
}

func (s *FavoritesService) load(ctx context.Context, sessionID string) (*shopping.Favorites, error) {
	favs, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return shopping.NewFavorites(sessionID), nil
	}
	return favs, nil
}

func (s *FavoritesService) snapshot(ctx context.Context, productID uuid.UUID) (shopping.FavoriteItem, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shopping.FavoriteItem{}, ErrProductUnavailable
		}
		return shopping.FavoriteItem{}, err
	}
	if !product.IsActive {
		return shopping.FavoriteItem{}, ErrProductUnavailable
	}
	return shopping.FavoriteItem{
		ProductID:     product.ID,
		Name:          product.Name,
		NameAr:        product.NameAr,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Image:         product.PrimaryImageURL(),
		Rating:        product.Rating,
	}, nil
}
