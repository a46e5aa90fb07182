package storefront

import (
	"context"

	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	marketingapp "github.com/alshbh/storefront/internal/application/marketing"
	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/marketing"
	"github.com/alshbh/storefront/internal/domain/shared"
	"golang.org/x/sync/errgroup"
)

// HomeSectionLimit caps the featured and discounted product rows
const HomeSectionLimit = 8

// HomeResponse is everything the storefront landing page renders
type HomeResponse struct {
	Advertisements []marketingapp.AdvertisementResponse `json:"advertisements"`
	Categories     []catalogapp.CategoryResponse        `json:"categories"`
	Featured       []catalogapp.ProductListItem         `json:"featured"`
	Discounted     []catalogapp.ProductListItem         `json:"discounted"`
}

// HomeService assembles the landing page
type HomeService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	adRepo       marketing.AdvertisementRepository
}

// NewHomeService creates a new HomeService
func NewHomeService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	adRepo marketing.AdvertisementRepository,
) *HomeService {
	return &HomeService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		adRepo:       adRepo,
	}
}

// Home loads the four sections concurrently. Any failing section fails the page.
func (s *HomeService) Home(ctx context.Context) (*HomeResponse, error) {
	resp := &HomeResponse{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ads, err := s.adRepo.FindAll(gctx, true)
		if err != nil {
			return err
		}
		resp.Advertisements = make([]marketingapp.AdvertisementResponse, len(ads))
		for i := range ads {
			resp.Advertisements[i] = marketingapp.ToAdvertisementResponse(&ads[i])
		}
		return nil
	})

	g.Go(func() error {
		cats, err := s.categoryRepo.FindAll(gctx)
		if err != nil {
			return err
		}
		resp.Categories = make([]catalogapp.CategoryResponse, len(cats))
		for i := range cats {
			resp.Categories[i] = catalogapp.ToCategoryResponse(&cats[i])
		}
		return nil
	})

	g.Go(func() error {
		featured := true
		products, _, err := s.productRepo.Find(gctx, homeQuery(func(q *catalog.ProductQuery) { q.Featured = &featured }))
		if err != nil {
			return err
		}
		resp.Featured = catalogapp.ToProductListItems(products)
		return nil
	})

	g.Go(func() error {
		products, _, err := s.productRepo.Find(gctx, homeQuery(func(q *catalog.ProductQuery) { q.Discounted = true }))
		if err != nil {
			return err
		}
		resp.Discounted = catalogapp.ToProductListItems(products)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

func homeQuery(opt func(*catalog.ProductQuery)) catalog.ProductQuery {
	active := true
	q := catalog.ProductQuery{
		Filter: shared.Filter{Page: 1, PageSize: HomeSectionLimit},
		Active: &active,
		Sort:   catalog.SortNewest,
	}
	opt(&q)
	return q
}
