package services

import (
	"context"

	"litoral-shop/models"
	"litoral-shop/repositories"
)

// CartService builds carts against the current catalog. Quantity clamping
// to >= 1 happens here, before the cart model sees the call.
type CartService struct {
	cartRepo *repositories.CartRepository
	catalog  *CatalogService
}

func NewCartService(cartRepo *repositories.CartRepository, catalog *CatalogService) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

func (s *CartService) CreateCart() models.Cart {
	return s.cartRepo.Create()
}

func (s *CartService) GetCart(id string) (models.Cart, error) {
	return s.cartRepo.Find(id)
}

func (s *CartService) AddItem(ctx context.Context, cartID string, req models.AddCartItemRequest) (models.Cart, error) {
	product, err := s.catalog.FindProduct(ctx, req.ProductID)
	if err != nil {
		return models.Cart{}, err
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	return s.cartRepo.AddItem(cartID, product, qty, req.Note)
}

func (s *CartService) AdjustItem(cartID string, req models.AdjustCartItemRequest) (models.Cart, error) {
	return s.cartRepo.AdjustItem(cartID, req.ProductID, req.Delta, req.Note)
}

func (s *CartService) ClearCart(id string) (models.Cart, error) {
	return s.cartRepo.Clear(id)
}
