package services

import (
	"errors"
	"strings"
	"time"

	"litoral-shop/models"
	"litoral-shop/repositories"
	"litoral-shop/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBlankCustomerName = errors.New("customer name is required")
	ErrBlankContact      = errors.New("whatsapp contact is required")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnknownStatus     = errors.New("unknown order status")
)

type OrderService struct {
	orderRepo        *repositories.OrderRepository
	cartRepo         *repositories.CartRepository
	neighborhoodRepo *repositories.NeighborhoodRepository
}

func NewOrderService(orderRepo *repositories.OrderRepository, cartRepo *repositories.CartRepository, neighborhoodRepo *repositories.NeighborhoodRepository) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		neighborhoodRepo: neighborhoodRepo,
	}
}

// Submit turns a finalized cart plus customer and delivery data into a
// pending order at the head of the order list. Blank name, blank contact
// or an empty cart abort the submission; nothing partial is ever created.
// The cart is discarded after success.
func (s *OrderService) Submit(req models.SubmitOrderRequest) (models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return models.Order{}, ErrBlankCustomerName
	}
	if strings.TrimSpace(req.Whatsapp) == "" {
		return models.Order{}, ErrBlankContact
	}

	cart, err := s.cartRepo.Find(req.CartID)
	if err != nil {
		return models.Order{}, err
	}
	if cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	method := models.DeliveryMethod(req.DeliveryMethod)

	// Delivery orders snapshot the neighborhood name and fee by value, so
	// later admin edits never rewrite this order.
	var neighborhoodName string
	var neighborhoodFee float64
	if method == models.MethodDelivery {
		neighborhood, err := s.neighborhoodRepo.FindByID(req.NeighborhoodID)
		if err != nil {
			return models.Order{}, errors.New("unknown delivery neighborhood")
		}
		neighborhoodName = neighborhood.Name
		neighborhoodFee = neighborhood.Fee
	}

	fee := DeliveryFee(method, neighborhoodFee)
	total := ItemsSubtotal(cart.Lines).Add(fee)

	order := models.Order{
		ID:                     uuid.NewString(),
		CustomerName:           req.CustomerName,
		Whatsapp:               req.Whatsapp,
		Seller:                 req.Seller,
		CompanyName:            req.CompanyName,
		IsCompleteRegistration: req.IsCompleteRegistration,
		DeliveryMethod:         method,
		PickupStore:            req.PickupStore,
		Neighborhood:           neighborhoodName,
		DeliveryFee:            fee.InexactFloat64(),
		Address:                req.Address,
		AddressNumber:          req.AddressNumber,
		PostalCode:             req.PostalCode,
		Complement:             req.Complement,
		City:                   req.City,
		DeliveryDate:           req.DeliveryDate,
		DeliveryTime:           req.DeliveryTime,
		Items:                  cart.Lines,
		Total:                  total.InexactFloat64(),
		Status:                 models.StatusPending,
		CreatedAt:              time.Now(),
	}

	s.orderRepo.Insert(order)
	s.cartRepo.Discard(cart.ID)

	return order, nil
}

// List returns the order list newest-first, optionally filtered by status,
// with the pending-production count for the staff badge.
func (s *OrderService) List(statusFilter string) ([]models.Order, models.OrdersMeta, error) {
	var status models.OrderStatus
	if statusFilter != "" && statusFilter != "ALL" {
		status = models.OrderStatus(strings.ToUpper(statusFilter))
		if !status.Valid() {
			return nil, models.OrdersMeta{}, ErrUnknownStatus
		}
	}

	orders := s.orderRepo.FindAll(status)
	meta := models.OrdersMeta{
		Count:   len(orders),
		Pending: s.orderRepo.CountByStatus(models.StatusPending),
	}
	return orders, meta, nil
}

func (s *OrderService) Get(id string) (models.Order, error) {
	return s.orderRepo.FindByID(id)
}

// Advance sets the status of an order. Any of the four known statuses is
// accepted as a target so staff can correct mistakes by hand; the standard
// flow only ever moves one step forward through the pipeline.
func (s *OrderService) Advance(id, status string) (models.Order, error) {
	target := models.OrderStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !target.Valid() {
		return models.Order{}, ErrUnknownStatus
	}
	return s.orderRepo.UpdateStatus(id, target)
}

func (s *OrderService) MarkPrinted(id string) (models.Order, error) {
	return s.orderRepo.MarkPrinted(id)
}

// Receipt renders the fixed-width text projection of one order.
func (s *OrderService) Receipt(id string) (string, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return "", err
	}
	return utils.RenderReceipt(order), nil
}

// Dashboard aggregates the admin overview tiles.
func (s *OrderService) Dashboard() models.DashboardStats {
	orders := s.orderRepo.FindAll("")

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
	}

	return models.DashboardStats{
		TotalOrders:       len(orders),
		TotalRevenue:      revenue.InexactFloat64(),
		NeighborhoodCount: s.neighborhoodRepo.Count(),
		PendingProduction: s.orderRepo.CountByStatus(models.StatusPending),
	}
}
