package trade

import (
	"context"
	"errors"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shared/valueobject"
	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdempotencyTTL is how long a checkout Idempotency-Key is remembered
const IdempotencyTTL = 24 * time.Hour

var (
	// ErrInvalidGovernorate is returned for unknown or inactive governorates
	ErrInvalidGovernorate = shared.NewDomainError("INVALID_GOVERNORATE", "Please choose a valid governorate")
	// ErrDuplicateRequest is returned when an Idempotency-Key is replayed
	ErrDuplicateRequest = shared.NewDomainError("DUPLICATE_REQUEST", "This order has already been submitted")
)

// CheckoutInput is a checkout request bound to a shopping session
type CheckoutInput struct {
	SessionID      string
	IdempotencyKey string
	Request        CheckoutRequest
}

// CheckoutService turns a session cart into an order
type CheckoutService struct {
	cartStore       shopping.CartStore
	governorateRepo shipping.GovernorateRepository
	orderRepo       trade.OrderRepository
	idempotency     shared.IdempotencyStore
	eventPublisher  shared.EventPublisher
	logger          *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
// idempotency may be nil, in which case Idempotency-Key headers are ignored.
func NewCheckoutService(
	cartStore shopping.CartStore,
	governorateRepo shipping.GovernorateRepository,
	orderRepo trade.OrderRepository,
	idempotency shared.IdempotencyStore,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartStore:       cartStore,
		governorateRepo: governorateRepo,
		orderRepo:       orderRepo,
		idempotency:     idempotency,
		logger:          logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Preview prices the session cart without placing an order
func (s *CheckoutService) Preview(ctx context.Context, sessionID string, req PreviewRequest) (*CheckoutPreview, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	preview := &CheckoutPreview{
		GovernorateID: req.GovernorateID,
		ItemCount:     cart.ItemCount(),
	}
	shippingPrice := valueobject.ZeroEGP().Amount()
	if req.GovernorateID != nil {
		gov, err := s.activeGovernorate(ctx, *req.GovernorateID)
		if err != nil {
			return nil, err
		}
		shippingPrice = gov.ShippingPrice
	}

	totals := trade.NewTotals(cart.Subtotal(), shippingPrice)
	preview.Subtotal = totals.Subtotal.Amount()
	preview.ShippingPrice = totals.Shipping.Amount()
	preview.Total = totals.Total.Amount()
	preview.Currency = string(totals.Total.Currency())
	return preview, nil
}

// Checkout places an order from the session cart and clears the cart
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (resp *OrderResponse, err error) {
	if input.IdempotencyKey != "" && s.idempotency != nil {
		key := "checkout:" + input.IdempotencyKey
		fresh, err := s.idempotency.Claim(ctx, key, IdempotencyTTL)
		if err != nil {
			s.logger.Error("Failed to record idempotency key", zap.Error(err))
			return nil, err
		}
		if !fresh {
			return nil, ErrDuplicateRequest
		}
		defer func() {
			if err == nil {
				return
			}
			if relErr := s.idempotency.Release(context.WithoutCancel(ctx), key); relErr != nil {
				s.logger.Warn("Failed to release idempotency key", zap.Error(relErr))
			}
		}()
	}

	req := input.Request
	gov, err := s.activeGovernorate(ctx, req.GovernorateID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadCart(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shopping.ErrCartEmpty
	}

	order, err := trade.NewOrder(trade.CustomerInfo{
		Name:           req.CustomerName,
		PhonePrimary:   req.PhonePrimary,
		PhoneSecondary: req.PhoneSecondary,
		Address:        req.Address,
		Notes:          req.Notes,
	}, &gov.ID, gov.ShippingPrice)
	if err != nil {
		return nil, err
	}
	for _, line := range cart.Items {
		productID := line.ProductID
		name := line.NameAr
		if name == "" {
			name = line.Name
		}
		if _, err := order.AddItem(&productID, name, line.Color, line.Size, line.UnitPrice(), line.Quantity); err != nil {
			return nil, err
		}
	}
	if err := order.Place(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, err
	}

	// The order is committed; a failed cart clear only leaves stale items
	if err := s.cartStore.Delete(ctx, input.SessionID); err != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}

	if err := order.MarkPlaced(); err != nil {
		s.logger.Warn("Stored order has no number", zap.String("order_id", order.ID.String()), zap.Error(err))
	}
	s.publish(ctx, order)

	s.logger.Info("Order placed",
		zap.Int64("order_number", order.OrderNumber),
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.TotalPrice.StringFixed(2)),
	)
	return ToOrderResponse(order, gov.NameAr), nil
}

func (s *CheckoutService) loadCart(ctx context.Context, sessionID string) (*shopping.Cart, error) {
	cart, found, err := s.cartStore.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found || cart == nil {
		return shopping.NewCart(sessionID), nil
	}
	return cart, nil
}

func (s *CheckoutService) activeGovernorate(ctx context.Context, id uuid.UUID) (*shipping.Governorate, error) {
	gov, err := s.governorateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidGovernorate
		}
		return nil, err
	}
	if !gov.IsActive {
		return nil, ErrInvalidGovernorate
	}
	return gov, nil
}

func (s *CheckoutService) publish(ctx context.Context, order *trade.Order) {
	events := order.PopDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish order events", zap.Error(err))
	}
}
