package service

import (
	"context"
	"log"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
	"github.com/Drael0/site/internal/session"
	"github.com/shopspring/decimal"
)

// taxRate is the 20% KDV applied on top of the cart subtotal.
var taxRate = decimal.NewFromFloat(0.20)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Quote computes subtotal, tax and total for the given lines. Money math
// runs on decimals so a 100.00 subtotal always yields 20.00 tax and a
// 120.00 total.
func Quote(items []domain.CartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

type CheckoutService struct {
	orders repository.OrderRepository
	cart   *CartService
}

func NewCheckoutService(orders repository.OrderRepository, cart *CartService) *CheckoutService {
	return &CheckoutService{
		orders: orders,
		cart:   cart,
	}
}

// Quote prices the current cart without submitting it.
func (s *CheckoutService) Quote(ctx context.Context, sess *session.Session) (Totals, error) {
	items, err := s.cart.Get(ctx, sess)
	if err != nil {
		return Totals{}, err
	}
	if len(items) == 0 {
		return Totals{}, ErrEmptyCart
	}

	return Quote(items), nil
}

// Submit records an order snapshot for signed-in users and then empties the
// cart. The cart is cleared even when the order write fails; the failure is
// logged, not surfaced. Guests get no order record.
func (s *CheckoutService) Submit(ctx context.Context, sess *session.Session) (*domain.Order, Totals, error) {
	items, err := s.cart.Get(ctx, sess)
	if err != nil {
		return nil, Totals{}, err
	}
	if len(items) == 0 {
		return nil, Totals{}, ErrEmptyCart
	}

	totals := Quote(items)

	var order *domain.Order
	if sess.Authenticated() {
		lines := make([]domain.OrderItem, 0, len(items))
		for _, item := range items {
			lines = append(lines, domain.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}

		order = &domain.Order{
			UserID:   sess.UserID,
			Items:    lines,
			Subtotal: totals.Subtotal.InexactFloat64(),
			Tax:      totals.Tax.InexactFloat64(),
			Total:    totals.Total.InexactFloat64(),
			Status:   domain.OrderStatusCompleted,
		}

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			log.Printf("repo create order error: %v", err)
			order = nil
		}
	}

	if err := s.cart.Clear(ctx, sess); err != nil {
		log.Printf("failed to clear cart after checkout: %v", err)
	}

	return order, totals, nil
}

// ListOrders returns the user's orders, newest first.
func (s *CheckoutService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, ErrSignInRequired
	}
	return s.orders.ListOrdersByUser(ctx, userID)
}
