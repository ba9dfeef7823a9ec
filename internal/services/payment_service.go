// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/atelier-lumen/jewelry-backend/internal/config"
	"github.com/atelier-lumen/jewelry-backend/internal/models"
)

// PaymentService records Stripe payment intents for card orders. Cash on
// delivery orders never touch it.
type PaymentService struct {
	cfg *config.Config
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	if cfg.Payment.StripeSecretKey != "" {
		stripe.Key = cfg.Payment.StripeSecretKey
	}
	return &PaymentService{cfg: cfg}
}

// CreateOrderPaymentIntent creates a pending intent for the order total and
// returns its id. The intent is confirmed later through the frontend flow;
// the order itself is already committed by the time this runs.
func (s *PaymentService) CreateOrderPaymentIntent(order *models.Order) (string, error) {
	if s.cfg.Payment.StripeSecretKey == "" {
		return "", errors.New("stripe is not configured")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(order.TotalAmount * 100)),
		Currency: stripe.String(s.cfg.Payment.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.AddMetadata("order_id", fmt.Sprintf("%d", order.ID))
	params.AddMetadata("user_id", fmt.Sprintf("%d", order.UserID))

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ID, nil
}
