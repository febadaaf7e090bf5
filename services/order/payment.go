package order

import (
	"fmt"

	"mercato/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentGateway initiates payment for an order total and reports the
// resulting state. Card payments settle through Stripe; cash-on-delivery
// stays pending until the courier collects.
type PaymentGateway interface {
	Charge(method string, amount float64, orderNumber string) (PaymentResult, error)
}

// PaymentResult is the outcome of a payment initiation.
type PaymentResult struct {
	Status        string // "paid" or "pending"
	TransactionID string // Gateway reference; empty for cash.
}

// StripeGateway implements PaymentGateway on Stripe PaymentIntents.
type StripeGateway struct{}

// Charge initiates payment for the given amount.
func (g StripeGateway) Charge(method string, amount float64, orderNumber string) (PaymentResult, error) {
	logger := utils.GetLogger()

	switch method {
	case "cod":
		// Cash on delivery: nothing to initiate, payment stays pending.
		return PaymentResult{Status: "pending"}, nil
	case "card":
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(amount * 100)),
			Currency: stripe.String(string(stripe.CurrencyUSD)),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.AddMetadata("order_number", orderNumber)

		pi, err := paymentintent.New(params)
		if err != nil {
			return PaymentResult{}, fmt.Errorf("failed to create payment intent: %w", err)
		}

		logger.Info("Payment intent created",
			zap.String("order", orderNumber),
			zap.String("intent", pi.ID))
		return PaymentResult{Status: "paid", TransactionID: pi.ID}, nil
	default:
		return PaymentResult{}, NewCheckoutError("unsupported payment method: %s", method)
	}
}
