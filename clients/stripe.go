package clients

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripePaymentGateway initializes payments through Stripe Checkout. The
// hosted Checkout page URL plays the role of the payment page the customer
// is redirected to. Requires stripe.Key to be set at startup.
type StripePaymentGateway struct {
	successURL string
	cancelURL  string
	currency   string
	logger     *zap.Logger
}

// NewStripePaymentGateway creates a Checkout-backed payment gateway.
func NewStripePaymentGateway(successURL, cancelURL, currency string, logger *zap.Logger) *StripePaymentGateway {
	return &StripePaymentGateway{
		successURL: successURL,
		cancelURL:  cancelURL,
		currency:   currency,
		logger:     logger,
	}
}

// InitializePayment creates a Checkout Session for the amount due and returns
// its hosted page URL. Amounts are converted to the currency's minor unit.
func (g *StripePaymentGateway) InitializePayment(ctx context.Context, request InitializePaymentRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(request.ReservationID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Reservation %s", request.ReservationID)),
					},
					UnitAmount: stripe.Int64(int64(math.Round(request.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if request.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(request.CustomerEmail)
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		g.logger.Error("payment: stripe checkout session failed",
			zap.String("reservationId", request.ReservationID), zap.Error(err))
		if stripeErr, ok := err.(*stripe.Error); ok {
			return "", &APIError{
				StatusCode: stripeErr.HTTPStatusCode,
				Code:       string(stripeErr.Code),
				Message:    stripeErr.Msg,
			}
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return s.URL, nil
}
