package payments

import (
	"encoding/json"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"storefront/models"
)

type LineItem struct {
	Name       string
	UnitAmount int64 // cents
	Quantity   int64
}

// Gateway is the payment-processor boundary. Checkout logic talks to this
// interface; the Stripe implementation lives below, fakes live in tests.
type Gateway interface {
	CreateSession(email string, items []LineItem) (sessionId string, err error)
	ParseWebhook(payload []byte, signature string) (sessionId string, completed bool, err error)
}

type StripeGateway struct {
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(secretKey, webhookSecret, successURL, cancelURL string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

func (g *StripeGateway) CreateSession(email string, items []LineItem) (sessionId string, err error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(email),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
		LineItems:     lineItems,
	}
	s, e := session.New(params)
	if e != nil {
		log.Printf("CreateSession: %v", e)
		err = models.ErrUpstream
		return
	}
	sessionId = s.ID
	return
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (sessionId string, completed bool, err error) {
	event, e := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if e != nil {
		log.Printf("ParseWebhook: %v", e)
		err = models.ErrValidation
		return
	}
	if event.Type != "checkout.session.completed" {
		return
	}
	var s stripe.CheckoutSession
	if e := json.Unmarshal(event.Data.Raw, &s); e != nil {
		log.Printf("ParseWebhook: %v", e)
		err = models.ErrValidation
		return
	}
	sessionId = s.ID
	completed = true
	return
}
