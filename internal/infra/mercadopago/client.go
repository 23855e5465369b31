package mercadopago

import (
	"context"
	"net/http"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Payment is the slice of a provider payment the webhook processor needs.
type Payment struct {
	ID                string
	Status            string
	ExternalReference string
	Amount            float64
}

// Preapproval is the recurring-subscription authorization object.
type Preapproval struct {
	ID                string
	Status            string
	ExternalReference string
}

// Checkout is a created checkout session.
type Checkout struct {
	PreferenceID string
	InitPoint    string
}

// CheckoutRequest carries only server-resolved values; the amount always
// comes from the pricing table, never from the client.
type CheckoutRequest struct {
	Title             string
	Email             string
	Amount            float64
	CurrencyID        string
	ExternalReference string
	NotificationURL   string
	SuccessURL        string
	FailureURL        string
	PendingURL        string
}

// API is the payment-provider surface consumed by the handlers. Tests swap
// Default for a stub the same way they swap database.DB.
type API interface {
	CreatePreference(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
	GetPreapproval(ctx context.Context, id string) (*Preapproval, error)
}

var Default API

// Init wires Default to the real Mercado Pago SDK.
func Init(accessToken string) error {
	cfg, err := mpconfig.New(accessToken, mpconfig.WithHTTPClient(&http.Client{
		Timeout: 10 * time.Second,
	}))
	if err != nil {
		return err
	}

	Default = &client{
		preference:  preference.NewClient(cfg),
		payment:     payment.NewClient(cfg),
		preapproval: preapproval.NewClient(cfg),
	}
	return nil
}

type client struct {
	preference  preference.Client
	payment     payment.Client
	preapproval preapproval.Client
}

func (c *client) CreatePreference(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	resp, err := c.preference.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  req.Amount,
				CurrencyID: req.CurrencyID,
			},
		},
		Payer:             &preference.PayerRequest{Email: req.Email},
		BackURLs:          &preference.BackURLsRequest{Success: req.SuccessURL, Failure: req.FailureURL, Pending: req.PendingURL},
		NotificationURL:   req.NotificationURL,
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		return nil, err
	}
	return &Checkout{PreferenceID: resp.ID, InitPoint: resp.InitPoint}, nil
}

func (c *client) GetPayment(ctx context.Context, id string) (*Payment, error) {
	paymentID, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	resp, err := c.payment.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return &Payment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Amount:            resp.TransactionAmount,
	}, nil
}

func (c *client) GetPreapproval(ctx context.Context, id string) (*Preapproval, error) {
	resp, err := c.preapproval.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Preapproval{
		ID:                resp.ID,
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
