package payments

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

// Gateway registers Pix payment intents with Mercado Pago. Portal
// bookings paid in cash or card-on-site never reach it.
type Gateway struct {
	client payment.Client
	log    *logrus.Logger
}

func New(accessToken string, log *logrus.Logger) (*Gateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		client: payment.NewClient(cfg),
		log:    log,
	}, nil
}

// CreatePixIntent opens a Pix charge and returns the provider's
// payment id. The booking does not depend on the charge succeeding;
// failures are settled on site.
func (g *Gateway) CreatePixIntent(
	ctx context.Context,
	amount float64,
	description string,
	payerEmail string,
) (string, error) {

	req := payment.Request{
		TransactionAmount: amount,
		PaymentMethodID:   "pix",
		Description:       description,
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return "", err
	}

	id := strconv.Itoa(resp.ID)
	g.log.WithFields(logrus.Fields{
		"payment_id": id,
		"amount":     amount,
	}).Info("pix intent created")

	return id, nil
}
