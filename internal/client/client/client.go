package client

import (
	"context"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/shopspring/decimal"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	ListPartners(ctx context.Context) ([]*models.PartnerSummary, error)
	GetPartner(ctx context.Context, id int64) (*models.Partner, error)
	AddPolicy(ctx context.Context, partnerID int64, policyNumber string, amount decimal.Decimal) (int64, error)
}
